package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wallacygomes/siscofi/internal/auth"
	"github.com/wallacygomes/siscofi/internal/database"
	"github.com/wallacygomes/siscofi/internal/relatorio"
)

func periodoDoRelatorio(c *gin.Context) (*time.Time, *time.Time, bool) {
	var inicio, fim *time.Time
	if valor := c.Query("data_inicio"); valor != "" {
		data, err := time.Parse("2006-01-02", valor)
		if err != nil {
			return nil, nil, false
		}
		inicio = &data
	}
	if valor := c.Query("data_fim"); valor != "" {
		data, err := time.Parse("2006-01-02", valor)
		if err != nil {
			return nil, nil, false
		}
		fim = &data
	}
	return inicio, fim, true
}

func RelatorioHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		inicio, fim, ok := periodoDoRelatorio(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Datas do período em formato inválido, use AAAA-MM-DD"})
			return
		}

		rel, err := database.GerarRelatorio(pool, auth.UsuarioID(c), inicio, fim)
		if err != nil {
			log.Printf("Erro ao gerar relatório: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao gerar o relatório"})
			return
		}
		c.JSON(http.StatusOK, rel)
	}
}

// RelatorioPDFHandler exporta o relatório do período em PDF.
func RelatorioPDFHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		inicio, fim, ok := periodoDoRelatorio(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Datas do período em formato inválido, use AAAA-MM-DD"})
			return
		}

		usuarioID := auth.UsuarioID(c)
		rel, err := database.GerarRelatorio(pool, usuarioID, inicio, fim)
		if err != nil {
			log.Printf("Erro ao gerar relatório para PDF: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao gerar o relatório"})
			return
		}

		usuario, err := database.BuscarUsuarioPorID(pool, usuarioID)
		if err != nil {
			log.Printf("Erro ao buscar usuário do relatório: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao gerar o relatório"})
			return
		}

		pdf, err := relatorio.GerarPDF(rel, usuario.Nome, inicio, fim)
		if err != nil {
			log.Printf("Erro ao montar PDF do relatório: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao exportar o relatório"})
			return
		}

		c.Header("Content-Disposition", `attachment; filename="relatorio-siscofi.pdf"`)
		c.Data(http.StatusOK, "application/pdf", pdf)
	}
}
