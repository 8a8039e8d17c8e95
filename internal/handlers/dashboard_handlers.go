package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wallacygomes/siscofi/internal/auth"
	"github.com/wallacygomes/siscofi/internal/database"
	"github.com/wallacygomes/siscofi/models"
	"github.com/wallacygomes/siscofi/utils"
)

func ResumoDashboardHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		resumo, err := database.ResumoDashboard(pool, auth.UsuarioID(c))
		if err != nil {
			log.Printf("Erro ao montar resumo do dashboard: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao carregar o resumo"})
			return
		}
		c.JSON(http.StatusOK, resumo)
	}
}

func UltimasMovimentacoesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		movimentacoes, err := database.UltimasMovimentacoes(pool, auth.UsuarioID(c), 5)
		if err != nil {
			log.Printf("Erro ao buscar últimas movimentações: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao carregar movimentações"})
			return
		}
		if movimentacoes == nil {
			movimentacoes = []models.Movimentacao{}
		}
		c.JSON(http.StatusOK, movimentacoes)
	}
}

// HistoricoMovimentacoesHandler devolve os dados no formato que o gráfico de
// linha da tela inicial consome.
func HistoricoMovimentacoesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		historico, err := database.HistoricoMovimentacoes(pool, auth.UsuarioID(c))
		if err != nil {
			log.Printf("Erro ao buscar histórico de movimentações: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao carregar o histórico"})
			return
		}

		labels := make([]string, 0, len(historico))
		ganhos := make([]interface{}, 0, len(historico))
		gastos := make([]interface{}, 0, len(historico))
		for _, ponto := range historico {
			labels = append(labels, ponto.Mes)
			ganhos = append(ganhos, ponto.Ganhos)
			gastos = append(gastos, ponto.Gastos)
		}

		c.JSON(http.StatusOK, gin.H{
			"labels": labels,
			"datasets": gin.H{
				"ganhos": ganhos,
				"gastos": gastos,
			},
		})
	}
}

// GastosPorCategoriaHandler devolve os dados no formato do gráfico de pizza.
func GastosPorCategoriaHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		gastos, err := database.GastosPorCategoria(pool, auth.UsuarioID(c))
		if err != nil {
			log.Printf("Erro ao buscar gastos por categoria: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao carregar gastos por categoria"})
			return
		}

		labels := make([]string, 0, len(gastos))
		valores := make([]interface{}, 0, len(gastos))
		for _, item := range gastos {
			labels = append(labels, item.Categoria)
			valores = append(valores, item.Total)
		}

		c.JSON(http.StatusOK, gin.H{
			"labels":   labels,
			"datasets": []gin.H{{"data": valores}},
		})
	}
}

func DicasHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		dicas, err := utils.GerarDicas(pool, auth.UsuarioID(c))
		if err != nil {
			log.Printf("Erro ao gerar dicas: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao carregar dicas"})
			return
		}
		c.JSON(http.StatusOK, dicas)
	}
}
