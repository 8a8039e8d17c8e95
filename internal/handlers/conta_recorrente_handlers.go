package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/wallacygomes/siscofi/internal/auth"
	"github.com/wallacygomes/siscofi/internal/database"
	"github.com/wallacygomes/siscofi/models"
)

type contaRecorrentePayload struct {
	Nome          string          `json:"nome"`
	Valor         decimal.Decimal `json:"valor"`
	DiaVencimento int             `json:"dia_vencimento"`
	Categoria     *string         `json:"categoria"`
	Ativa         *bool           `json:"ativa"`
}

func (p *contaRecorrentePayload) paraModelo(usuarioID int) (*models.ContaRecorrente, string) {
	if p.Nome == "" {
		return nil, "O nome da conta é obrigatório"
	}
	if p.Valor.LessThanOrEqual(decimal.Zero) {
		return nil, "O valor deve ser maior que zero"
	}
	if p.DiaVencimento < 1 || p.DiaVencimento > 31 {
		return nil, "O dia de vencimento deve estar entre 1 e 31"
	}

	conta := &models.ContaRecorrente{
		UsuarioID:     usuarioID,
		Nome:          p.Nome,
		Valor:         p.Valor,
		DiaVencimento: p.DiaVencimento,
		Categoria:     p.Categoria,
		Ativa:         true,
	}
	if p.Ativa != nil {
		conta.Ativa = *p.Ativa
	}
	return conta, ""
}

func CriarContaRecorrenteHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload contaRecorrentePayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Dados da conta recorrente inválidos"})
			return
		}

		conta, msg := payload.paraModelo(auth.UsuarioID(c))
		if msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}

		if err := database.CriarContaRecorrente(pool, conta); err != nil {
			log.Printf("Erro ao criar conta recorrente: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao salvar a conta recorrente"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Conta recorrente salva com sucesso!", "conta": conta})
	}
}

func ListarContasRecorrentesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		contas, err := database.ListarContasRecorrentesPorUsuario(pool, auth.UsuarioID(c))
		if err != nil {
			log.Printf("Erro ao listar contas recorrentes: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao carregar contas recorrentes"})
			return
		}
		if contas == nil {
			contas = []models.ContaRecorrente{}
		}
		c.JSON(http.StatusOK, contas)
	}
}

func AtualizarContaRecorrenteHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idDaRota(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Identificador de conta inválido"})
			return
		}

		var payload contaRecorrentePayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Dados da conta recorrente inválidos"})
			return
		}

		conta, msg := payload.paraModelo(auth.UsuarioID(c))
		if msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}
		conta.ID = id

		if err := database.AtualizarContaRecorrente(pool, conta); err != nil {
			log.Printf("Erro ao atualizar conta recorrente: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao atualizar a conta recorrente"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Conta recorrente atualizada com sucesso!"})
	}
}

func ExcluirContaRecorrenteHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idDaRota(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Identificador de conta inválido"})
			return
		}

		if err := database.ExcluirContaRecorrente(pool, id, auth.UsuarioID(c)); err != nil {
			log.Printf("Erro ao excluir conta recorrente: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao excluir a conta recorrente"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Conta recorrente excluída com sucesso!"})
	}
}
