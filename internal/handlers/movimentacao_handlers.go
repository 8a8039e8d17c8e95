package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/wallacygomes/siscofi/internal/auth"
	"github.com/wallacygomes/siscofi/internal/database"
	"github.com/wallacygomes/siscofi/models"
)

type movimentacaoPayload struct {
	Descricao         string          `json:"descricao"`
	Valor             decimal.Decimal `json:"valor"`
	Data              string          `json:"data"`
	Tipo              string          `json:"tipo"`
	Categoria         *string         `json:"categoria"`
	TipoRecorrencia   string          `json:"tipo_recorrencia"`
	ContaRecorrenteID *int            `json:"conta_recorrente_id"`
}

func (p *movimentacaoPayload) paraModelo(usuarioID int) (*models.Movimentacao, string) {
	if p.Descricao == "" || p.Data == "" {
		return nil, "Descrição e data são obrigatórias"
	}
	if p.Tipo != "ganho" && p.Tipo != "gasto" {
		return nil, "Tipo deve ser 'ganho' ou 'gasto'"
	}
	if p.Valor.LessThanOrEqual(decimal.Zero) {
		return nil, "O valor deve ser maior que zero"
	}
	data, err := time.Parse("2006-01-02", p.Data)
	if err != nil {
		return nil, "Data em formato inválido, use AAAA-MM-DD"
	}
	if p.TipoRecorrencia == "" {
		p.TipoRecorrencia = "unica"
	}

	return &models.Movimentacao{
		UsuarioID:         usuarioID,
		Tipo:              p.Tipo,
		Descricao:         p.Descricao,
		Valor:             p.Valor,
		Data:              data,
		Categoria:         p.Categoria,
		TipoRecorrencia:   p.TipoRecorrencia,
		ContaRecorrenteID: p.ContaRecorrenteID,
	}, ""
}

func CriarMovimentacaoHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload movimentacaoPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			log.Printf("Erro ao decodificar JSON da movimentação: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"message": "Dados da movimentação inválidos"})
			return
		}

		mov, msg := payload.paraModelo(auth.UsuarioID(c))
		if msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}

		if err := database.CriarMovimentacao(pool, mov); err != nil {
			log.Printf("Erro ao criar movimentação: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao salvar a movimentação"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Movimentação salva com sucesso!", "movimentacao": mov})
	}
}

func ListarMovimentacoesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		movimentacoes, err := database.ListarMovimentacoesPorUsuario(pool, auth.UsuarioID(c))
		if err != nil {
			log.Printf("Erro ao listar movimentações: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao carregar movimentações"})
			return
		}
		if movimentacoes == nil {
			movimentacoes = []models.Movimentacao{}
		}
		c.JSON(http.StatusOK, movimentacoes)
	}
}

func AtualizarMovimentacaoHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idDaRota(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Identificador de movimentação inválido"})
			return
		}

		var payload movimentacaoPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Dados da movimentação inválidos"})
			return
		}

		mov, msg := payload.paraModelo(auth.UsuarioID(c))
		if msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}
		mov.ID = id

		if err := database.AtualizarMovimentacao(pool, mov); err != nil {
			log.Printf("Erro ao atualizar movimentação: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao atualizar a movimentação"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Movimentação atualizada com sucesso!"})
	}
}

func ExcluirMovimentacaoHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idDaRota(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Identificador de movimentação inválido"})
			return
		}

		if err := database.ExcluirMovimentacao(pool, id, auth.UsuarioID(c)); err != nil {
			log.Printf("Erro ao excluir movimentação: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao excluir a movimentação"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Movimentação excluída com sucesso!"})
	}
}
