package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/wallacygomes/siscofi/internal/auth"
	"github.com/wallacygomes/siscofi/internal/database"
	"github.com/wallacygomes/siscofi/internal/distribuicao"
	"github.com/wallacygomes/siscofi/models"
)

type metaPayload struct {
	NomeMeta       string           `json:"nome_meta"`
	ValorAlvo      decimal.Decimal  `json:"valor_alvo"`
	TipoMeta       string           `json:"tipo_meta"`
	DataLimite     *string          `json:"data_limite"`
	Descricao      *string          `json:"descricao"`
	ValorAcumulado *decimal.Decimal `json:"valor_acumulado"`
	Ativa          *bool            `json:"ativa"`
}

func (p *metaPayload) paraModelo(usuarioID int) (*models.Meta, string) {
	if p.NomeMeta == "" || p.TipoMeta == "" {
		return nil, "Nome e categoria da meta são obrigatórios"
	}
	if p.ValorAlvo.LessThanOrEqual(decimal.Zero) {
		return nil, "O valor alvo deve ser maior que zero"
	}

	meta := &models.Meta{
		UsuarioID: usuarioID,
		NomeMeta:  p.NomeMeta,
		TipoMeta:  p.TipoMeta,
		ValorAlvo: p.ValorAlvo,
		Descricao: p.Descricao,
		Ativa:     true,
	}
	if p.ValorAcumulado != nil {
		meta.ValorAcumulado = *p.ValorAcumulado
	}
	if p.Ativa != nil {
		meta.Ativa = *p.Ativa
	}
	if p.DataLimite != nil && *p.DataLimite != "" {
		data, err := time.Parse("2006-01-02", *p.DataLimite)
		if err != nil {
			return nil, "Data limite em formato inválido, use AAAA-MM-DD"
		}
		meta.DataLimite = &data
	}
	return meta, ""
}

func CriarMetaHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload metaPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			log.Printf("Erro ao decodificar JSON da meta: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"message": "Dados da meta inválidos"})
			return
		}

		meta, msg := payload.paraModelo(auth.UsuarioID(c))
		if msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}

		if err := database.CriarMeta(pool, meta); err != nil {
			if errors.Is(err, database.ErrLimiteMetas) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Você atingiu o limite máximo de 3 metas."})
				return
			}
			log.Printf("Erro ao criar meta: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao salvar a meta"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Meta salva com sucesso!", "meta": meta})
	}
}

func ListarMetasHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		metas, err := database.ListarMetasPorUsuario(pool, auth.UsuarioID(c))
		if err != nil {
			log.Printf("Erro ao listar metas: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao carregar metas"})
			return
		}
		if metas == nil {
			metas = []models.Meta{}
		}
		c.JSON(http.StatusOK, metas)
	}
}

func BuscarMetaHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idDaRota(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Identificador de meta inválido"})
			return
		}

		meta, err := database.BuscarMetaPorID(pool, id, auth.UsuarioID(c))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Meta não encontrada"})
			return
		}
		c.JSON(http.StatusOK, meta)
	}
}

func AtualizarMetaHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idDaRota(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Identificador de meta inválido"})
			return
		}

		var payload metaPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Dados da meta inválidos"})
			return
		}

		meta, msg := payload.paraModelo(auth.UsuarioID(c))
		if msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}
		meta.ID = id

		if err := database.AtualizarMeta(pool, meta); err != nil {
			log.Printf("Erro ao atualizar meta: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao atualizar a meta"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Meta atualizada com sucesso!"})
	}
}

func ExcluirMetaHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idDaRota(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Identificador de meta inválido"})
			return
		}

		if err := database.ExcluirMeta(pool, id, auth.UsuarioID(c)); err != nil {
			log.Printf("Erro ao excluir meta: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao excluir a meta"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Meta excluída com sucesso!"})
	}
}

// DistribuirSaldoHandler aciona a distribuição do saldo livre entre as metas
// ativas do usuário autenticado.
func DistribuirSaldoHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	engine := distribuicao.NovaEngine(pool)

	return func(c *gin.Context) {
		var payload struct {
			ValorADistribuir decimal.Decimal `json:"valor_a_distribuir"`
		}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Informe um valor válido para distribuir"})
			return
		}

		resultado, err := engine.Distribuir(c.Request.Context(), auth.UsuarioID(c), payload.ValorADistribuir)
		if err != nil {
			var saldoErr *distribuicao.SaldoInsuficienteError
			switch {
			case errors.Is(err, distribuicao.ErrValorInvalido):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Por favor, insira um valor positivo para distribuir."})
			case errors.As(err, &saldoErr):
				c.JSON(http.StatusBadRequest, gin.H{
					"message": "Saldo insuficiente: você pediu R$ " + saldoErr.Solicitado.StringFixed(2) +
						", mas o saldo disponível é R$ " + saldoErr.Disponivel.StringFixed(2) + ".",
					"solicitado": saldoErr.Solicitado,
					"disponivel": saldoErr.Disponivel,
				})
			case errors.Is(err, distribuicao.ErrSemMetasElegiveis):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Nenhuma meta ativa disponível para receber o saldo."})
			default:
				log.Printf("Erro ao distribuir saldo: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao distribuir o saldo. Tente novamente."})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":   "Saldo distribuído com sucesso!",
			"resultado": resultado,
		})
	}
}
