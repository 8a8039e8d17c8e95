package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Movimentacao struct {
	ID                int             `json:"id" db:"id"`
	UsuarioID         int             `json:"usuario_id" db:"usuario_id"`
	Tipo              string          `json:"tipo" db:"tipo"` // ganho | gasto
	Descricao         string          `json:"descricao" db:"descricao"`
	Valor             decimal.Decimal `json:"valor" db:"valor"`
	Data              time.Time       `json:"data" db:"data"`
	Categoria         *string         `json:"categoria" db:"categoria"`
	TipoRecorrencia   string          `json:"tipo_recorrencia" db:"tipo_recorrencia"`
	ContaRecorrenteID *int            `json:"conta_recorrente_id" db:"conta_recorrente_id"`
	CriadoEm          time.Time       `json:"criado_em" db:"criado_em"`
}
