package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContaRecorrente struct {
	ID            int             `json:"id" db:"id"`
	UsuarioID     int             `json:"usuario_id" db:"usuario_id"`
	Nome          string          `json:"nome" db:"nome"`
	Valor         decimal.Decimal `json:"valor" db:"valor"`
	DiaVencimento int             `json:"dia_vencimento" db:"dia_vencimento"`
	Categoria     *string         `json:"categoria" db:"categoria"`
	Ativa         bool            `json:"ativa" db:"ativa"`
	CriadoEm      time.Time       `json:"criado_em" db:"criado_em"`
}
