package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Meta struct {
	ID             int             `json:"id" db:"id"`
	UsuarioID      int             `json:"usuario_id" db:"usuario_id"`
	NomeMeta       string          `json:"nome_meta" db:"nome_meta"`
	TipoMeta       string          `json:"tipo_meta" db:"tipo_meta"`
	ValorAlvo      decimal.Decimal `json:"valor_alvo" db:"valor_alvo"`
	ValorAcumulado decimal.Decimal `json:"valor_acumulado" db:"valor_acumulado"`
	DataLimite     *time.Time      `json:"data_limite" db:"data_limite"`
	Descricao      *string         `json:"descricao" db:"descricao"`
	Ativa          bool            `json:"ativa" db:"ativa"`
	CriadoEm       time.Time       `json:"criado_em" db:"criado_em"`
}

func (m *Meta) ValorRestante() decimal.Decimal {
	return m.ValorAlvo.Sub(m.ValorAcumulado)
}

// Elegivel indica se a meta ainda pode receber saldo distribuído.
func (m *Meta) Elegivel() bool {
	return m.Ativa && m.ValorAcumulado.LessThan(m.ValorAlvo)
}
