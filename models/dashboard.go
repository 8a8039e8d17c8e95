package models

import "github.com/shopspring/decimal"

// ResumoDashboard alimenta os cartões da tela inicial.
type ResumoDashboard struct {
	SaldoAtual decimal.Decimal `json:"saldoAtual"`
	GanhosMes  decimal.Decimal `json:"ganhosMes"`
	GastosMes  decimal.Decimal `json:"gastosMes"`
}

type CategoriaTotal struct {
	Categoria string          `json:"categoria"`
	Total     decimal.Decimal `json:"total"`
}

type PontoMensal struct {
	Mes    string          `json:"mes"`
	Ganhos decimal.Decimal `json:"ganhos"`
	Gastos decimal.Decimal `json:"gastos"`
}

type ResumoRelatorio struct {
	TotalGanhos decimal.Decimal `json:"total_ganhos"`
	TotalGastos decimal.Decimal `json:"total_gastos"`
	Saldo       decimal.Decimal `json:"saldo"`
}

type Relatorio struct {
	Resumo             ResumoRelatorio  `json:"resumo"`
	GastosPorCategoria []CategoriaTotal `json:"gastos_por_categoria"`
	ResumoMensal       []PontoMensal    `json:"resumo_mensal"`
}

type Dica struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
}
