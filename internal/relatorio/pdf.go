// Package relatorio exporta o relatório financeiro do período em PDF.
package relatorio

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/wallacygomes/siscofi/models"
)

func descreverPeriodo(inicio, fim *time.Time) string {
	switch {
	case inicio != nil && fim != nil:
		return fmt.Sprintf("Período: %s a %s", inicio.Format("02/01/2006"), fim.Format("02/01/2006"))
	case inicio != nil:
		return fmt.Sprintf("Período: a partir de %s", inicio.Format("02/01/2006"))
	case fim != nil:
		return fmt.Sprintf("Período: até %s", fim.Format("02/01/2006"))
	default:
		return "Período: completo"
	}
}

// GerarPDF monta o PDF do relatório e devolve os bytes prontos para download.
func GerarPDF(rel *models.Relatorio, nomeUsuario string, inicio, fim *time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("Siscofi - Relatório Financeiro"))
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Usuário: %s", nomeUsuario)))
	pdf.Ln(6)
	pdf.Cell(0, 8, tr(descreverPeriodo(inicio, fim)))
	pdf.Ln(6)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Gerado em: %s", time.Now().Format("02/01/2006 15:04"))))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, tr("Resumo"))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Total de ganhos: R$ %s", rel.Resumo.TotalGanhos.StringFixed(2))))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Total de gastos: R$ %s", rel.Resumo.TotalGastos.StringFixed(2))))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Saldo do período: R$ %s", rel.Resumo.Saldo.StringFixed(2))))
	pdf.Ln(12)

	if len(rel.GastosPorCategoria) > 0 {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, tr("Gastos por categoria"))
		pdf.Ln(8)

		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(120, 7, tr("Categoria"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, tr("Total"), "1", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, item := range rel.GastosPorCategoria {
			pdf.CellFormat(120, 7, tr(item.Categoria), "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 7, tr("R$ "+item.Total.StringFixed(2)), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(6)
	}

	if len(rel.ResumoMensal) > 0 {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, tr("Resumo mensal"))
		pdf.Ln(8)

		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(50, 7, tr("Mês"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, tr("Ganhos"), "1", 0, "R", false, 0, "")
		pdf.CellFormat(60, 7, tr("Gastos"), "1", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, ponto := range rel.ResumoMensal {
			pdf.CellFormat(50, 7, tr(ponto.Mes), "1", 0, "L", false, 0, "")
			pdf.CellFormat(60, 7, tr("R$ "+ponto.Ganhos.StringFixed(2)), "1", 0, "R", false, 0, "")
			pdf.CellFormat(60, 7, tr("R$ "+ponto.Gastos.StringFixed(2)), "1", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("erro ao gerar PDF do relatório: %v", err)
	}
	return buf.Bytes(), nil
}
