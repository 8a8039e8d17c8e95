package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wallacygomes/siscofi/models"
)

// GerarRelatorio consolida ganhos, gastos e saldo do período informado.
// Datas nulas significam período aberto naquela ponta.
func GerarRelatorio(pool *pgxpool.Pool, usuarioID int, inicio, fim *time.Time) (*models.Relatorio, error) {
	filtro := `usuario_id = $1
		AND ($2::date IS NULL OR data >= $2)
		AND ($3::date IS NULL OR data <= $3)`

	relatorio := &models.Relatorio{}

	resumoQuery := fmt.Sprintf(`
		SELECT
			COALESCE(SUM(CASE WHEN tipo = 'ganho' THEN valor ELSE 0 END), 0) AS total_ganhos,
			COALESCE(SUM(CASE WHEN tipo = 'gasto' THEN valor ELSE 0 END), 0) AS total_gastos
		FROM movimentacoes
		WHERE %s`, filtro)
	err := pool.QueryRow(context.Background(), resumoQuery, usuarioID, inicio, fim).Scan(
		&relatorio.Resumo.TotalGanhos,
		&relatorio.Resumo.TotalGastos,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular resumo do relatório: %v", err)
	}
	relatorio.Resumo.Saldo = relatorio.Resumo.TotalGanhos.Sub(relatorio.Resumo.TotalGastos)

	categoriaQuery := fmt.Sprintf(`
		SELECT COALESCE(categoria, 'Sem categoria') AS categoria, COALESCE(SUM(valor), 0) AS total
		FROM movimentacoes
		WHERE %s AND tipo = 'gasto'
		GROUP BY COALESCE(categoria, 'Sem categoria')
		ORDER BY total DESC`, filtro)
	rows, err := pool.Query(context.Background(), categoriaQuery, usuarioID, inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar gastos por categoria do relatório: %v", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item models.CategoriaTotal
		if err := rows.Scan(&item.Categoria, &item.Total); err != nil {
			return nil, err
		}
		relatorio.GastosPorCategoria = append(relatorio.GastosPorCategoria, item)
	}

	mensalQuery := fmt.Sprintf(`
		SELECT
			TO_CHAR(DATE_TRUNC('month', data), 'MM/YYYY') AS mes,
			COALESCE(SUM(CASE WHEN tipo = 'ganho' THEN valor ELSE 0 END), 0) AS ganhos,
			COALESCE(SUM(CASE WHEN tipo = 'gasto' THEN valor ELSE 0 END), 0) AS gastos
		FROM movimentacoes
		WHERE %s
		GROUP BY DATE_TRUNC('month', data)
		ORDER BY DATE_TRUNC('month', data)`, filtro)
	mensalRows, err := pool.Query(context.Background(), mensalQuery, usuarioID, inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar resumo mensal do relatório: %v", err)
	}
	defer mensalRows.Close()
	for mensalRows.Next() {
		var ponto models.PontoMensal
		if err := mensalRows.Scan(&ponto.Mes, &ponto.Ganhos, &ponto.Gastos); err != nil {
			return nil, err
		}
		relatorio.ResumoMensal = append(relatorio.ResumoMensal, ponto)
	}

	return relatorio, nil
}
