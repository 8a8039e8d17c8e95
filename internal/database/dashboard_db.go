package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wallacygomes/siscofi/models"
)

func ResumoDashboard(pool *pgxpool.Pool, usuarioID int) (*models.ResumoDashboard, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN tipo = 'ganho' THEN valor ELSE -valor END), 0) AS saldo_atual,
			COALESCE(SUM(CASE WHEN tipo = 'ganho' AND DATE_TRUNC('month', data) = DATE_TRUNC('month', CURRENT_DATE) THEN valor ELSE 0 END), 0) AS ganhos_mes,
			COALESCE(SUM(CASE WHEN tipo = 'gasto' AND DATE_TRUNC('month', data) = DATE_TRUNC('month', CURRENT_DATE) THEN valor ELSE 0 END), 0) AS gastos_mes
		FROM movimentacoes
		WHERE usuario_id = $1`

	var resumo models.ResumoDashboard
	err := pool.QueryRow(context.Background(), query, usuarioID).Scan(
		&resumo.SaldoAtual,
		&resumo.GanhosMes,
		&resumo.GastosMes,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular resumo do dashboard: %v", err)
	}
	return &resumo, nil
}

func UltimasMovimentacoes(pool *pgxpool.Pool, usuarioID, limite int) ([]models.Movimentacao, error) {
	query := `
		SELECT id, usuario_id, tipo, descricao, valor, data, categoria, tipo_recorrencia, conta_recorrente_id, criado_em
		FROM movimentacoes
		WHERE usuario_id = $1
		ORDER BY data DESC, criado_em DESC
		LIMIT $2`
	rows, err := pool.Query(context.Background(), query, usuarioID, limite)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar últimas movimentações: %v", err)
	}
	defer rows.Close()

	var movimentacoes []models.Movimentacao
	for rows.Next() {
		var mov models.Movimentacao
		if err := rows.Scan(&mov.ID, &mov.UsuarioID, &mov.Tipo, &mov.Descricao, &mov.Valor, &mov.Data,
			&mov.Categoria, &mov.TipoRecorrencia, &mov.ContaRecorrenteID, &mov.CriadoEm); err != nil {
			return nil, err
		}
		movimentacoes = append(movimentacoes, mov)
	}
	return movimentacoes, nil
}

// HistoricoMovimentacoes agrupa ganhos e gastos por mês do ano corrente.
func HistoricoMovimentacoes(pool *pgxpool.Pool, usuarioID int) ([]models.PontoMensal, error) {
	query := `
		SELECT
			TO_CHAR(DATE_TRUNC('month', data), 'MM/YYYY') AS mes,
			COALESCE(SUM(CASE WHEN tipo = 'ganho' THEN valor ELSE 0 END), 0) AS ganhos,
			COALESCE(SUM(CASE WHEN tipo = 'gasto' THEN valor ELSE 0 END), 0) AS gastos
		FROM movimentacoes
		WHERE usuario_id = $1
		AND DATE_PART('year', data) = DATE_PART('year', CURRENT_DATE)
		GROUP BY DATE_TRUNC('month', data)
		ORDER BY DATE_TRUNC('month', data)`

	rows, err := pool.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico de movimentações: %v", err)
	}
	defer rows.Close()

	var historico []models.PontoMensal
	for rows.Next() {
		var ponto models.PontoMensal
		if err := rows.Scan(&ponto.Mes, &ponto.Ganhos, &ponto.Gastos); err != nil {
			return nil, err
		}
		historico = append(historico, ponto)
	}
	return historico, nil
}

// GastosPorCategoria totaliza os gastos do mês corrente por categoria.
func GastosPorCategoria(pool *pgxpool.Pool, usuarioID int) ([]models.CategoriaTotal, error) {
	query := `
		SELECT COALESCE(categoria, 'Sem categoria') AS categoria, COALESCE(SUM(valor), 0) AS total
		FROM movimentacoes
		WHERE usuario_id = $1 AND tipo = 'gasto'
		AND DATE_TRUNC('month', data) = DATE_TRUNC('month', CURRENT_DATE)
		GROUP BY COALESCE(categoria, 'Sem categoria')
		ORDER BY total DESC`
	rows, err := pool.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar gastos por categoria: %v", err)
	}
	defer rows.Close()

	var gastos []models.CategoriaTotal
	for rows.Next() {
		var item models.CategoriaTotal
		if err := rows.Scan(&item.Categoria, &item.Total); err != nil {
			return nil, err
		}
		gastos = append(gastos, item)
	}
	return gastos, nil
}
