package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wallacygomes/siscofi/models"
)

func CriarContaRecorrente(pool *pgxpool.Pool, conta *models.ContaRecorrente) error {
	query := `
		INSERT INTO contas_recorrentes (usuario_id, nome, valor, dia_vencimento, categoria, ativa)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, criado_em`
	err := pool.QueryRow(context.Background(), query,
		conta.UsuarioID,
		conta.Nome,
		conta.Valor,
		conta.DiaVencimento,
		conta.Categoria,
		conta.Ativa).Scan(&conta.ID, &conta.CriadoEm)
	if err != nil {
		return fmt.Errorf("erro ao criar conta recorrente: %v", err)
	}
	return nil
}

func BuscarContaRecorrentePorID(pool *pgxpool.Pool, id, usuarioID int) (*models.ContaRecorrente, error) {
	query := `
		SELECT id, usuario_id, nome, valor, dia_vencimento, categoria, ativa, criado_em
		FROM contas_recorrentes
		WHERE id = $1 AND usuario_id = $2`

	var conta models.ContaRecorrente
	err := pool.QueryRow(context.Background(), query, id, usuarioID).Scan(
		&conta.ID,
		&conta.UsuarioID,
		&conta.Nome,
		&conta.Valor,
		&conta.DiaVencimento,
		&conta.Categoria,
		&conta.Ativa,
		&conta.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("conta recorrente com ID %d não encontrada", id)
		}
		return nil, fmt.Errorf("erro ao buscar conta recorrente: %v", err)
	}
	return &conta, nil
}

func ListarContasRecorrentesPorUsuario(pool *pgxpool.Pool, usuarioID int) ([]models.ContaRecorrente, error) {
	query := `
		SELECT id, usuario_id, nome, valor, dia_vencimento, categoria, ativa, criado_em
		FROM contas_recorrentes
		WHERE usuario_id = $1
		ORDER BY nome`
	rows, err := pool.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas recorrentes: %v", err)
	}
	defer rows.Close()

	var contas []models.ContaRecorrente
	for rows.Next() {
		var conta models.ContaRecorrente
		if err := rows.Scan(&conta.ID, &conta.UsuarioID, &conta.Nome, &conta.Valor, &conta.DiaVencimento,
			&conta.Categoria, &conta.Ativa, &conta.CriadoEm); err != nil {
			return nil, err
		}
		contas = append(contas, conta)
	}

	return contas, nil
}

func AtualizarContaRecorrente(pool *pgxpool.Pool, conta *models.ContaRecorrente) error {
	query := `
		UPDATE contas_recorrentes
		SET nome = $1, valor = $2, dia_vencimento = $3, categoria = $4, ativa = $5
		WHERE id = $6 AND usuario_id = $7`
	result, err := pool.Exec(context.Background(), query,
		conta.Nome,
		conta.Valor,
		conta.DiaVencimento,
		conta.Categoria,
		conta.Ativa,
		conta.ID,
		conta.UsuarioID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar conta recorrente: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("conta recorrente com ID %d não encontrada", conta.ID)
	}
	return nil
}

func ExcluirContaRecorrente(pool *pgxpool.Pool, id, usuarioID int) error {
	result, err := pool.Exec(context.Background(),
		`DELETE FROM contas_recorrentes WHERE id = $1 AND usuario_id = $2`, id, usuarioID)
	if err != nil {
		return fmt.Errorf("erro ao excluir conta recorrente: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("conta recorrente com ID %d não encontrada", id)
	}
	return nil
}

// LancarContasRecorrentes gera a movimentação de gasto das contas que vencem
// hoje. Uma conta só é lançada uma vez por mês.
func LancarContasRecorrentes(pool *pgxpool.Pool) (int, error) {
	query := `
		INSERT INTO movimentacoes (usuario_id, tipo, descricao, valor, data, categoria, tipo_recorrencia, conta_recorrente_id)
		SELECT c.usuario_id, 'gasto', c.nome, c.valor, CURRENT_DATE, c.categoria, 'mensal', c.id
		FROM contas_recorrentes c
		WHERE c.ativa
		AND c.dia_vencimento = EXTRACT(DAY FROM CURRENT_DATE)
		AND NOT EXISTS (
			SELECT 1 FROM movimentacoes m
			WHERE m.conta_recorrente_id = c.id
			AND DATE_TRUNC('month', m.data) = DATE_TRUNC('month', CURRENT_DATE)
		)`
	result, err := pool.Exec(context.Background(), query)
	if err != nil {
		return 0, fmt.Errorf("erro ao lançar contas recorrentes: %v", err)
	}
	return int(result.RowsAffected()), nil
}
