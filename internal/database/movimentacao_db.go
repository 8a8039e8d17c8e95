package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wallacygomes/siscofi/models"
)

func CriarMovimentacao(pool *pgxpool.Pool, mov *models.Movimentacao) error {
	query := `
		INSERT INTO movimentacoes (usuario_id, tipo, descricao, valor, data, categoria, tipo_recorrencia, conta_recorrente_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, criado_em`

	err := pool.QueryRow(context.Background(), query,
		mov.UsuarioID,
		mov.Tipo,
		mov.Descricao,
		mov.Valor,
		mov.Data,
		mov.Categoria,
		mov.TipoRecorrencia,
		mov.ContaRecorrenteID).Scan(&mov.ID, &mov.CriadoEm)
	if err != nil {
		return fmt.Errorf("erro ao criar movimentação: %v", err)
	}
	return nil
}

func ListarMovimentacoesPorUsuario(pool *pgxpool.Pool, usuarioID int) ([]models.Movimentacao, error) {
	query := `
		SELECT id, usuario_id, tipo, descricao, valor, data, categoria, tipo_recorrencia, conta_recorrente_id, criado_em
		FROM movimentacoes
		WHERE usuario_id = $1
		ORDER BY data DESC, criado_em DESC`
	rows, err := pool.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar movimentações: %v", err)
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

func BuscarMovimentacaoPorID(pool *pgxpool.Pool, id, usuarioID int) (*models.Movimentacao, error) {
	query := `
		SELECT id, usuario_id, tipo, descricao, valor, data, categoria, tipo_recorrencia, conta_recorrente_id, criado_em
		FROM movimentacoes
		WHERE id = $1 AND usuario_id = $2`

	var mov models.Movimentacao
	err := pool.QueryRow(context.Background(), query, id, usuarioID).Scan(
		&mov.ID,
		&mov.UsuarioID,
		&mov.Tipo,
		&mov.Descricao,
		&mov.Valor,
		&mov.Data,
		&mov.Categoria,
		&mov.TipoRecorrencia,
		&mov.ContaRecorrenteID,
		&mov.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("movimentação com ID %d não encontrada", id)
		}
		return nil, fmt.Errorf("erro ao buscar movimentação: %v", err)
	}

	return &mov, nil
}

func AtualizarMovimentacao(pool *pgxpool.Pool, mov *models.Movimentacao) error {
	query := `
		UPDATE movimentacoes
		SET tipo = $1, descricao = $2, valor = $3, data = $4, categoria = $5, tipo_recorrencia = $6, conta_recorrente_id = $7
		WHERE id = $8 AND usuario_id = $9`

	result, err := pool.Exec(context.Background(), query,
		mov.Tipo,
		mov.Descricao,
		mov.Valor,
		mov.Data,
		mov.Categoria,
		mov.TipoRecorrencia,
		mov.ContaRecorrenteID,
		mov.ID,
		mov.UsuarioID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar movimentação: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("movimentação com ID %d não encontrada", mov.ID)
	}
	return nil
}

func ExcluirMovimentacao(pool *pgxpool.Pool, id, usuarioID int) error {
	result, err := pool.Exec(context.Background(),
		`DELETE FROM movimentacoes WHERE id = $1 AND usuario_id = $2`, id, usuarioID)
	if err != nil {
		return fmt.Errorf("erro ao excluir movimentação: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("movimentação com ID %d não encontrada", id)
	}
	return nil
}
