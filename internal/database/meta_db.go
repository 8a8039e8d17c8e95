package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wallacygomes/siscofi/models"
)

// LimiteMetasPorUsuario é o número máximo de metas simultâneas por usuário.
const LimiteMetasPorUsuario = 3

var ErrLimiteMetas = errors.New("limite máximo de 3 metas atingido")

// CriarMeta adiciona uma nova meta respeitando o limite por usuário.
func CriarMeta(pool *pgxpool.Pool, meta *models.Meta) error {
	var total int
	err := pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM metas WHERE usuario_id = $1`, meta.UsuarioID).Scan(&total)
	if err != nil {
		return fmt.Errorf("erro ao contar metas do usuário: %v", err)
	}
	if total >= LimiteMetasPorUsuario {
		return ErrLimiteMetas
	}

	query := `
		INSERT INTO metas (usuario_id, nome_meta, tipo_meta, valor_alvo, valor_acumulado, data_limite, descricao, ativa)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, criado_em`
	err = pool.QueryRow(context.Background(), query,
		meta.UsuarioID,
		meta.NomeMeta,
		meta.TipoMeta,
		meta.ValorAlvo,
		meta.ValorAcumulado,
		meta.DataLimite,
		meta.Descricao,
		meta.Ativa).Scan(&meta.ID, &meta.CriadoEm)
	if err != nil {
		return fmt.Errorf("erro ao criar meta: %v", err)
	}
	return nil
}

func BuscarMetaPorID(pool *pgxpool.Pool, id, usuarioID int) (*models.Meta, error) {
	query := `
		SELECT id, usuario_id, nome_meta, tipo_meta, valor_alvo, valor_acumulado, data_limite, descricao, ativa, criado_em
		FROM metas
		WHERE id = $1 AND usuario_id = $2`

	var meta models.Meta
	err := pool.QueryRow(context.Background(), query, id, usuarioID).Scan(
		&meta.ID,
		&meta.UsuarioID,
		&meta.NomeMeta,
		&meta.TipoMeta,
		&meta.ValorAlvo,
		&meta.ValorAcumulado,
		&meta.DataLimite,
		&meta.Descricao,
		&meta.Ativa,
		&meta.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("meta com ID %d não encontrada", id)
		}
		return nil, fmt.Errorf("erro ao buscar meta: %v", err)
	}
	return &meta, nil
}

func ListarMetasPorUsuario(pool *pgxpool.Pool, usuarioID int) ([]models.Meta, error) {
	query := `
		SELECT id, usuario_id, nome_meta, tipo_meta, valor_alvo, valor_acumulado, data_limite, descricao, ativa, criado_em
		FROM metas
		WHERE usuario_id = $1
		ORDER BY id`
	rows, err := pool.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar metas: %v", err)
	}
	defer rows.Close()

	var metas []models.Meta
	for rows.Next() {
		var meta models.Meta
		if err := rows.Scan(&meta.ID, &meta.UsuarioID, &meta.NomeMeta, &meta.TipoMeta, &meta.ValorAlvo,
			&meta.ValorAcumulado, &meta.DataLimite, &meta.Descricao, &meta.Ativa, &meta.CriadoEm); err != nil {
			return nil, err
		}
		metas = append(metas, meta)
	}

	return metas, nil
}

func AtualizarMeta(pool *pgxpool.Pool, meta *models.Meta) error {
	query := `
		UPDATE metas
		SET nome_meta = $1, tipo_meta = $2, valor_alvo = $3, valor_acumulado = $4, data_limite = $5, descricao = $6, ativa = $7
		WHERE id = $8 AND usuario_id = $9`
	result, err := pool.Exec(context.Background(), query,
		meta.NomeMeta,
		meta.TipoMeta,
		meta.ValorAlvo,
		meta.ValorAcumulado,
		meta.DataLimite,
		meta.Descricao,
		meta.Ativa,
		meta.ID,
		meta.UsuarioID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar meta: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("meta com ID %d não encontrada", meta.ID)
	}
	return nil
}

func ExcluirMeta(pool *pgxpool.Pool, id, usuarioID int) error {
	result, err := pool.Exec(context.Background(),
		`DELETE FROM metas WHERE id = $1 AND usuario_id = $2`, id, usuarioID)
	if err != nil {
		return fmt.Errorf("erro ao excluir meta: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("meta com ID %d não encontrada", id)
	}
	return nil
}
