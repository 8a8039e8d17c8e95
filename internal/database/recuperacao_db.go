package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

var ErrTokenRecuperacaoInvalido = errors.New("token de recuperação inválido ou expirado")

// CriarRecuperacaoSenha gera um token de recuperação válido por uma hora.
// O envio do email fica a cargo da camada externa.
func CriarRecuperacaoSenha(pool *pgxpool.Pool, usuarioID int) (string, error) {
	token := uuid.NewString()
	expiraEm := time.Now().Add(1 * time.Hour)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO recuperacoes_senha (token, usuario_id, expira_em) VALUES ($1, $2, $3)`,
		token, usuarioID, expiraEm)
	if err != nil {
		return "", fmt.Errorf("erro ao criar token de recuperação: %v", err)
	}
	return token, nil
}

// RedefinirSenha troca a senha do usuário dono do token e o marca como usado.
func RedefinirSenha(pool *pgxpool.Pool, token, novaSenha string) error {
	ctx := context.Background()
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("erro ao abrir transação: %v", err)
	}
	defer tx.Rollback(ctx)

	var usuarioID int
	err = tx.QueryRow(ctx,
		`SELECT usuario_id FROM recuperacoes_senha
		 WHERE token = $1 AND NOT usado AND expira_em > NOW()
		 FOR UPDATE`, token).Scan(&usuarioID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTokenRecuperacaoInvalido
		}
		return fmt.Errorf("erro ao validar token de recuperação: %v", err)
	}

	senhaHash, err := bcrypt.GenerateFromPassword([]byte(novaSenha), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("erro ao gerar hash da nova senha: %v", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE usuarios SET senha = $1 WHERE id = $2`, string(senhaHash), usuarioID); err != nil {
		return fmt.Errorf("erro ao atualizar senha: %v", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE recuperacoes_senha SET usado = TRUE WHERE token = $1`, token); err != nil {
		return fmt.Errorf("erro ao marcar token como usado: %v", err)
	}

	return tx.Commit(ctx)
}
