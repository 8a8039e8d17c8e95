package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS usuarios (
		id SERIAL PRIMARY KEY,
		nome TEXT NOT NULL,
		cpf TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		telefone TEXT NOT NULL DEFAULT '',
		genero TEXT NOT NULL DEFAULT '',
		data_nascimento DATE,
		senha TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'USER',
		criado_em TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS contas_recorrentes (
		id SERIAL PRIMARY KEY,
		usuario_id INTEGER NOT NULL REFERENCES usuarios(id) ON DELETE CASCADE,
		nome TEXT NOT NULL,
		valor NUMERIC(12,2) NOT NULL,
		dia_vencimento INTEGER NOT NULL CHECK (dia_vencimento BETWEEN 1 AND 31),
		categoria TEXT,
		ativa BOOLEAN NOT NULL DEFAULT TRUE,
		criado_em TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS movimentacoes (
		id SERIAL PRIMARY KEY,
		usuario_id INTEGER NOT NULL REFERENCES usuarios(id) ON DELETE CASCADE,
		tipo TEXT NOT NULL CHECK (tipo IN ('ganho', 'gasto')),
		descricao TEXT NOT NULL,
		valor NUMERIC(12,2) NOT NULL CHECK (valor > 0),
		data DATE NOT NULL,
		categoria TEXT,
		tipo_recorrencia TEXT NOT NULL DEFAULT 'unica',
		conta_recorrente_id INTEGER REFERENCES contas_recorrentes(id) ON DELETE SET NULL,
		criado_em TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS metas (
		id SERIAL PRIMARY KEY,
		usuario_id INTEGER NOT NULL REFERENCES usuarios(id) ON DELETE CASCADE,
		nome_meta TEXT NOT NULL,
		tipo_meta TEXT NOT NULL,
		valor_alvo NUMERIC(12,2) NOT NULL CHECK (valor_alvo > 0),
		valor_acumulado NUMERIC(12,2) NOT NULL DEFAULT 0,
		data_limite DATE,
		descricao TEXT,
		ativa BOOLEAN NOT NULL DEFAULT TRUE,
		criado_em TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS recuperacoes_senha (
		token UUID PRIMARY KEY,
		usuario_id INTEGER NOT NULL REFERENCES usuarios(id) ON DELETE CASCADE,
		expira_em TIMESTAMPTZ NOT NULL,
		usado BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movimentacoes_usuario ON movimentacoes(usuario_id, data)`,
	`CREATE INDEX IF NOT EXISTS idx_metas_usuario ON metas(usuario_id)`,
}

// Migrate cria as tabelas do Siscofi caso ainda não existam.
func Migrate(pool *pgxpool.Pool) error {
	for _, ddl := range migrations {
		if _, err := pool.Exec(context.Background(), ddl); err != nil {
			return fmt.Errorf("erro ao executar migração: %v", err)
		}
	}
	return nil
}
