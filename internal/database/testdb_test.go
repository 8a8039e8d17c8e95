package database_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/wallacygomes/siscofi/internal/database"
	"github.com/wallacygomes/siscofi/models"
)

func poolDeTeste(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load("../../.env")
	if os.Getenv("DATABASE_URL") == "" && os.Getenv("DB_HOST") == "" {
		t.Skip("banco de dados de teste não configurado")
	}

	pool, err := database.ConnectDB()
	if err != nil {
		t.Fatalf("erro ao conectar ao banco de dados: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.Migrate(pool); err != nil {
		t.Fatalf("erro ao migrar o banco de dados: %v", err)
	}
	return pool
}

func novoUsuario(t *testing.T, pool *pgxpool.Pool) *models.Usuario {
	t.Helper()
	agora := time.Now().UnixNano()
	usuario := &models.Usuario{
		Nome:           "Usuário de Teste",
		CPF:            fmt.Sprintf("%011d", agora%100000000000),
		Email:          fmt.Sprintf("teste.%d@example.com", agora),
		Senha:          "senha-secreta",
		DataNascimento: "1990-01-15",
	}
	if err := database.CadastrarUsuario(pool, usuario); err != nil {
		t.Fatalf("erro ao cadastrar usuário de teste: %v", err)
	}
	t.Cleanup(func() {
		_ = database.ExcluirUsuario(pool, usuario.ID)
	})
	return usuario
}
