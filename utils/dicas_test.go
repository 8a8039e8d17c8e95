package utils_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wallacygomes/siscofi/internal/database"
	"github.com/wallacygomes/siscofi/models"
	"github.com/wallacygomes/siscofi/utils"
)

func poolDeTeste(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load("../.env")
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

func temDica(dicas []models.Dica, titulo string) bool {
	for _, dica := range dicas {
		if dica.Titulo == titulo {
			return true
		}
	}
	return false
}

func TestGerarDicasSemMetas(t *testing.T) {
	pool := poolDeTeste(t)
	usuario := novoUsuario(t, pool)

	dicas, err := utils.GerarDicas(pool, usuario.ID)
	require.NoError(t, err)
	assert.True(t, temDica(dicas, "Comece uma meta"))
}

func TestGerarDicasMetaConcluida(t *testing.T) {
	pool := poolDeTeste(t)
	usuario := novoUsuario(t, pool)

	meta := &models.Meta{
		UsuarioID:      usuario.ID,
		NomeMeta:       "Reserva",
		TipoMeta:       "reserva",
		ValorAlvo:      decimal.RequireFromString("1000.00"),
		ValorAcumulado: decimal.RequireFromString("1000.00"),
		Ativa:          true,
	}
	require.NoError(t, database.CriarMeta(pool, meta))

	dicas, err := utils.GerarDicas(pool, usuario.ID)
	require.NoError(t, err)
	assert.True(t, temDica(dicas, "Meta concluída"))
	assert.False(t, temDica(dicas, "Comece uma meta"))
}

func TestGerarDicasSaldoNegativo(t *testing.T) {
	pool := poolDeTeste(t)
	usuario := novoUsuario(t, pool)

	mov := &models.Movimentacao{
		UsuarioID:       usuario.ID,
		Tipo:            "gasto",
		Descricao:       "Cartão",
		Valor:           decimal.RequireFromString("500.00"),
		Data:            time.Now(),
		TipoRecorrencia: "unica",
	}
	require.NoError(t, database.CriarMovimentacao(pool, mov))

	dicas, err := utils.GerarDicas(pool, usuario.ID)
	require.NoError(t, err)
	assert.True(t, temDica(dicas, "Saldo negativo"))
}
