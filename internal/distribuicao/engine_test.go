package distribuicao_test

import (
	"context"
	"errors"
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
	"github.com/wallacygomes/siscofi/internal/distribuicao"
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

func criarUsuarioDeTeste(t *testing.T, pool *pgxpool.Pool) *models.Usuario {
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

func criarGanho(t *testing.T, pool *pgxpool.Pool, usuarioID int, valor string) {
	t.Helper()
	mov := &models.Movimentacao{
		UsuarioID:       usuarioID,
		Tipo:            "ganho",
		Descricao:       "Salário",
		Valor:           decimal.RequireFromString(valor),
		Data:            time.Now(),
		TipoRecorrencia: "unica",
	}
	if err := database.CriarMovimentacao(pool, mov); err != nil {
		t.Fatalf("erro ao criar movimentação de teste: %v", err)
	}
}

func criarMeta(t *testing.T, pool *pgxpool.Pool, usuarioID int, nome, alvo, acumulado string, ativa bool) *models.Meta {
	t.Helper()
	meta := &models.Meta{
		UsuarioID:      usuarioID,
		NomeMeta:       nome,
		TipoMeta:       "reserva",
		ValorAlvo:      decimal.RequireFromString(alvo),
		ValorAcumulado: decimal.RequireFromString(acumulado),
		Ativa:          ativa,
	}
	if err := database.CriarMeta(pool, meta); err != nil {
		t.Fatalf("erro ao criar meta de teste: %v", err)
	}
	return meta
}

func saldoDoUsuario(t *testing.T, pool *pgxpool.Pool, usuarioID int) decimal.Decimal {
	t.Helper()
	var saldo decimal.Decimal
	err := pool.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(CASE WHEN tipo = 'ganho' THEN valor ELSE -valor END), 0)
		FROM movimentacoes WHERE usuario_id = $1`, usuarioID).Scan(&saldo)
	if err != nil {
		t.Fatalf("erro ao consultar saldo: %v", err)
	}
	return saldo
}

func TestDistribuirUmaMeta(t *testing.T) {
	pool := poolDeTeste(t)
	usuario := criarUsuarioDeTeste(t, pool)
	criarGanho(t, pool, usuario.ID, "500.00")
	meta := criarMeta(t, pool, usuario.ID, "Viagem", "1000.00", "200.00", true)

	engine := distribuicao.NovaEngine(pool)
	resultado, err := engine.Distribuir(context.Background(), usuario.ID, decimal.RequireFromString("300.00"))
	require.NoError(t, err)

	assert.Equal(t, 1, resultado.MetasContempladas)
	assert.True(t, resultado.CotaPorMeta.Equal(decimal.RequireFromString("300.00")))
	assert.True(t, resultado.TotalDistribuido.Equal(decimal.RequireFromString("300.00")))

	depois, err := database.BuscarMetaPorID(pool, meta.ID, usuario.ID)
	require.NoError(t, err)
	assert.True(t, depois.ValorAcumulado.Equal(decimal.RequireFromString("500.00")),
		"acumulado deveria ser 500.00, veio %s", depois.ValorAcumulado)

	// O gasto de contrapartida reduz o saldo livre.
	assert.True(t, saldoDoUsuario(t, pool, usuario.ID).Equal(decimal.RequireFromString("200.00")))

	movimentacoes, err := database.ListarMovimentacoesPorUsuario(pool, usuario.ID)
	require.NoError(t, err)
	var lancamentos []models.Movimentacao
	for _, mov := range movimentacoes {
		if mov.Categoria != nil && *mov.Categoria == distribuicao.CategoriaDistribuicao {
			lancamentos = append(lancamentos, mov)
		}
	}
	require.Len(t, lancamentos, 1)
	assert.Equal(t, "gasto", lancamentos[0].Tipo)
	assert.True(t, lancamentos[0].Valor.Equal(decimal.RequireFromString("300.00")))
}

func TestDistribuirSaldoInsuficiente(t *testing.T) {
	pool := poolDeTeste(t)
	usuario := criarUsuarioDeTeste(t, pool)
	criarGanho(t, pool, usuario.ID, "500.00")
	meta := criarMeta(t, pool, usuario.ID, "Reserva", "1000.00", "200.00", true)

	engine := distribuicao.NovaEngine(pool)
	_, err := engine.Distribuir(context.Background(), usuario.ID, decimal.RequireFromString("600.00"))

	var saldoErr *distribuicao.SaldoInsuficienteError
	require.True(t, errors.As(err, &saldoErr), "esperava SaldoInsuficienteError, veio %v", err)
	assert.True(t, saldoErr.Solicitado.Equal(decimal.RequireFromString("600.00")))
	assert.True(t, saldoErr.Disponivel.Equal(decimal.RequireFromString("500.00")))

	// Nada pode ter mudado.
	depois, err := database.BuscarMetaPorID(pool, meta.ID, usuario.ID)
	require.NoError(t, err)
	assert.True(t, depois.ValorAcumulado.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, saldoDoUsuario(t, pool, usuario.ID).Equal(decimal.RequireFromString("500.00")))
}

func TestDistribuirEntreDuasMetas(t *testing.T) {
	pool := poolDeTeste(t)
	usuario := criarUsuarioDeTeste(t, pool)
	criarGanho(t, pool, usuario.ID, "1000.00")
	metaA := criarMeta(t, pool, usuario.ID, "Meta A", "500.00", "100.00", true)
	metaB := criarMeta(t, pool, usuario.ID, "Meta B", "2000.00", "0.00", true)

	engine := distribuicao.NovaEngine(pool)
	resultado, err := engine.Distribuir(context.Background(), usuario.ID, decimal.RequireFromString("200.00"))
	require.NoError(t, err)

	assert.Equal(t, 2, resultado.MetasContempladas)
	assert.True(t, resultado.CotaPorMeta.Equal(decimal.RequireFromString("100.00")))

	depoisA, err := database.BuscarMetaPorID(pool, metaA.ID, usuario.ID)
	require.NoError(t, err)
	depoisB, err := database.BuscarMetaPorID(pool, metaB.ID, usuario.ID)
	require.NoError(t, err)
	assert.True(t, depoisA.ValorAcumulado.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, depoisB.ValorAcumulado.Equal(decimal.RequireFromString("100.00")))

	// Conservação: tudo que saiu do saldo entrou nas metas.
	somaRecebida := depoisA.ValorAcumulado.Sub(metaA.ValorAcumulado).
		Add(depoisB.ValorAcumulado.Sub(metaB.ValorAcumulado))
	assert.True(t, somaRecebida.Equal(decimal.RequireFromString("200.00")))
}

func TestDistribuirSemMetasElegiveis(t *testing.T) {
	pool := poolDeTeste(t)
	usuario := criarUsuarioDeTeste(t, pool)
	criarGanho(t, pool, usuario.ID, "1000.00")

	engine := distribuicao.NovaEngine(pool)

	// Sem nenhuma meta.
	_, err := engine.Distribuir(context.Background(), usuario.ID, decimal.RequireFromString("100.00"))
	assert.True(t, errors.Is(err, distribuicao.ErrSemMetasElegiveis))

	// Meta inativa não conta.
	criarMeta(t, pool, usuario.ID, "Inativa", "500.00", "0.00", false)
	_, err = engine.Distribuir(context.Background(), usuario.ID, decimal.RequireFromString("100.00"))
	assert.True(t, errors.Is(err, distribuicao.ErrSemMetasElegiveis))

	// Meta já concluída também não.
	criarMeta(t, pool, usuario.ID, "Concluída", "500.00", "500.00", true)
	_, err = engine.Distribuir(context.Background(), usuario.ID, decimal.RequireFromString("100.00"))
	assert.True(t, errors.Is(err, distribuicao.ErrSemMetasElegiveis))

	assert.True(t, saldoDoUsuario(t, pool, usuario.ID).Equal(decimal.RequireFromString("1000.00")))
}

func TestDistribuirNaoEIdempotente(t *testing.T) {
	pool := poolDeTeste(t)
	usuario := criarUsuarioDeTeste(t, pool)
	criarGanho(t, pool, usuario.ID, "1000.00")
	meta := criarMeta(t, pool, usuario.ID, "Reserva", "5000.00", "0.00", true)

	engine := distribuicao.NovaEngine(pool)
	valor := decimal.RequireFromString("100.00")

	_, err := engine.Distribuir(context.Background(), usuario.ID, valor)
	require.NoError(t, err)
	_, err = engine.Distribuir(context.Background(), usuario.ID, valor)
	require.NoError(t, err)

	// Duas chamadas iguais geram duas alocações independentes.
	depois, err := database.BuscarMetaPorID(pool, meta.ID, usuario.ID)
	require.NoError(t, err)
	assert.True(t, depois.ValorAcumulado.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, saldoDoUsuario(t, pool, usuario.ID).Equal(decimal.RequireFromString("800.00")))
}

func TestDistribuirPodeUltrapassarOAlvo(t *testing.T) {
	pool := poolDeTeste(t)
	usuario := criarUsuarioDeTeste(t, pool)
	criarGanho(t, pool, usuario.ID, "1000.00")
	meta := criarMeta(t, pool, usuario.ID, "Quase lá", "100.00", "90.00", true)

	engine := distribuicao.NovaEngine(pool)
	_, err := engine.Distribuir(context.Background(), usuario.ID, decimal.RequireFromString("50.00"))
	require.NoError(t, err)

	// A cota não respeita o teto do alvo.
	depois, err := database.BuscarMetaPorID(pool, meta.ID, usuario.ID)
	require.NoError(t, err)
	assert.True(t, depois.ValorAcumulado.Equal(decimal.RequireFromString("140.00")))
}
