package database_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wallacygomes/siscofi/internal/database"
	"github.com/wallacygomes/siscofi/models"
)

func novaMeta(usuarioID int, nome string) *models.Meta {
	return &models.Meta{
		UsuarioID:      usuarioID,
		NomeMeta:       nome,
		TipoMeta:       "reserva",
		ValorAlvo:      decimal.RequireFromString("1000.00"),
		ValorAcumulado: decimal.Zero,
		Ativa:          true,
	}
}

func TestCriarEBuscarMeta(t *testing.T) {
	pool := poolDeTeste(t)
	usuario := novoUsuario(t, pool)

	meta := novaMeta(usuario.ID, "Viagem")
	require.NoError(t, database.CriarMeta(pool, meta))
	require.NotZero(t, meta.ID)

	encontrada, err := database.BuscarMetaPorID(pool, meta.ID, usuario.ID)
	require.NoError(t, err)
	assert.Equal(t, "Viagem", encontrada.NomeMeta)
	assert.True(t, encontrada.ValorAlvo.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, encontrada.Ativa)
}

func TestCriarMetaRespeitaOLimite(t *testing.T) {
	pool := poolDeTeste(t)
	usuario := novoUsuario(t, pool)

	for _, nome := range []string{"Primeira", "Segunda", "Terceira"} {
		require.NoError(t, database.CriarMeta(pool, novaMeta(usuario.ID, nome)))
	}

	err := database.CriarMeta(pool, novaMeta(usuario.ID, "Quarta"))
	assert.True(t, errors.Is(err, database.ErrLimiteMetas))

	metas, err := database.ListarMetasPorUsuario(pool, usuario.ID)
	require.NoError(t, err)
	assert.Len(t, metas, 3)
}

func TestBuscarMetaDeOutroUsuario(t *testing.T) {
	pool := poolDeTeste(t)
	dono := novoUsuario(t, pool)
	intruso := novoUsuario(t, pool)

	meta := novaMeta(dono.ID, "Particular")
	require.NoError(t, database.CriarMeta(pool, meta))

	_, err := database.BuscarMetaPorID(pool, meta.ID, intruso.ID)
	assert.Error(t, err)
}

func TestAtualizarEExcluirMeta(t *testing.T) {
	pool := poolDeTeste(t)
	usuario := novoUsuario(t, pool)

	meta := novaMeta(usuario.ID, "Original")
	require.NoError(t, database.CriarMeta(pool, meta))

	meta.NomeMeta = "Renomeada"
	meta.Ativa = false
	require.NoError(t, database.AtualizarMeta(pool, meta))

	depois, err := database.BuscarMetaPorID(pool, meta.ID, usuario.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renomeada", depois.NomeMeta)
	assert.False(t, depois.Ativa)

	require.NoError(t, database.ExcluirMeta(pool, meta.ID, usuario.ID))
	_, err = database.BuscarMetaPorID(pool, meta.ID, usuario.ID)
	assert.Error(t, err)
}
