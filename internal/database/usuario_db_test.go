package database_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wallacygomes/siscofi/internal/database"
)

func TestCadastrarEAutenticarUsuario(t *testing.T) {
	pool := poolDeTeste(t)
	usuario := novoUsuario(t, pool)

	assert.NotZero(t, usuario.ID)
	assert.Equal(t, "USER", usuario.Role)
	assert.Empty(t, usuario.Senha, "a senha não deve ficar em memória após o cadastro")

	autenticado, err := database.AutenticarUsuario(pool, usuario.CPF, "senha-secreta")
	require.NoError(t, err)
	assert.Equal(t, usuario.ID, autenticado.ID)
	assert.Empty(t, autenticado.Senha)
}

func TestAutenticarUsuarioSenhaErrada(t *testing.T) {
	pool := poolDeTeste(t)
	usuario := novoUsuario(t, pool)

	_, err := database.AutenticarUsuario(pool, usuario.CPF, "senha-errada")
	assert.True(t, errors.Is(err, database.ErrCredenciaisInvalidas))
}

func TestAutenticarUsuarioInexistente(t *testing.T) {
	pool := poolDeTeste(t)

	_, err := database.AutenticarUsuario(pool, "00000000000", "qualquer")
	assert.True(t, errors.Is(err, database.ErrCredenciaisInvalidas))
}

func TestAtualizarRoleUsuario(t *testing.T) {
	pool := poolDeTeste(t)
	usuario := novoUsuario(t, pool)

	require.NoError(t, database.AtualizarRoleUsuario(pool, usuario.ID, "ADMIN"))

	depois, err := database.BuscarUsuarioPorID(pool, usuario.ID)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", depois.Role)
}

func TestRedefinirSenhaComToken(t *testing.T) {
	pool := poolDeTeste(t)
	usuario := novoUsuario(t, pool)

	token, err := database.CriarRecuperacaoSenha(pool, usuario.ID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, database.RedefinirSenha(pool, token, "senha-nova"))

	_, err = database.AutenticarUsuario(pool, usuario.CPF, "senha-secreta")
	assert.True(t, errors.Is(err, database.ErrCredenciaisInvalidas))

	autenticado, err := database.AutenticarUsuario(pool, usuario.CPF, "senha-nova")
	require.NoError(t, err)
	assert.Equal(t, usuario.ID, autenticado.ID)

	// Token é de uso único.
	err = database.RedefinirSenha(pool, token, "outra-senha")
	assert.True(t, errors.Is(err, database.ErrTokenRecuperacaoInvalido))
}

func TestRedefinirSenhaTokenInvalido(t *testing.T) {
	pool := poolDeTeste(t)

	err := database.RedefinirSenha(pool, uuid.NewString(), "nova")
	assert.True(t, errors.Is(err, database.ErrTokenRecuperacaoInvalido))
}
