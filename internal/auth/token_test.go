package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wallacygomes/siscofi/models"
)

func TestGerarEValidarToken(t *testing.T) {
	usuario := &models.Usuario{ID: 42, Nome: "Maria Silva", Role: "USER"}

	token, err := GerarToken(usuario)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UsuarioID)
	assert.Equal(t, "Maria Silva", claims.Nome)
	assert.Equal(t, "USER", claims.Role)
}

func TestValidarTokenAdulterado(t *testing.T) {
	token, err := GerarToken(&models.Usuario{ID: 7, Nome: "João", Role: "ADMIN"})
	require.NoError(t, err)

	adulterado := token + "xx"
	_, err = ValidarToken(adulterado)
	assert.Error(t, err)
}

func TestValidarTokenVazio(t *testing.T) {
	_, err := ValidarToken("")
	assert.Error(t, err)
}
