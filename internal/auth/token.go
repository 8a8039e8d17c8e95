package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wallacygomes/siscofi/models"
)

const validadeToken = 24 * time.Hour

type Claims struct {
	UsuarioID int    `json:"usuario_id"`
	Nome      string `json:"nome"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func segredo() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("siscofi-segredo-dev")
}

// GerarToken emite o JWT de sessão do usuário autenticado.
func GerarToken(usuario *models.Usuario) (string, error) {
	claims := &Claims{
		UsuarioID: usuario.ID,
		Nome:      usuario.Nome,
		Role:      usuario.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validadeToken)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	assinado, err := token.SignedString(segredo())
	if err != nil {
		return "", fmt.Errorf("erro ao assinar token: %v", err)
	}
	return assinado, nil
}

func ValidarToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de assinatura inválido")
		}
		return segredo(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("token inválido ou expirado")
	}
	return claims, nil
}
