package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	chaveUsuarioID = "usuarioID"
	chaveRole      = "role"
)

// Autenticado exige um Bearer token válido e guarda os dados do usuário no
// contexto da requisição.
func Autenticado() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token de autenticação não informado"})
			return
		}

		claims, err := ValidarToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Sessão inválida ou expirada"})
			return
		}

		c.Set(chaveUsuarioID, claims.UsuarioID)
		c.Set(chaveRole, claims.Role)
		c.Next()
	}
}

// SomenteAdmin barra usuários sem a role ADMIN.
func SomenteAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(chaveRole) != "ADMIN" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Acesso restrito a administradores"})
			return
		}
		c.Next()
	}
}

// UsuarioID devolve o ID do usuário autenticado na requisição.
func UsuarioID(c *gin.Context) int {
	return c.GetInt(chaveUsuarioID)
}
