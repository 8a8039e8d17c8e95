package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wallacygomes/siscofi/internal/auth"
	"github.com/wallacygomes/siscofi/internal/database"
	"github.com/wallacygomes/siscofi/models"
)

func ListarUsuariosHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarios, err := database.ListarUsuarios(pool)
		if err != nil {
			log.Printf("Erro ao listar usuários: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao carregar usuários"})
			return
		}
		if usuarios == nil {
			usuarios = []models.Usuario{}
		}
		c.JSON(http.StatusOK, usuarios)
	}
}

func AtualizarUsuarioAdminHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idDaRota(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Identificador de usuário inválido"})
			return
		}

		var payload struct {
			Role string `json:"role"`
		}
		if err := c.ShouldBindJSON(&payload); err != nil || payload.Role == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Informe a role do usuário"})
			return
		}

		if err := database.AtualizarRoleUsuario(pool, id, payload.Role); err != nil {
			log.Printf("Erro ao atualizar role do usuário %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao atualizar o usuário"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Usuário atualizado com sucesso!"})
	}
}

func ExcluirUsuarioAdminHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idDaRota(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Identificador de usuário inválido"})
			return
		}

		if id == auth.UsuarioID(c) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Um administrador não pode excluir a própria conta"})
			return
		}

		if err := database.ExcluirUsuario(pool, id); err != nil {
			log.Printf("Erro ao excluir usuário %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao excluir o usuário"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Usuário excluído com sucesso!"})
	}
}
