package handlers

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wallacygomes/siscofi/internal/auth"
	"github.com/wallacygomes/siscofi/internal/database"
	"github.com/wallacygomes/siscofi/models"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	cpfRegex   = regexp.MustCompile(`^\d{11}$|^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
)

// CadastrarUsuarioHandler processa o cadastro de um novo usuário.
func CadastrarUsuarioHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var usuario models.Usuario
		if err := c.ShouldBindJSON(&usuario); err != nil {
			log.Printf("Erro ao decodificar JSON do cadastro: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"message": "Dados de cadastro inválidos"})
			return
		}

		if usuario.Nome == "" || usuario.CPF == "" || usuario.Email == "" || usuario.Senha == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Nome, CPF, email e senha são obrigatórios"})
			return
		}
		if !cpfRegex.MatchString(usuario.CPF) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "CPF em formato inválido"})
			return
		}
		if !emailRegex.MatchString(usuario.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email em formato inválido"})
			return
		}

		if err := database.CadastrarUsuario(pool, &usuario); err != nil {
			log.Printf("Erro ao cadastrar usuário: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao cadastrar usuário. CPF ou email já podem estar em uso."})
			return
		}

		log.Printf("Usuário cadastrado com sucesso: ID = %d", usuario.ID)
		c.JSON(http.StatusCreated, gin.H{"message": "Cadastro realizado com sucesso!", "userId": usuario.ID})
	}
}

// LoginHandler autentica por CPF e senha e devolve o token de sessão.
func LoginHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var credenciais struct {
			CPF   string `json:"cpf"`
			Senha string `json:"senha"`
		}
		if err := c.ShouldBindJSON(&credenciais); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Dados de login inválidos"})
			return
		}

		usuario, err := database.AutenticarUsuario(pool, credenciais.CPF, credenciais.Senha)
		if err != nil {
			if errors.Is(err, database.ErrCredenciaisInvalidas) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "CPF ou senha incorretos"})
				return
			}
			log.Printf("Erro ao autenticar usuário: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao realizar login"})
			return
		}

		token, err := auth.GerarToken(usuario)
		if err != nil {
			log.Printf("Erro ao gerar token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao realizar login"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Login realizado com sucesso!",
			"token":    token,
			"userId":   usuario.ID,
			"userName": usuario.Nome,
			"role":     usuario.Role,
		})
	}
}

// SolicitarRecuperacaoSenhaHandler emite o token de recuperação. A resposta é
// a mesma existindo ou não o email, para não revelar cadastros.
func SolicitarRecuperacaoSenhaHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&payload); err != nil || payload.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Informe o email cadastrado"})
			return
		}

		mensagem := "Se o email estiver cadastrado, um link de recuperação foi enviado."

		usuario, err := database.BuscarUsuarioPorEmail(pool, payload.Email)
		if err != nil {
			log.Printf("Recuperação de senha solicitada para email não cadastrado: %s", payload.Email)
			c.JSON(http.StatusOK, gin.H{"message": mensagem})
			return
		}

		token, err := database.CriarRecuperacaoSenha(pool, usuario.ID)
		if err != nil {
			log.Printf("Erro ao criar token de recuperação: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao processar a solicitação"})
			return
		}

		// O envio do email é um colaborador externo; aqui o link é registrado.
		log.Printf("Link de recuperação para %s: /redefinir-senha?token=%s", usuario.Email, token)
		c.JSON(http.StatusOK, gin.H{"message": mensagem})
	}
}

// RedefinirSenhaHandler troca a senha a partir de um token de recuperação.
func RedefinirSenhaHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload struct {
			Token     string `json:"token"`
			NovaSenha string `json:"nova_senha"`
		}
		if err := c.ShouldBindJSON(&payload); err != nil || payload.Token == "" || payload.NovaSenha == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Token e nova senha são obrigatórios"})
			return
		}
		if len(payload.NovaSenha) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A nova senha deve ter ao menos 6 caracteres"})
			return
		}

		if err := database.RedefinirSenha(pool, payload.Token, payload.NovaSenha); err != nil {
			if errors.Is(err, database.ErrTokenRecuperacaoInvalido) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Token de recuperação inválido ou expirado"})
				return
			}
			log.Printf("Erro ao redefinir senha: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao redefinir a senha"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Senha redefinida com sucesso!"})
	}
}

func idDaRota(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}
