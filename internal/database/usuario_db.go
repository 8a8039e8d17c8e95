package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wallacygomes/siscofi/models"
	"golang.org/x/crypto/bcrypt"
)

var ErrCredenciaisInvalidas = errors.New("CPF ou senha inválidos")

// CadastrarUsuario registra um novo usuário com a senha já protegida por hash.
func CadastrarUsuario(pool *pgxpool.Pool, usuario *models.Usuario) error {
	senhaHash, err := bcrypt.GenerateFromPassword([]byte(usuario.Senha), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("erro ao gerar hash da senha: %v", err)
	}

	usuario.Role = "USER"
	query := `
		INSERT INTO usuarios (nome, cpf, email, telefone, genero, data_nascimento, senha, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, criado_em`
	err = pool.QueryRow(context.Background(), query,
		usuario.Nome,
		usuario.CPF,
		usuario.Email,
		usuario.Telefone,
		usuario.Genero,
		usuario.DataNascimento,
		string(senhaHash),
		usuario.Role).Scan(&usuario.ID, &usuario.CriadoEm)
	if err != nil {
		return fmt.Errorf("erro ao cadastrar usuário: %v", err)
	}
	usuario.Senha = ""
	return nil
}

// AutenticarUsuario valida CPF e senha e devolve o usuário autenticado.
func AutenticarUsuario(pool *pgxpool.Pool, cpf, senha string) (*models.Usuario, error) {
	var usuario models.Usuario
	query := `SELECT id, nome, cpf, email, senha, role FROM usuarios WHERE cpf = $1`
	err := pool.QueryRow(context.Background(), query, cpf).Scan(
		&usuario.ID,
		&usuario.Nome,
		&usuario.CPF,
		&usuario.Email,
		&usuario.Senha,
		&usuario.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCredenciaisInvalidas
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Senha), []byte(senha)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	usuario.Senha = ""
	return &usuario, nil
}

func BuscarUsuarioPorID(pool *pgxpool.Pool, id int) (*models.Usuario, error) {
	query := `SELECT id, nome, cpf, email, telefone, genero, role, criado_em FROM usuarios WHERE id = $1`

	var usuario models.Usuario
	err := pool.QueryRow(context.Background(), query, id).Scan(
		&usuario.ID,
		&usuario.Nome,
		&usuario.CPF,
		&usuario.Email,
		&usuario.Telefone,
		&usuario.Genero,
		&usuario.Role,
		&usuario.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("usuário com ID %d não encontrado", id)
		}
		return nil, fmt.Errorf("erro ao buscar usuário por id: %v", err)
	}

	return &usuario, nil
}

func BuscarUsuarioPorEmail(pool *pgxpool.Pool, email string) (*models.Usuario, error) {
	query := `SELECT id, nome, email FROM usuarios WHERE email = $1`

	var usuario models.Usuario
	err := pool.QueryRow(context.Background(), query, email).Scan(&usuario.ID, &usuario.Nome, &usuario.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("nenhum usuário cadastrado com o email %s", email)
		}
		return nil, fmt.Errorf("erro ao buscar usuário por email: %v", err)
	}

	return &usuario, nil
}

// ListarUsuarios devolve todos os usuários para o painel de administração.
func ListarUsuarios(pool *pgxpool.Pool) ([]models.Usuario, error) {
	query := `SELECT id, nome, cpf, email, role, criado_em FROM usuarios ORDER BY nome`
	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar usuários: %v", err)
	}
	defer rows.Close()

	var usuarios []models.Usuario
	for rows.Next() {
		var usuario models.Usuario
		if err := rows.Scan(&usuario.ID, &usuario.Nome, &usuario.CPF, &usuario.Email, &usuario.Role, &usuario.CriadoEm); err != nil {
			return nil, err
		}
		usuarios = append(usuarios, usuario)
	}

	return usuarios, nil
}

func AtualizarRoleUsuario(pool *pgxpool.Pool, id int, role string) error {
	if role != "USER" && role != "ADMIN" {
		return fmt.Errorf("role inválida: %s", role)
	}

	result, err := pool.Exec(context.Background(), `UPDATE usuarios SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar role do usuário: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("usuário com ID %d não encontrado", id)
	}
	return nil
}

func ExcluirUsuario(pool *pgxpool.Pool, id int) error {
	result, err := pool.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir usuário: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("usuário com ID %d não encontrado", id)
	}
	return nil
}
