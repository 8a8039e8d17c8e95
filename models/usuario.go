package models

import "time"

type Usuario struct {
	ID             int       `json:"id" db:"id"`
	Nome           string    `json:"nome" db:"nome"`
	CPF            string    `json:"cpf" db:"cpf"`
	Email          string    `json:"email" db:"email"`
	Telefone       string    `json:"telefone" db:"telefone"`
	Genero         string    `json:"genero" db:"genero"`
	DataNascimento string    `json:"data_nascimento" db:"data_nascimento"`
	Senha          string    `json:"senha,omitempty" db:"senha"`
	Role           string    `json:"role" db:"role"`
	CriadoEm       time.Time `json:"criado_em" db:"criado_em"`
}
