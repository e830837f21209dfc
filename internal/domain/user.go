package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Name          *string   `json:"name"`
	Company       *string   `json:"company"`
	Role          *string   `json:"role"`
	Timezone      *string   `json:"timezone"`
	Language      *string   `json:"language"`
	RoleID        int       `json:"role_id"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RegisterRequest espelha o formulário de cadastro
type RegisterRequest struct {
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
	Name            *string `json:"name"`
	Company         *string `json:"company"`
	Role            *string `json:"role"`
	Timezone        *string `json:"timezone"`
	Language        *string `json:"language"`
}

// ProfileUpsertRequest contém os campos opcionais do perfil
type ProfileUpsertRequest struct {
	Name     *string `json:"name"`
	Company  *string `json:"company"`
	Role     *string `json:"role"`
	Timezone *string `json:"timezone"`
	Language *string `json:"language"`
}

// EmailVerifiedHook é o payload enviado pelo provedor de autenticação
type EmailVerifiedHook struct {
	Record struct {
		ID    string  `json:"id"`
		Email *string `json:"email"`
	} `json:"record"`
}

type Claims struct {
	UserID     string
	UserEmail  string
	UserName   *string
	UserRoleID int
	jwt.RegisteredClaims
}
