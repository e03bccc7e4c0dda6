package domain

import (
	"context"
	"time"
)

// SocialType constants
const (
	SocialTypeGoogle = "GOOGLE"
)

type User struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	SocialType       string    `json:"social_type,omitempty"`
	Password         string    `json:"-"` // bcrypt hash, empty for federated accounts
	IsVerified       bool      `json:"is_verified"`
	VerificationCode string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=100,valid_name"`
}

// AuthResult is returned by every operation that issues an access token.
type AuthResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	User        *User     `json:"user"`
	Profiles    []Profile `json:"profiles,omitempty"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	VerifyEmail(ctx context.Context, email, code string) (*AuthResult, error)
	FederatedLogin(ctx context.Context, providerToken string) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, email string) (*User, error)
}
