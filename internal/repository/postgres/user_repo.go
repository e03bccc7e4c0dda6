package postgres

import (
	"context"
	"errors"

	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (name, email, social_type, password, is_verified, verification_code, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
              RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.SocialType, user.Password, user.IsVerified, user.VerificationCode,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("User with this email already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, name, email, social_type, password, is_verified, verification_code, created_at, updated_at
              FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, email, social_type, password, is_verified, verification_code, created_at, updated_at
              FROM users WHERE email = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET name = $2, social_type = $3, password = $4, is_verified = $5,
              verification_code = $6, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.SocialType, user.Password, user.IsVerified, user.VerificationCode,
	)
	return err
}

func (r *userRepo) scanOne(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.SocialType, &user.Password,
		&user.IsVerified, &user.VerificationCode, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
