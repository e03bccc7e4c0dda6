package usecase

import (
	"context"
	"fmt"
	"math/rand"

	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"
	"go-profile-backend/pkg/auth"
	"go-profile-backend/pkg/email"
	"go-profile-backend/pkg/identity"
	"go-profile-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// IdentityProvider validates a third-party access token and returns the
// account attributes it is bound to.
type IdentityProvider interface {
	Validate(ctx context.Context, accessToken string) (*identity.Account, error)
}

// Mailer sends the verification code to a newly registered user.
type Mailer interface {
	SendVerificationEmail(to string, data email.VerificationEmailData) error
	IsConfigured() bool
}

type authUsecase struct {
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
	tokens      *auth.TokenService
	provider    IdentityProvider
	mailer      Mailer
	validate    *validator.Validate
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	profileRepo domain.ProfileRepository,
	tokens *auth.TokenService,
	provider IdentityProvider,
	mailer Mailer,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
		provider:    provider,
		mailer:      mailer,
		validate:    validate,
	}
}

// generateVerificationCode returns a random 6-digit code
func generateVerificationCode() string {
	return fmt.Sprintf("%06d", rand.Intn(900000)+100000)
}

func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	existing, err := u.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("User already registered")
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Name:             in.Name,
		Email:            in.Email,
		Password:         hashed,
		IsVerified:       false,
		VerificationCode: generateVerificationCode(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Best effort: a mail failure must not fail the registration
	if u.mailer != nil && u.mailer.IsConfigured() {
		mailData := email.VerificationEmailData{
			Name:             user.Name,
			VerificationCode: user.VerificationCode,
		}
		if err := u.mailer.SendVerificationEmail(user.Email, mailData); err != nil {
			logger.Log.Warn("Failed to send verification email", "email", user.Email, "error", err)
		}
	}

	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, userEmail, password string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil || !auth.CheckPassword(user.Password, password) {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	profiles, err := u.profileRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return u.issueToken(user, profiles)
}

func (u *authUsecase) VerifyEmail(ctx context.Context, userEmail, code string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	if user.VerificationCode != code {
		return nil, apperror.BadRequest("Invalid verification code")
	}

	// Re-verifying with the correct code is a no-op
	if !user.IsVerified {
		user.IsVerified = true
		if err := u.userRepo.Update(ctx, user); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	return u.issueToken(user, nil)
}

func (u *authUsecase) FederatedLogin(ctx context.Context, providerToken string) (*domain.AuthResult, error) {
	account, err := u.provider.Validate(ctx, providerToken)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByEmail(ctx, account.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		// First federated login creates a pre-verified account without a password
		user = &domain.User{
			Name:       account.Name,
			Email:      account.Email,
			IsVerified: true,
			SocialType: domain.SocialTypeGoogle,
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	return u.issueToken(user, nil)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userEmail string) (*domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("User not found")
	}
	return user, nil
}

func (u *authUsecase) issueToken(user *domain.User, profiles []domain.Profile) (*domain.AuthResult, error) {
	token, err := u.tokens.GenerateAccessToken(user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
		Profiles:    profiles,
	}, nil
}
