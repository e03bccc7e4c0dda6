package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-profile-backend/internal/domain"
	"go-profile-backend/internal/usecase"
	"go-profile-backend/pkg/apperror"
	"go-profile-backend/pkg/auth"
	"go-profile-backend/pkg/email"
	"go-profile-backend/pkg/identity"
	"go-profile-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) CreateWithSkills(ctx context.Context, profile *domain.Profile, skillNames []string) ([]domain.Skill, error) {
	args := m.Called(ctx, profile, skillNames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockProfileRepo) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) GetDetail(ctx context.Context, id int64) (*domain.ProfileDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileDetail), args.Error(1)
}

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) CreateWithSkills(ctx context.Context, project *domain.Project, skillNames []string) ([]domain.Skill, error) {
	args := m.Called(ctx, project, skillNames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockProjectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectRepo) ListByProfileID(ctx context.Context, profileID int64) ([]domain.Project, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) List(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) ListByProfileID(ctx context.Context, profileID int64) ([]domain.Skill, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) ListByProjectID(ctx context.Context, projectID int64) ([]domain.Skill, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

type MockEducationRepo struct {
	mock.Mock
}

func (m *MockEducationRepo) Create(ctx context.Context, education *domain.Education, institutionName string) error {
	return m.Called(ctx, education, institutionName).Error(0)
}
func (m *MockEducationRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Education, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) Validate(ctx context.Context, accessToken string) (*identity.Account, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerificationEmail(to string, data email.VerificationEmailData) error {
	return m.Called(to, data).Error(0)
}
func (m *MockMailer) IsConfigured() bool {
	return m.Called().Bool(0)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func newTokens() *auth.TokenService {
	return auth.NewTokenService("test-secret", time.Hour)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject a duplicate email with Conflict", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockProfileRepo), newTokens(), nil, nil, newValidator())

		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.User{ID: 1, Email: "jane@example.com"}, nil)

		_, err := uc.Register(ctx, domain.RegisterInput{
			Email:    "jane@example.com",
			Password: "secret123",
			Name:     "Jane Doe",
		})
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should create an unverified user with a hashed password and 6-digit code", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		mailer := new(MockMailer)
		uc := usecase.NewAuthUsecase(userRepo, new(MockProfileRepo), newTokens(), nil, mailer, newValidator())

		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(nil, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)
		mailer.On("IsConfigured").Return(true)
		mailer.On("SendVerificationEmail", "jane@example.com", mock.AnythingOfType("email.VerificationEmailData")).Return(nil)

		user, err := uc.Register(ctx, domain.RegisterInput{
			Email:    "jane@example.com",
			Password: "secret123",
			Name:     "Jane Doe",
		})
		assert.NoError(t, err)
		assert.False(t, user.IsVerified)
		assert.NotEqual(t, "secret123", user.Password)
		assert.True(t, auth.CheckPassword(user.Password, "secret123"))
		assert.Regexp(t, `^\d{6}$`, user.VerificationCode)
		mailer.AssertExpectations(t)
	})

	t.Run("Should reject invalid input before touching the repository", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockProfileRepo), newTokens(), nil, nil, newValidator())

		_, err := uc.Register(ctx, domain.RegisterInput{
			Email:    "not-an-email",
			Password: "short",
			Name:     "",
		})
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hashed, _ := auth.HashPassword("secret123")

	t.Run("Should fail with Unauthorized for a wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockProfileRepo), newTokens(), nil, nil, newValidator())

		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.User{ID: 1, Email: "jane@example.com", Password: hashed}, nil)

		_, err := uc.Login(ctx, "jane@example.com", "wrong-password")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
	})

	t.Run("Should fail with the same message for an unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockProfileRepo), newTokens(), nil, nil, newValidator())

		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil)

		_, err := uc.Login(ctx, "nobody@example.com", "secret123")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
		assert.Equal(t, "Invalid credentials", appErr.Message)
	})

	t.Run("Should issue a token bound to the user's email and list profiles", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)
		tokens := newTokens()
		uc := usecase.NewAuthUsecase(userRepo, profileRepo, tokens, nil, nil, newValidator())

		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.User{ID: 1, Email: "jane@example.com", Password: hashed}, nil)
		profileRepo.On("ListByUserID", ctx, int64(1)).Return([]domain.Profile{{ID: 7, UserID: 1}}, nil)

		result, err := uc.Login(ctx, "jane@example.com", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "bearer", result.TokenType)
		assert.Len(t, result.Profiles, 1)

		subject, err := tokens.VerifyAccessToken(result.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, "jane@example.com", subject)
	})
}

func TestVerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject a wrong code", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockProfileRepo), newTokens(), nil, nil, newValidator())

		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.User{ID: 1, Email: "jane@example.com", VerificationCode: "123456"}, nil)

		_, err := uc.VerifyEmail(ctx, "jane@example.com", "654321")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should mark the user verified on the correct code", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockProfileRepo), newTokens(), nil, nil, newValidator())

		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.User{ID: 1, Email: "jane@example.com", VerificationCode: "123456"}, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.True(t, u.IsVerified)
		})

		result, err := uc.VerifyEmail(ctx, "jane@example.com", "123456")
		assert.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		userRepo.AssertExpectations(t)
	})

	t.Run("Should treat re-verifying an already verified user as a no-op", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockProfileRepo), newTokens(), nil, nil, newValidator())

		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.User{ID: 1, Email: "jane@example.com", VerificationCode: "123456", IsVerified: true}, nil)

		result, err := uc.VerifyEmail(ctx, "jane@example.com", "123456")
		assert.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should return NotFound for an unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockProfileRepo), newTokens(), nil, nil, newValidator())

		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil)

		_, err := uc.VerifyEmail(ctx, "nobody@example.com", "123456")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestFederatedLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create a pre-verified account on first login", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		provider := new(MockIdentityProvider)
		uc := usecase.NewAuthUsecase(userRepo, new(MockProfileRepo), newTokens(), provider, nil, newValidator())

		provider.On("Validate", ctx, "google-token").Return(&identity.Account{Email: "jane@example.com", Name: "Jane Doe"}, nil)
		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(nil, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.True(t, u.IsVerified)
			assert.Equal(t, domain.SocialTypeGoogle, u.SocialType)
			assert.Empty(t, u.Password)
		})

		result, err := uc.FederatedLogin(ctx, "google-token")
		assert.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		userRepo.AssertExpectations(t)
	})

	t.Run("Should pass through provider rejection", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		provider := new(MockIdentityProvider)
		uc := usecase.NewAuthUsecase(userRepo, new(MockProfileRepo), newTokens(), provider, nil, newValidator())

		provider.On("Validate", ctx, "bad-token").Return(nil, apperror.Unauthorized("Invalid Google Sign-In"))

		_, err := uc.FederatedLogin(ctx, "bad-token")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCreateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail with NotFound for an unknown user and not insert", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(profileRepo, userRepo, newValidator())

		userRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

		_, err := uc.CreateProfile(ctx, domain.CreateProfileInput{
			UserID:      99,
			ProfileType: "developer",
			Skills:      []string{"Python"},
		})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		profileRepo.AssertNotCalled(t, "CreateWithSkills", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should return the profile with its linked skills", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(profileRepo, userRepo, newValidator())

		userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Email: "jane@example.com"}, nil)
		profileRepo.On("CreateWithSkills", ctx, mock.AnythingOfType("*domain.Profile"), []string{"Python", "React"}).
			Return([]domain.Skill{{ID: 1, Name: "Python"}, {ID: 2, Name: "React"}}, nil)

		result, err := uc.CreateProfile(ctx, domain.CreateProfileInput{
			UserID:      1,
			ProfileType: "developer",
			Skills:      []string{"Python", "React"},
			Experience:  3,
		})
		assert.NoError(t, err)
		assert.Len(t, result.Skills, 2)
		assert.Equal(t, "developer", result.ProfileType)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should only change the supplied fields", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(profileRepo, userRepo, newValidator())

		existing := &domain.Profile{
			ID:       7,
			UserID:   1,
			FullName: "Jane Doe",
			Github:   "https://github.com/jane",
			Phone:    "123456789",
		}
		profileRepo.On("GetByUserID", ctx, int64(1)).Return(existing, nil)
		profileRepo.On("Update", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil)

		newName := "Jane Smith"
		updated, err := uc.UpdateProfile(ctx, 1, domain.UpdateProfileInput{FullName: &newName})
		assert.NoError(t, err)
		assert.Equal(t, "Jane Smith", updated.FullName)
		// Untouched fields survive
		assert.Equal(t, "https://github.com/jane", updated.Github)
		assert.Equal(t, "123456789", updated.Phone)
	})

	t.Run("Should fail with NotFound when the user has no profile", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(profileRepo, userRepo, newValidator())

		profileRepo.On("GetByUserID", ctx, int64(2)).Return(nil, nil)

		name := "Jane Doe"
		_, err := uc.UpdateProfile(ctx, 2, domain.UpdateProfileInput{FullName: &name})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		profileRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestAddProject(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Should fail with NotFound for an unknown profile", func(t *testing.T) {
		projectRepo := new(MockProjectRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProjectUsecase(projectRepo, profileRepo, new(MockSkillRepo), newValidator())

		profileRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

		_, err := uc.AddProject(ctx, domain.CreateProjectInput{
			ProfileID:   99,
			Title:       "Side Project",
			Description: "A thing",
			StartDate:   &start,
			EndDate:     &end,
			Skills:      []string{"Python"},
		})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		projectRepo.AssertNotCalled(t, "CreateWithSkills", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should return the project with its skills", func(t *testing.T) {
		projectRepo := new(MockProjectRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProjectUsecase(projectRepo, profileRepo, new(MockSkillRepo), newValidator())

		profileRepo.On("GetByID", ctx, int64(7)).Return(&domain.Profile{ID: 7, UserID: 1}, nil)
		projectRepo.On("CreateWithSkills", ctx, mock.AnythingOfType("*domain.Project"), []string{"Python"}).
			Return([]domain.Skill{{ID: 1, Name: "Python"}}, nil)

		result, err := uc.AddProject(ctx, domain.CreateProjectInput{
			ProfileID:   7,
			Title:       "Side Project",
			Description: "A thing",
			StartDate:   &start,
			EndDate:     &end,
			Skills:      []string{"Python"},
		})
		assert.NoError(t, err)
		assert.Len(t, result.Skills, 1)
	})
}

func TestGetProject(t *testing.T) {
	ctx := context.Background()

	t.Run("Should attach the project's skills", func(t *testing.T) {
		projectRepo := new(MockProjectRepo)
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewProjectUsecase(projectRepo, new(MockProfileRepo), skillRepo, newValidator())

		projectRepo.On("GetByID", ctx, int64(3)).Return(&domain.Project{ID: 3, ProfileID: 7, Title: "Side Project"}, nil)
		skillRepo.On("ListByProjectID", ctx, int64(3)).Return([]domain.Skill{{ID: 1, Name: "Python"}}, nil)

		result, err := uc.GetProject(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, "Side Project", result.Title)
		assert.Len(t, result.Skills, 1)
	})

	t.Run("Should return NotFound for an unknown project", func(t *testing.T) {
		projectRepo := new(MockProjectRepo)
		uc := usecase.NewProjectUsecase(projectRepo, new(MockProfileRepo), new(MockSkillRepo), newValidator())

		projectRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

		_, err := uc.GetProject(ctx, 99)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestAddEducation(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail with NotFound for an unknown user", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		educationRepo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(educationRepo, userRepo, newValidator())

		userRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

		_, err := uc.AddEducation(ctx, domain.CreateEducationInput{
			UserID:          99,
			InstitutionName: "MIT",
			Degree:          "BSc Computer Science",
			StartYear:       2015,
		})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		educationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should resolve the institution by name", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		educationRepo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(educationRepo, userRepo, newValidator())

		userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Email: "jane@example.com"}, nil)
		educationRepo.On("Create", ctx, mock.AnythingOfType("*domain.Education"), "MIT").Return(nil)

		education, err := uc.AddEducation(ctx, domain.CreateEducationInput{
			UserID:          1,
			InstitutionName: "MIT",
			Degree:          "BSc Computer Science",
			StartYear:       2015,
		})
		assert.NoError(t, err)
		assert.Equal(t, "BSc Computer Science", education.Degree)
		educationRepo.AssertExpectations(t)
	})

	t.Run("Should reject a start year in the future", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		educationRepo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(educationRepo, userRepo, newValidator())

		_, err := uc.AddEducation(ctx, domain.CreateEducationInput{
			UserID:          1,
			InstitutionName: "MIT",
			Degree:          "BSc Computer Science",
			StartYear:       time.Now().Year() + 1,
		})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
