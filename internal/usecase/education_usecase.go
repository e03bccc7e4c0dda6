package usecase

import (
	"context"

	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type educationUsecase struct {
	educationRepo domain.EducationRepository
	userRepo      domain.UserRepository
	validate      *validator.Validate
}

func NewEducationUsecase(educationRepo domain.EducationRepository, userRepo domain.UserRepository, validate *validator.Validate) domain.EducationUsecase {
	return &educationUsecase{
		educationRepo: educationRepo,
		userRepo:      userRepo,
		validate:      validate,
	}
}

func (u *educationUsecase) AddEducation(ctx context.Context, in domain.CreateEducationInput) (*domain.Education, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	user, err := u.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	education := &domain.Education{
		UserID:    in.UserID,
		Degree:    in.Degree,
		StartYear: in.StartYear,
		EndYear:   in.EndYear,
	}
	if err := u.educationRepo.Create(ctx, education, in.InstitutionName); err != nil {
		return nil, apperror.Internal(err)
	}
	return education, nil
}

func (u *educationUsecase) GetEducationsByUser(ctx context.Context, userID int64) ([]domain.Education, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	educations, err := u.educationRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return educations, nil
}
