package usecase

import (
	"context"

	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type experienceUsecase struct {
	experienceRepo domain.ExperienceRepository
	profileRepo    domain.ProfileRepository
	validate       *validator.Validate
}

func NewExperienceUsecase(experienceRepo domain.ExperienceRepository, profileRepo domain.ProfileRepository, validate *validator.Validate) domain.ExperienceUsecase {
	return &experienceUsecase{
		experienceRepo: experienceRepo,
		profileRepo:    profileRepo,
		validate:       validate,
	}
}

func (u *experienceUsecase) AddExperience(ctx context.Context, in domain.CreateExperienceInput) (*domain.Experience, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	profile, err := u.profileRepo.GetByID(ctx, in.ProfileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("User profile not found")
	}

	experience := &domain.Experience{
		ProfileID:   in.ProfileID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
	}
	if err := u.experienceRepo.Create(ctx, experience); err != nil {
		return nil, apperror.Internal(err)
	}
	return experience, nil
}

func (u *experienceUsecase) GetExperiencesByProfile(ctx context.Context, profileID int64) ([]domain.Experience, error) {
	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	experiences, err := u.experienceRepo.ListByProfileID(ctx, profileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return experiences, nil
}
