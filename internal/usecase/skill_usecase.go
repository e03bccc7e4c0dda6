package usecase

import (
	"context"

	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"
)

type skillUsecase struct {
	skillRepo   domain.SkillRepository
	profileRepo domain.ProfileRepository
}

func NewSkillUsecase(skillRepo domain.SkillRepository, profileRepo domain.ProfileRepository) domain.SkillUsecase {
	return &skillUsecase{
		skillRepo:   skillRepo,
		profileRepo: profileRepo,
	}
}

func (u *skillUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	skills, err := u.skillRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return skills, nil
}

func (u *skillUsecase) GetProfileSkills(ctx context.Context, profileID int64) ([]domain.Skill, error) {
	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	skills, err := u.skillRepo.ListByProfileID(ctx, profileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return skills, nil
}
