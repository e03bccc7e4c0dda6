package usecase

import (
	"context"

	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type projectUsecase struct {
	projectRepo domain.ProjectRepository
	profileRepo domain.ProfileRepository
	skillRepo   domain.SkillRepository
	validate    *validator.Validate
}

func NewProjectUsecase(projectRepo domain.ProjectRepository, profileRepo domain.ProfileRepository, skillRepo domain.SkillRepository, validate *validator.Validate) domain.ProjectUsecase {
	return &projectUsecase{
		projectRepo: projectRepo,
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
		validate:    validate,
	}
}

func (u *projectUsecase) AddProject(ctx context.Context, in domain.CreateProjectInput) (*domain.ProjectWithSkills, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	profile, err := u.profileRepo.GetByID(ctx, in.ProfileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	project := &domain.Project{
		ProfileID:   in.ProfileID,
		Title:       in.Title,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Image:       in.Image,
	}

	skills, err := u.projectRepo.CreateWithSkills(ctx, project, in.Skills)
	if err != nil {
		return nil, err
	}

	return &domain.ProjectWithSkills{Project: *project, Skills: skills}, nil
}

func (u *projectUsecase) GetProject(ctx context.Context, id int64) (*domain.ProjectWithSkills, error) {
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if project == nil {
		return nil, apperror.NotFound("Project not found")
	}
	skills, err := u.skillRepo.ListByProjectID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.ProjectWithSkills{Project: *project, Skills: skills}, nil
}

func (u *projectUsecase) GetProjectsByProfile(ctx context.Context, profileID int64) ([]domain.Project, error) {
	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	projects, err := u.projectRepo.ListByProfileID(ctx, profileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return projects, nil
}
