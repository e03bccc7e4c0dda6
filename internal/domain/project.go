package domain

import (
	"context"
	"time"
)

type Project struct {
	ID          int64      `json:"id"`
	ProfileID   int64      `json:"profile_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Image       string     `json:"image,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CreateProjectInput struct {
	ProfileID   int64      `json:"profile_id" validate:"required"`
	Title       string     `json:"title" validate:"required,max=150"`
	Description string     `json:"description" validate:"required,max=2000"`
	StartDate   *time.Time `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date" validate:"required"`
	Image       string     `json:"image" validate:"omitempty,max=500"`
	Skills      []string   `json:"skills" validate:"required,dive,required,max=100"`
}

type ProjectWithSkills struct {
	Project
	Skills []Skill `json:"skills"`
}

type ProjectRepository interface {
	// CreateWithSkills persists the project and links each named skill in one
	// transaction, creating missing skills by name upsert.
	CreateWithSkills(ctx context.Context, project *Project, skillNames []string) ([]Skill, error)
	GetByID(ctx context.Context, id int64) (*Project, error)
	ListByProfileID(ctx context.Context, profileID int64) ([]Project, error)
}

type ProjectUsecase interface {
	AddProject(ctx context.Context, in CreateProjectInput) (*ProjectWithSkills, error)
	GetProject(ctx context.Context, id int64) (*ProjectWithSkills, error)
	GetProjectsByProfile(ctx context.Context, profileID int64) ([]Project, error)
}
