package domain

import (
	"context"
	"time"
)

type Experience struct {
	ID          int64      `json:"id"`
	ProfileID   int64      `json:"profile_id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"` // nil while currently employed
	Description string     `json:"description,omitempty"`
}

type CreateExperienceInput struct {
	ProfileID   int64      `json:"profile_id" validate:"required"`
	Title       string     `json:"title" validate:"required,max=150"`
	Company     string     `json:"company" validate:"required,max=150,valid_name"`
	Location    string     `json:"location" validate:"omitempty,max=150"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
}

type ExperienceRepository interface {
	Create(ctx context.Context, experience *Experience) error
	ListByProfileID(ctx context.Context, profileID int64) ([]Experience, error)
}

type ExperienceUsecase interface {
	AddExperience(ctx context.Context, in CreateExperienceInput) (*Experience, error)
	GetExperiencesByProfile(ctx context.Context, profileID int64) ([]Experience, error)
}
