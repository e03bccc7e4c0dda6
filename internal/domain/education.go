package domain

import "context"

type Institution struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	ID            int64        `json:"id"`
	UserID        int64        `json:"user_id"`
	InstitutionID int64        `json:"institution_id"`
	Degree        string       `json:"degree"`
	StartYear     int          `json:"start_year"`
	EndYear       *int         `json:"end_year,omitempty"` // nil while ongoing
	Institution   *Institution `json:"institution,omitempty"`
}

type CreateEducationInput struct {
	UserID          int64  `json:"user_id" validate:"required"`
	InstitutionName string `json:"institution_name" validate:"required,max=150"`
	Degree          string `json:"degree" validate:"required,max=150"`
	StartYear       int    `json:"start_year" validate:"required,min=1900,max_current_year"`
	EndYear         *int   `json:"end_year" validate:"omitempty,min=1900"`
}

type EducationRepository interface {
	// Create resolves the institution by name upsert and inserts the education
	// row in one transaction.
	Create(ctx context.Context, education *Education, institutionName string) error
	ListByUserID(ctx context.Context, userID int64) ([]Education, error)
}

type EducationUsecase interface {
	AddEducation(ctx context.Context, in CreateEducationInput) (*Education, error)
	GetEducationsByUser(ctx context.Context, userID int64) ([]Education, error)
}
