package domain

import (
	"context"
	"time"
)

type Profile struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	ProfileType  string    `json:"profile_type"`
	Experience   int       `json:"experience"` // years
	Email        string    `json:"email,omitempty"`
	PhoneCountry string    `json:"phone_country,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	FullName     string    `json:"full_name,omitempty"`
	AddressArea  string    `json:"address_area,omitempty"`
	Link         string    `json:"link,omitempty"`
	Github       string    `json:"github,omitempty"`
	Bitbucket    string    `json:"bitbucket,omitempty"`
	Gitlab       string    `json:"gitlab,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateProfileInput struct {
	UserID       int64    `json:"user_id" validate:"required"`
	ProfileType  string   `json:"profile_type" validate:"required,max=50"`
	Skills       []string `json:"skills" validate:"dive,required,max=100"`
	Experience   int      `json:"experience" validate:"min=0,max=80"`
	Email        string   `json:"email" validate:"omitempty,email"`
	PhoneCountry string   `json:"phone_country" validate:"omitempty,max=10"`
	Phone        string   `json:"phone" validate:"omitempty,valid_phone"`
	ProfileImage string   `json:"profile_image" validate:"omitempty,max=500"`
	FullName     string   `json:"full_name" validate:"omitempty,max=100,valid_name"`
	AddressArea  string   `json:"address_area" validate:"omitempty,max=200"`
	Link         string   `json:"link" validate:"omitempty,url"`
	Github       string   `json:"github" validate:"omitempty,url"`
	Bitbucket    string   `json:"bitbucket" validate:"omitempty,url"`
	Gitlab       string   `json:"gitlab" validate:"omitempty,url"`
}

// UpdateProfileInput carries partial-update semantics: nil fields are left
// untouched, never nulled.
type UpdateProfileInput struct {
	FullName     *string `json:"full_name" validate:"omitempty,max=100,valid_name"`
	Email        *string `json:"email" validate:"omitempty,email"`
	PhoneCountry *string `json:"phone_country" validate:"omitempty,max=10"`
	Phone        *string `json:"phone" validate:"omitempty,valid_phone"`
	ProfileImage *string `json:"profile_image" validate:"omitempty,max=500"`
	AddressArea  *string `json:"address_area" validate:"omitempty,max=200"`
	Link         *string `json:"link" validate:"omitempty,url"`
	Github       *string `json:"github" validate:"omitempty,url"`
	Bitbucket    *string `json:"bitbucket" validate:"omitempty,url"`
	Gitlab       *string `json:"gitlab" validate:"omitempty,url"`
}

// ProfileWithSkills is the create-profile result: the new profile plus the
// skill rows linked to it.
type ProfileWithSkills struct {
	Profile
	Skills []Skill `json:"skills"`
}

// ProfileDetail aggregates a profile with its projects (including their
// skills), job experiences and linked skills for the single-profile read.
type ProfileDetail struct {
	Profile
	Skills         []Skill             `json:"skills"`
	Projects       []ProjectWithSkills `json:"projects"`
	JobExperiences []Experience        `json:"job_experiences"`
}

type ProfileRepository interface {
	// CreateWithSkills persists the profile and links each named skill in one
	// transaction, creating missing skills by name upsert. Returns the linked
	// skill rows in input order.
	CreateWithSkills(ctx context.Context, profile *Profile, skillNames []string) ([]Skill, error)
	GetByID(ctx context.Context, id int64) (*Profile, error)
	GetByUserID(ctx context.Context, userID int64) (*Profile, error)
	ListByUserID(ctx context.Context, userID int64) ([]Profile, error)
	Update(ctx context.Context, profile *Profile) error
	GetDetail(ctx context.Context, id int64) (*ProfileDetail, error)
}

type ProfileUsecase interface {
	CreateProfile(ctx context.Context, in CreateProfileInput) (*ProfileWithSkills, error)
	UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (*Profile, error)
	GetProfile(ctx context.Context, id int64) (*ProfileDetail, error)
	GetProfilesByUser(ctx context.Context, userID int64) ([]Profile, error)
}
