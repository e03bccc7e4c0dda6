package domain

import "context"

// Skill is a named competency shared across profiles and projects through
// join tables. Names are unique; lookups go through an atomic name upsert so
// concurrent creates converge on one row.
type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SkillRepository interface {
	List(ctx context.Context) ([]Skill, error)
	ListByProfileID(ctx context.Context, profileID int64) ([]Skill, error)
	ListByProjectID(ctx context.Context, projectID int64) ([]Skill, error)
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]Skill, error)
	GetProfileSkills(ctx context.Context, profileID int64) ([]Skill, error)
}
