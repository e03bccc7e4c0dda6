package postgres

import (
	"context"

	"go-profile-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

func (r *experienceRepo) Create(ctx context.Context, experience *domain.Experience) error {
	query := `
		INSERT INTO job_experiences (profile_id, title, company, location, start_date, end_date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		experience.ProfileID, experience.Title, experience.Company, experience.Location,
		experience.StartDate, experience.EndDate, experience.Description,
	).Scan(&experience.ID)
}

func (r *experienceRepo) ListByProfileID(ctx context.Context, profileID int64) ([]domain.Experience, error) {
	query := `
		SELECT id, profile_id, title, company, location, start_date, end_date, description
		FROM job_experiences
		WHERE profile_id = $1
		ORDER BY start_date DESC`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experiences := []domain.Experience{}
	for rows.Next() {
		var e domain.Experience
		err := rows.Scan(
			&e.ID, &e.ProfileID, &e.Title, &e.Company, &e.Location,
			&e.StartDate, &e.EndDate, &e.Description,
		)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	return experiences, rows.Err()
}
