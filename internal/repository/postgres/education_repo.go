package postgres

import (
	"context"
	"fmt"

	"go-profile-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type educationRepo struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

// Create resolves the institution by name and inserts the education row in a
// single transaction. The institution upsert returns the existing row on a
// name conflict, so concurrent first references converge on one institution.
func (r *educationRepo) Create(ctx context.Context, education *domain.Education, institutionName string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var institution domain.Institution
	upsertQuery := `INSERT INTO institutions (name) VALUES ($1)
                    ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
                    RETURNING id, name, description`
	err = tx.QueryRow(ctx, upsertQuery, institutionName).Scan(
		&institution.ID, &institution.Name, &institution.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert institution %q: %w", institutionName, err)
	}

	insertQuery := `
		INSERT INTO educations (user_id, institution_id, degree, start_year, end_year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err = tx.QueryRow(ctx, insertQuery,
		education.UserID, institution.ID, education.Degree, education.StartYear, education.EndYear,
	).Scan(&education.ID)
	if err != nil {
		return fmt.Errorf("failed to insert education: %w", err)
	}

	education.InstitutionID = institution.ID
	education.Institution = &institution

	return tx.Commit(ctx)
}

func (r *educationRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Education, error) {
	query := `
		SELECT e.id, e.user_id, e.institution_id, e.degree, e.start_year, e.end_year,
			i.id, i.name, i.description
		FROM educations e
		JOIN institutions i ON e.institution_id = i.id
		WHERE e.user_id = $1
		ORDER BY e.start_year DESC, e.id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	educations := []domain.Education{}
	for rows.Next() {
		var e domain.Education
		var i domain.Institution
		err := rows.Scan(
			&e.ID, &e.UserID, &e.InstitutionID, &e.Degree, &e.StartYear, &e.EndYear,
			&i.ID, &i.Name, &i.Description,
		)
		if err != nil {
			return nil, err
		}
		e.Institution = &i
		educations = append(educations, e)
	}
	return educations, rows.Err()
}
