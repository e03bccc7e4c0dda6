package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-profile-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type projectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepo{db: db}
}

// CreateWithSkills inserts the project and links every named skill inside one
// transaction, same shape as the profile create.
func (r *projectRepo) CreateWithSkills(ctx context.Context, project *domain.Project, skillNames []string) ([]domain.Skill, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO projects (profile_id, title, description, start_date, end_date, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err = tx.QueryRow(ctx, insertQuery,
		project.ProfileID, project.Title, project.Description,
		project.StartDate, project.EndDate, project.Image,
	).Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}

	skills := []domain.Skill{}
	linkQuery := `INSERT INTO project_skills (project_id, skill_id) VALUES ($1, $2)`
	for _, name := range skillNames {
		skill, err := upsertSkillTx(ctx, tx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert skill %q: %w", name, err)
		}
		if _, err := tx.Exec(ctx, linkQuery, project.ID, skill.ID); err != nil {
			return nil, fmt.Errorf("failed to link skill %q: %w", name, err)
		}
		skills = append(skills, skill)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := `SELECT id, profile_id, title, description, start_date, end_date, image, created_at
              FROM projects WHERE id = $1`
	var p domain.Project
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ProfileID, &p.Title, &p.Description, &p.StartDate, &p.EndDate, &p.Image, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) ListByProfileID(ctx context.Context, profileID int64) ([]domain.Project, error) {
	query := `SELECT id, profile_id, title, description, start_date, end_date, image, created_at
              FROM projects WHERE profile_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		err := rows.Scan(
			&p.ID, &p.ProfileID, &p.Title, &p.Description, &p.StartDate, &p.EndDate, &p.Image, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
