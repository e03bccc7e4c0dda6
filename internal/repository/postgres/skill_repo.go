package postgres

import (
	"context"

	"go-profile-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

// upsertSkillTx resolves a skill by name inside the caller's transaction,
// creating the row if absent. The DO UPDATE no-op makes RETURNING yield the
// existing row on conflict, so two racing inserts converge on one id.
func upsertSkillTx(ctx context.Context, tx pgx.Tx, name string) (domain.Skill, error) {
	const query = `INSERT INTO skills (name) VALUES ($1)
                   ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
                   RETURNING id, name`
	var s domain.Skill
	err := tx.QueryRow(ctx, query, name).Scan(&s.ID, &s.Name)
	return s, err
}

func (r *skillRepo) List(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT id, name FROM skills ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSkills(rows)
}

func (r *skillRepo) ListByProfileID(ctx context.Context, profileID int64) ([]domain.Skill, error) {
	query := `SELECT s.id, s.name
              FROM profile_skills ps
              JOIN skills s ON ps.skill_id = s.id
              WHERE ps.profile_id = $1
              ORDER BY ps.id`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSkills(rows)
}

func (r *skillRepo) ListByProjectID(ctx context.Context, projectID int64) ([]domain.Skill, error) {
	query := `SELECT s.id, s.name
              FROM project_skills ps
              JOIN skills s ON ps.skill_id = s.id
              WHERE ps.project_id = $1
              ORDER BY ps.id`
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSkills(rows)
}

func scanSkills(rows pgx.Rows) ([]domain.Skill, error) {
	skills := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}
