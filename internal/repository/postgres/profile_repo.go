package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `id, user_id, profile_type, experience, email, phone_country, phone,
	profile_image, full_name, address_area, link, github, bitbucket, gitlab, created_at, updated_at`

// CreateWithSkills inserts the profile and links every named skill inside one
// transaction so a failure partway through leaves no partially-linked state.
func (r *profileRepo) CreateWithSkills(ctx context.Context, profile *domain.Profile, skillNames []string) ([]domain.Skill, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO profiles (
			user_id, profile_type, experience, email, phone_country, phone,
			profile_image, full_name, address_area, link, github, bitbucket, gitlab
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRow(ctx, insertQuery,
		profile.UserID, profile.ProfileType, profile.Experience, profile.Email,
		profile.PhoneCountry, profile.Phone, profile.ProfileImage, profile.FullName,
		profile.AddressArea, profile.Link, profile.Github, profile.Bitbucket, profile.Gitlab,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.Conflict("User already has a profile")
		}
		return nil, fmt.Errorf("failed to insert profile: %w", err)
	}

	skills := []domain.Skill{}
	linkQuery := `INSERT INTO profile_skills (profile_id, skill_id) VALUES ($1, $2)`
	for _, name := range skillNames {
		skill, err := upsertSkillTx(ctx, tx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert skill %q: %w", name, err)
		}
		if _, err := tx.Exec(ctx, linkQuery, profile.ID, skill.ID); err != nil {
			return nil, fmt.Errorf("failed to link skill %q: %w", name, err)
		}
		skills = append(skills, skill)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *profileRepo) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfileRow(r.db.QueryRow(ctx, query, id))
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return scanProfileRow(r.db.QueryRow(ctx, query, userID))
}

func (r *profileRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func (r *profileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles SET
			profile_type = $2, experience = $3, email = $4, phone_country = $5,
			phone = $6, profile_image = $7, full_name = $8, address_area = $9,
			link = $10, github = $11, bitbucket = $12, gitlab = $13,
			updated_at = NOW()
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.ProfileType, profile.Experience, profile.Email,
		profile.PhoneCountry, profile.Phone, profile.ProfileImage, profile.FullName,
		profile.AddressArea, profile.Link, profile.Github, profile.Bitbucket, profile.Gitlab,
	)
	return err
}

// GetDetail loads the profile together with its skills, projects (each with
// their skills) and job experiences.
func (r *profileRepo) GetDetail(ctx context.Context, id int64) (*domain.ProfileDetail, error) {
	profile, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	detail := &domain.ProfileDetail{
		Profile:        *profile,
		Skills:         []domain.Skill{},
		Projects:       []domain.ProjectWithSkills{},
		JobExperiences: []domain.Experience{},
	}

	// Profile skills
	skillsQuery := `
		SELECT s.id, s.name
		FROM profile_skills ps
		JOIN skills s ON ps.skill_id = s.id
		WHERE ps.profile_id = $1
		ORDER BY ps.id`
	sRows, err := r.db.Query(ctx, skillsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	defer sRows.Close()
	if detail.Skills, err = scanSkills(sRows); err != nil {
		return nil, err
	}

	// Projects with their skills aggregated per row
	projectsQuery := `
		SELECT p.id, p.profile_id, p.title, p.description, p.start_date, p.end_date, p.image, p.created_at,
			COALESCE(array_agg(s.id) FILTER (WHERE s.id IS NOT NULL), '{}'),
			COALESCE(array_agg(s.name) FILTER (WHERE s.id IS NOT NULL), '{}')
		FROM projects p
		LEFT JOIN project_skills ps ON ps.project_id = p.id
		LEFT JOIN skills s ON s.id = ps.skill_id
		WHERE p.profile_id = $1
		GROUP BY p.id
		ORDER BY p.id`
	pRows, err := r.db.Query(ctx, projectsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	defer pRows.Close()

	for pRows.Next() {
		var p domain.ProjectWithSkills
		var skillIDs pq.Int64Array
		var skillNames pq.StringArray
		err := pRows.Scan(
			&p.ID, &p.ProfileID, &p.Title, &p.Description, &p.StartDate, &p.EndDate,
			&p.Image, &p.CreatedAt, &skillIDs, &skillNames,
		)
		if err != nil {
			return nil, err
		}
		p.Skills = []domain.Skill{}
		for i := range skillIDs {
			p.Skills = append(p.Skills, domain.Skill{ID: skillIDs[i], Name: skillNames[i]})
		}
		detail.Projects = append(detail.Projects, p)
	}
	if err := pRows.Err(); err != nil {
		return nil, err
	}

	// Job experiences
	expQuery := `
		SELECT id, profile_id, title, company, location, start_date, end_date, description
		FROM job_experiences
		WHERE profile_id = $1
		ORDER BY start_date DESC`
	eRows, err := r.db.Query(ctx, expQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experiences: %w", err)
	}
	defer eRows.Close()

	for eRows.Next() {
		var e domain.Experience
		err := eRows.Scan(
			&e.ID, &e.ProfileID, &e.Title, &e.Company, &e.Location,
			&e.StartDate, &e.EndDate, &e.Description,
		)
		if err != nil {
			return nil, err
		}
		detail.JobExperiences = append(detail.JobExperiences, e)
	}
	return detail, eRows.Err()
}

func scanProfileRow(row pgx.Row) (*domain.Profile, error) {
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.ProfileType, &p.Experience, &p.Email, &p.PhoneCountry,
		&p.Phone, &p.ProfileImage, &p.FullName, &p.AddressArea, &p.Link,
		&p.Github, &p.Bitbucket, &p.Gitlab, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
