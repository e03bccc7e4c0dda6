package postgres

import (
	"context"

	"go-profile-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type countryRepo struct {
	db *pgxpool.Pool
}

func NewCountryRepository(db *pgxpool.Pool) domain.CountryRepository {
	return &countryRepo{db: db}
}

func (r *countryRepo) List(ctx context.Context) ([]domain.Country, error) {
	query := `SELECT id, name, code FROM countries ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countries := []domain.Country{}
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Code); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}
