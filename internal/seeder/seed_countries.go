package seeder

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CountriesSeeder struct{}

func (CountriesSeeder) Name() string { return "countries" }

func (CountriesSeeder) Run(ctx context.Context, db *pgxpool.Pool) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name string
		Code string
	}{
		{Name: "Argentina", Code: "+54"},
		{Name: "Australia", Code: "+61"},
		{Name: "Brazil", Code: "+55"},
		{Name: "Canada", Code: "+1"},
		{Name: "Chile", Code: "+56"},
		{Name: "Colombia", Code: "+57"},
		{Name: "France", Code: "+33"},
		{Name: "Germany", Code: "+49"},
		{Name: "India", Code: "+91"},
		{Name: "Indonesia", Code: "+62"},
		{Name: "Italy", Code: "+39"},
		{Name: "Japan", Code: "+81"},
		{Name: "Mexico", Code: "+52"},
		{Name: "Netherlands", Code: "+31"},
		{Name: "Peru", Code: "+51"},
		{Name: "Portugal", Code: "+351"},
		{Name: "Spain", Code: "+34"},
		{Name: "United Kingdom", Code: "+44"},
		{Name: "United States", Code: "+1"},
		{Name: "Uruguay", Code: "+598"},
	}

	for _, it := range items {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO countries (name, code) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Code,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
