package domain

import "context"

// Country is read-only reference data, seeded externally.
type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type CountryRepository interface {
	List(ctx context.Context) ([]Country, error)
}

type CountryUsecase interface {
	ListCountries(ctx context.Context) ([]Country, error)
}
