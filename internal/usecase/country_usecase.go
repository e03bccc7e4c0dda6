package usecase

import (
	"context"

	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"
)

type countryUsecase struct {
	countryRepo domain.CountryRepository
}

func NewCountryUsecase(countryRepo domain.CountryRepository) domain.CountryUsecase {
	return &countryUsecase{countryRepo: countryRepo}
}

func (u *countryUsecase) ListCountries(ctx context.Context) ([]domain.Country, error) {
	countries, err := u.countryRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return countries, nil
}
