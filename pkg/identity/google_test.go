package identity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-profile-backend/pkg/apperror"
	"go-profile-backend/pkg/identity"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsGoodToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"email":"jane@example.com","name":"Jane Doe"}`))
	}))
	defer srv.Close()

	p := identity.NewGoogleProvider(srv.URL)
	account, err := p.Validate(context.Background(), "good-token")
	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", account.Email)
	assert.Equal(t, "Jane Doe", account.Name)
}

func TestValidateRejectsBadToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := identity.NewGoogleProvider(srv.URL)
	_, err := p.Validate(context.Background(), "bad-token")
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
}

func TestValidateFailsClosedOnMissingEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Jane Doe"}`))
	}))
	defer srv.Close()

	p := identity.NewGoogleProvider(srv.URL)
	_, err := p.Validate(context.Background(), "odd-token")
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
}
