package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go-profile-backend/pkg/apperror"
)

// Account holds the attributes the provider returns for a validated token.
type Account struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleProvider validates Google OAuth access tokens against the userinfo
// endpoint and returns the account attributes.
type GoogleProvider struct {
	userInfoURL string
	client      *http.Client
}

func NewGoogleProvider(userInfoURL string) *GoogleProvider {
	return &GoogleProvider{
		userInfoURL: userInfoURL,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Validate exchanges the bearer token for account attributes.
// A rejected or malformed token yields Unauthorized.
func (p *GoogleProvider) Validate(ctx context.Context, accessToken string) (*Account, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Identity provider unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, apperror.Unauthorized("Invalid Google Sign-In")
	}

	var payload struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to parse provider response", err)
	}
	if payload.Error != nil {
		return nil, apperror.Unauthorized("Invalid Google Sign-In")
	}
	if payload.Email == "" {
		return nil, apperror.Unauthorized("Provider returned no email for token")
	}

	return &Account{Email: payload.Email, Name: payload.Name}, nil
}
