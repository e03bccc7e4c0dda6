package domain

import "time"

// Certificate is modeled in the schema but has no create or read operation
// on the current API surface.
type Certificate struct {
	ID             int64      `json:"id"`
	ProfileID      int64      `json:"profile_id"`
	Name           string     `json:"name"`
	Issuer         string     `json:"issuer"`
	IssueDate      *time.Time `json:"issue_date,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
}
