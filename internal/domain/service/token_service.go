package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token type values carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the decoded payload of a signed token.
type Claims struct {
	Type string `json:"type"` // Either TokenTypeAccess or TokenTypeRefresh.
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and decoding signed tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueAccess creates a short-lived access token bound to the subject.
	IssueAccess(subject string) (string, error)

	// IssueRefresh creates a long-lived refresh token bound to the subject.
	IssueRefresh(subject string) (string, error)

	// Decode verifies a token string and returns its claims. Failures map to
	// the domain token errors: malformed structure, lapsed expiry, or an
	// unverifiable signature.
	Decode(tokenString string) (*Claims, error)
}
