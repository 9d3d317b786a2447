package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry decodes the stored session token and returns its expiry claim.
// The signature is not verified: the client has no key material, and the
// value is display-only (the server remains the authority via /validate).
// The second return is false when there is no session, the token is not a
// JWT, or it carries no exp claim.
func (a *authService) TokenExpiry() (time.Time, bool) {
	token := a.Token()
	if token == "" {
		return time.Time{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
