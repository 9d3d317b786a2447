package api

import (
	"context"

	"github.com/terrabond/terrabond-cli/internal/client/models"
)

// AuthClient is the remote auth service surface the session manager depends
// on. The concrete implementation talks HTTP; tests substitute fakes.
type AuthClient interface {
	Login(ctx context.Context, req models.LoginRequest) (models.JwtResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.JwtResponse, error)
	Logout(ctx context.Context, token string) error
	Validate(ctx context.Context) (bool, error)
	Enable2FA(ctx context.Context) (string, error)
	Disable2FA(ctx context.Context) (string, error)
	RegisterFace(ctx context.Context, faceEncodingData string) (string, error)
}

// HTTPAuthClient is the AuthClient backed by the auth service under
// /api/auth.
type HTTPAuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *HTTPAuthClient {
	return &HTTPAuthClient{c: c}
}

func (a *HTTPAuthClient) Login(ctx context.Context, req models.LoginRequest) (models.JwtResponse, error) {
	return post[models.JwtResponse](ctx, a.c, "/login", req, "Login failed")
}

func (a *HTTPAuthClient) Register(ctx context.Context, req models.RegisterRequest) (models.JwtResponse, error) {
	return post[models.JwtResponse](ctx, a.c, "/register", req, "Registration failed")
}

// Logout notifies the server that the given token should be revoked. The
// token is passed explicitly rather than read from the live source: the
// session manager clears local state before the notify resolves, and the
// request must still authenticate as the session being revoked. The
// response payload is ignored; the caller only cares whether the notify
// reached the service.
func (a *HTTPAuthClient) Logout(ctx context.Context, token string) error {
	c := *a.c
	c.tokens = staticToken(token)
	_, err := post[struct{}](ctx, &c, "/logout", struct{}{}, "Logout failed")
	return err
}

// Validate asks whether the currently stored token is still accepted.
// Failures of any kind degrade to false: the caller cannot distinguish an
// invalid token from an unreachable service, which is the intended
// fail-closed behavior.
func (a *HTTPAuthClient) Validate(ctx context.Context) (bool, error) {
	ok, err := get[bool](ctx, a.c, "/validate", nil, "Validation failed")
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (a *HTTPAuthClient) Enable2FA(ctx context.Context) (string, error) {
	return post[string](ctx, a.c, "/2fa/enable", struct{}{}, "Could not enable two-factor authentication")
}

func (a *HTTPAuthClient) Disable2FA(ctx context.Context) (string, error) {
	return post[string](ctx, a.c, "/2fa/disable", struct{}{}, "Could not disable two-factor authentication")
}

func (a *HTTPAuthClient) RegisterFace(ctx context.Context, faceEncodingData string) (string, error) {
	body := struct {
		FaceEncodingData string `json:"faceEncodingData"`
	}{FaceEncodingData: faceEncodingData}
	return post[string](ctx, a.c, "/face/register", body, "Face registration failed")
}
