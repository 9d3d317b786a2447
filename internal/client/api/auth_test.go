package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/terrabond/terrabond-cli/internal/client/models"
	"github.com/terrabond/terrabond-cli/internal/common"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func newAuthServer(t *testing.T, handler http.HandlerFunc) *HTTPAuthClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAuthClient(New(srv.URL, 2*time.Second, staticTokens("tok-123")))
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, success bool, message string, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"success":   success,
		"message":   message,
		"data":      data,
		"timestamp": "2025-06-15T12:00:00",
	})
	require.NoError(t, err)
}

func TestLogin_SuccessDecodesJwtResponse(t *testing.T) {
	var gotPath, gotAuth, gotReqID string
	client := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get(common.AuthorizationHeaderName)
		gotReqID = r.Header.Get(common.RequestIDHeaderName)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "alice@example.com", req.Email)

		writeEnvelope(t, w, true, "", models.JwtResponse{
			Token:    "T",
			ID:       7,
			Email:    req.Email,
			Username: "alice",
			Roles:    []models.Role{models.RoleUser},
		})
	})

	res, err := client.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	require.Equal(t, "T", res.Token)
	require.Equal(t, int64(7), res.ID)
	require.Equal(t, "/login", gotPath)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.NotEmpty(t, gotReqID)
}

func TestLogin_RejectionPrefersServerMessage(t *testing.T) {
	client := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, false, "Invalid credentials", nil)
	})

	_, err := client.Login(context.Background(), models.LoginRequest{Email: "x", Password: "y"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestLogin_RejectionWithoutMessageUsesFallback(t *testing.T) {
	client := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, false, "", nil)
	})

	_, err := client.Login(context.Background(), models.LoginRequest{Email: "x", Password: "y"})

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Login failed", apiErr.Message)
}

func TestLogin_TransportFailureWrapsErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	client := NewAuthClient(New(srv.URL, time.Second, nil))
	_, err := client.Login(context.Background(), models.LoginRequest{Email: "x", Password: "y"})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestRequest_Unauthorized(t *testing.T) {
	client := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	err := client.Logout(context.Background(), "tok-123")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogout_SendsExplicitBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(common.AuthorizationHeaderName)
		writeEnvelope(t, w, true, "", nil)
	}))
	t.Cleanup(srv.Close)

	// The live source is already empty, as it is once the session manager
	// has cleared local state; the explicit token must still authenticate
	// the revoke.
	client := NewAuthClient(New(srv.URL, 2*time.Second, staticTokens("")))
	require.NoError(t, client.Logout(context.Background(), "T"))
	require.Equal(t, "Bearer T", gotAuth)
}

func TestValidate_TrueAndFalse(t *testing.T) {
	valid := true
	client := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/validate", r.URL.Path)
		writeEnvelope(t, w, true, "", valid)
	})

	ok, err := client.Validate(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	valid = false
	ok, err = client.Validate(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRegisterFace_SendsEncodingPayload(t *testing.T) {
	client := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/face/register", r.URL.Path)
		var body struct {
			FaceEncodingData string `json:"faceEncodingData"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "enc-data", body.FaceEncodingData)
		writeEnvelope(t, w, true, "", "registered")
	})

	msg, err := client.RegisterFace(context.Background(), "enc-data")
	require.NoError(t, err)
	require.Equal(t, "registered", msg)
}

func TestServerError_WithoutEnvelopeWrapsErrUnavailable(t *testing.T) {
	client := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := client.Validate(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnavailable))
}
