package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func TestVerifyLocalToken(t *testing.T) {
	svc := &IdentityService{jwtSecret: []byte("test-secret")}

	token := signTestToken(t, "test-secret", jwt.MapClaims{
		"sub":           "uid-1",
		"email":         "a@example.com",
		"user_metadata": map[string]interface{}{"name": "Asha"},
		"exp":           time.Now().Add(time.Hour).Unix(),
	})

	id, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if id.ID != "uid-1" || id.Email != "a@example.com" || id.Name != "Asha" {
		t.Errorf("identity = %+v", id)
	}
}

func TestVerifyLocalTokenFailures(t *testing.T) {
	svc := &IdentityService{jwtSecret: []byte("test-secret")}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"wrong secret", signTestToken(t, "other-secret", jwt.MapClaims{"sub": "uid-1"})},
		{"missing sub", signTestToken(t, "test-secret", jwt.MapClaims{"email": "a@example.com"})},
		{"expired", signTestToken(t, "test-secret", jwt.MapClaims{
			"sub": "uid-1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Verify(context.Background(), tc.token); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestVerifyRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			t.Errorf("missing bearer header")
		}
		if r.Header.Get("apikey") != "anon-key" {
			t.Errorf("missing apikey header")
		}
		w.Write([]byte(`{"id":"uid-9","email":"b@example.com","user_metadata":{"name":"Bela"}}`))
	}))
	defer srv.Close()

	svc := &IdentityService{
		baseURL: srv.URL,
		apiKey:  "anon-key",
		client:  srv.Client(),
	}

	id, err := svc.Verify(context.Background(), "provider-token")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if id.ID != "uid-9" || id.Name != "Bela" {
		t.Errorf("identity = %+v", id)
	}
}

func TestVerifyRemoteRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid token"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc := &IdentityService{baseURL: srv.URL, client: srv.Client()}
	if _, err := svc.Verify(context.Background(), "bad-token"); err == nil {
		t.Error("expected error for 401 response")
	}
}

func TestVerifyRemoteUnconfigured(t *testing.T) {
	svc := &IdentityService{client: &http.Client{}}
	if _, err := svc.Verify(context.Background(), "token"); err == nil {
		t.Error("expected error when provider URL unset")
	}
}
