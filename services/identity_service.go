package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the resolved record from the external auth provider.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// IdentityService verifies bearer tokens issued by the auth provider.
// When SUPABASE_JWT_SECRET is set, access tokens are verified locally as
// HS256 JWTs; otherwise the provider's user-info endpoint is called.
type IdentityService struct {
	jwtSecret []byte
	baseURL   string
	apiKey    string
	client    *http.Client
}

func NewIdentityService() *IdentityService {
	return &IdentityService{
		jwtSecret: []byte(os.Getenv("SUPABASE_JWT_SECRET")),
		baseURL:   os.Getenv("SUPABASE_URL"),
		apiKey:    os.Getenv("SUPABASE_ANON_KEY"),
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify resolves a bearer token to an identity. Any failure — bad token,
// provider unreachable, misconfiguration — is reported as an error; the
// caller decides whether the request may proceed unauthenticated.
func (s *IdentityService) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, errors.New("no token provided")
	}
	if len(s.jwtSecret) > 0 {
		return s.verifyLocal(token)
	}
	return s.verifyRemote(ctx, token)
}

func (s *IdentityService) verifyLocal(raw string) (*Identity, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.New("subject claim missing")
	}

	id := &Identity{ID: sub}
	id.Email, _ = claims["email"].(string)
	if md, ok := claims["user_metadata"].(map[string]interface{}); ok {
		if name, ok := md["name"].(string); ok {
			id.Name = name
		}
	}
	return id, nil
}

type userInfoResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
}

func (s *IdentityService) verifyRemote(ctx context.Context, token string) (*Identity, error) {
	if s.baseURL == "" {
		return nil, errors.New("auth provider not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call auth provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read auth provider response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth provider error %d", resp.StatusCode)
	}

	var ui userInfoResponse
	if err := json.Unmarshal(body, &ui); err != nil {
		return nil, fmt.Errorf("failed to parse auth provider response: %w", err)
	}
	if ui.ID == "" {
		return nil, errors.New("invalid token")
	}

	return &Identity{ID: ui.ID, Email: ui.Email, Name: ui.UserMetadata.Name}, nil
}
