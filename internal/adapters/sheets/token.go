package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// TokenSource supplies the bearer token used on spreadsheet API calls.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns a fixed access token from configuration.
// Suitable for short-lived jobs run under an already-minted token.
type StaticTokenSource struct {
	AccessToken string
}

func (s StaticTokenSource) Token(ctx context.Context) (string, error) {
	if s.AccessToken == "" {
		return "", errors.New("static token source: access token is empty")
	}
	return s.AccessToken, nil
}

const defaultTokenURL = "https://oauth2.googleapis.com/token"

// RefreshTokenSource exchanges a long-lived refresh token for short-lived
// access tokens at the OAuth token endpoint, caching each token until close
// to its expiry. Safe for concurrent use.
type RefreshTokenSource struct {
	mu           sync.Mutex
	session      *http.Client
	tokenURL     string
	clientID     string
	clientSecret string
	refreshToken string

	cached string
	expiry time.Time
}

func NewRefreshTokenSource(clientID, clientSecret, refreshToken string) (*RefreshTokenSource, error) {
	if clientID == "" || clientSecret == "" {
		return nil, errors.New("refresh token source: client credentials are empty")
	}
	if refreshToken == "" {
		return nil, errors.New("refresh token source: refresh token is empty")
	}

	return &RefreshTokenSource{
		session:      &http.Client{Timeout: 10 * time.Second},
		tokenURL:     defaultTokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		refreshToken: refreshToken,
	}, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (s *RefreshTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Refresh slightly early so a token never expires mid-publish.
	if s.cached != "" && time.Now().Before(s.expiry.Add(-30*time.Second)) {
		return s.cached, nil
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)
	form.Set("refresh_token", s.refreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("refresh token: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.session.Do(req)
	if err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("refresh token: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("refresh token: decode response: %w", err)
	}
	if decoded.AccessToken == "" {
		return "", errors.New("refresh token: response carried no access token")
	}

	s.cached = decoded.AccessToken
	s.expiry = time.Now().Add(time.Duration(decoded.ExpiresIn) * time.Second)

	return s.cached, nil
}
