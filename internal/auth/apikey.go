package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rcontrol-io/rc-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoCredentials = errors.New("no valid credentials available")
	ErrNoTokenURL    = errors.New("no token URL configured")
)

// GrantTypeAPIKey is the grant used to exchange an API key for a bearer token.
const GrantTypeAPIKey = "urn:rc:params:oauth:grant-type:apikey"

// APIKeyConfig configures an APIKeyTokenManager.
type APIKeyConfig struct {
	// TokenURL is the full token endpoint URL.
	TokenURL string
	// APIKey is exchanged for bearer tokens.
	APIKey string
	// AccessToken optionally seeds the manager with an existing token.
	AccessToken string
}

// APIKeyTokenManager exchanges an API key for bearer tokens and caches them
// until they near expiry.
type APIKeyTokenManager struct {
	config     *APIKeyConfig
	store      *TokenStore
	httpClient *http.Client
}

// NewAPIKeyTokenManager creates a token manager for the given config.
func NewAPIKeyTokenManager(config *APIKeyConfig) *APIKeyTokenManager {
	manager := &APIKeyTokenManager{
		config: config,
		store:  NewTokenStore(),
		httpClient: &http.Client{
			Timeout: constants.TokenRequestTimeout,
		},
	}

	if config.AccessToken != "" {
		manager.store.Set(&Token{
			AccessToken: config.AccessToken,
			TokenType:   "bearer",
		})
	}

	return manager
}

// GetToken returns a valid access token, requesting a new one if the cached
// token is missing or inside its expiration buffer.
func (m *APIKeyTokenManager) GetToken(ctx context.Context) (string, error) {
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	if err := m.RefreshToken(ctx); err != nil {
		return "", err
	}

	return m.store.Get().AccessToken, nil
}

// RefreshToken forces a new token grant regardless of the cached token.
func (m *APIKeyTokenManager) RefreshToken(ctx context.Context) error {
	if m.config.APIKey == "" {
		return ErrNoCredentials
	}

	if m.config.TokenURL == "" {
		return ErrNoTokenURL
	}

	form := url.Values{}
	form.Set("grant_type", GrantTypeAPIKey)
	form.Set("apikey", m.config.APIKey)

	token, err := m.requestToken(ctx, form)
	if err != nil {
		return err
	}

	m.store.Set(token)

	return nil
}

// SetToken manually sets the access token.
func (m *APIKeyTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

func (m *APIKeyTokenManager) requestToken(ctx context.Context, form url.Values) (*Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseTokenError(resp.StatusCode, body)
	}

	token := &Token{}
	if err := json.Unmarshal(body, token); err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	if token.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	return token, nil
}

// tokenError is the error shape the token endpoint returns.
type tokenError struct {
	ErrorCode        string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func parseTokenError(statusCode int, body []byte) error {
	var te tokenError
	if err := json.Unmarshal(body, &te); err == nil && te.ErrorCode != "" {
		return fmt.Errorf("token request failed (status %d): %s: %s", //nolint:err113
			statusCode, te.ErrorCode, te.ErrorDescription)
	}

	return fmt.Errorf("token request failed (status %d): %s", statusCode, string(body)) //nolint:err113
}
