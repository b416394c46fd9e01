// Package client implements the rc.Client interface over the HTTP transport.
package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rcontrol-io/rc-client/internal/auth"
	"github.com/rcontrol-io/rc-client/internal/constants"
	"github.com/rcontrol-io/rc-client/internal/http"
	"github.com/rcontrol-io/rc-client/pkg/rc"
)

// Static errors for err113 compliance.
var (
	ErrAPIEndpointRequired      = errors.New("API endpoint is required")
	ErrNoTokenManagerConfigured = errors.New("no token manager configured")
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
)

// Client implements the rc.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       rc.Logger

	// Resource clients
	resourceInstances rc.ResourceInstancesClient
	resourceKeys      rc.ResourceKeysClient
	resourceBindings  rc.ResourceBindingsClient
	resourceAliases   rc.ResourceAliasesClient
	reclamations      rc.ReclamationsClient
}

// createTokenManager creates the appropriate token manager for the config.
func createTokenManager(config *rc.Config) auth.TokenManager {
	if config.AccessToken != "" {
		return &staticTokenManager{token: config.AccessToken}
	}

	if config.APIKey != "" {
		return auth.NewAPIKeyTokenManager(&auth.APIKeyConfig{
			TokenURL: config.TokenURL,
			APIKey:   config.APIKey,
		})
	}

	return nil // No authentication
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *rc.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Resource Controller API client.
func New(config *rc.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	tokenManager := createTokenManager(config)

	return NewWithTokenManager(config, tokenManager)
}

// NewWithTokenManager creates a client with a custom token manager.
func NewWithTokenManager(config *rc.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.APIEndpoint, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.APIEndpoint,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// GetToken returns the current access token from the token manager.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", ErrNoTokenManagerConfigured
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// ResourceInstances implements rc.Client.ResourceInstances.
func (c *Client) ResourceInstances() rc.ResourceInstancesClient {
	return c.resourceInstances
}

// ResourceKeys implements rc.Client.ResourceKeys.
func (c *Client) ResourceKeys() rc.ResourceKeysClient {
	return c.resourceKeys
}

// ResourceBindings implements rc.Client.ResourceBindings.
func (c *Client) ResourceBindings() rc.ResourceBindingsClient {
	return c.resourceBindings
}

// ResourceAliases implements rc.Client.ResourceAliases.
func (c *Client) ResourceAliases() rc.ResourceAliasesClient {
	return c.resourceAliases
}

// Reclamations implements rc.Client.Reclamations.
func (c *Client) Reclamations() rc.ReclamationsClient {
	return c.reclamations
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.resourceInstances = NewResourceInstancesClient(c.httpClient)
	c.resourceKeys = NewResourceKeysClient(c.httpClient)
	c.resourceBindings = NewResourceBindingsClient(c.httpClient)
	c.resourceAliases = NewResourceAliasesClient(c.httpClient)
	c.reclamations = NewReclamationsClient(c.httpClient)
}

// staticTokenManager provides a static token.
type staticTokenManager struct {
	token string
}

func (m *staticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

func (m *staticTokenManager) RefreshToken(ctx context.Context) error {
	return ErrStaticTokenCannotRefresh
}

func (m *staticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
}

// loggerAdapter adapts rc.Logger to http.Logger.
type loggerAdapter struct {
	logger rc.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
