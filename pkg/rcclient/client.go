// Package rcclient provides the main entry point for creating Resource Controller API clients
package rcclient

import (
	"fmt"
	"strings"

	"github.com/rcontrol-io/rc-client/internal/client"
	"github.com/rcontrol-io/rc-client/internal/constants"
	"github.com/rcontrol-io/rc-client/pkg/rc"
)

// New creates a new Resource Controller API client.
func New(config *rc.Config) (rc.Client, error) {
	if config == nil {
		return nil, rc.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, rc.ErrAPIEndpointRequired
	}

	// Normalize API endpoint
	apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	// API key auth without an explicit token URL goes through the platform
	// token service.
	if config.APIKey != "" && config.TokenURL == "" {
		config.TokenURL = constants.DefaultTokenURL
	}

	// Use the internal client implementation
	client, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithEndpoint creates a new client with just an API endpoint (no auth).
func NewWithEndpoint(endpoint string) (rc.Client, error) {
	return New(&rc.Config{
		APIEndpoint: endpoint,
	})
}

// NewWithToken creates a new client with an API endpoint and access token.
func NewWithToken(endpoint, token string) (rc.Client, error) {
	return New(&rc.Config{
		APIEndpoint: endpoint,
		AccessToken: token,
	})
}

// NewWithAPIKey creates a new client that exchanges an API key for bearer
// tokens at the platform token service.
func NewWithAPIKey(endpoint, apiKey string) (rc.Client, error) {
	return New(&rc.Config{
		APIEndpoint: endpoint,
		APIKey:      apiKey,
	})
}
