package rc

import (
	"context"
	"time"
)

// ResourceInstancesClient manages resource instances.
type ResourceInstancesClient interface {
	List(ctx context.Context, opts *ListResourceInstancesOptions) (*ResourceInstancesList, error)
	Create(ctx context.Context, request *CreateResourceInstanceRequest) (*ResourceInstance, error)
	Get(ctx context.Context, instanceID string) (*ResourceInstance, error)
	Update(ctx context.Context, instanceID string, request *UpdateResourceInstanceRequest) (*ResourceInstance, error)
	Delete(ctx context.Context, instanceID string) error
	Lock(ctx context.Context, instanceID string) (*ResourceInstance, error)
	Unlock(ctx context.Context, instanceID string) (*ResourceInstance, error)
}

// ResourceKeysClient manages resource keys.
type ResourceKeysClient interface {
	List(ctx context.Context, opts *ListResourceKeysOptions) (*ResourceKeysList, error)
	Create(ctx context.Context, request *CreateResourceKeyRequest) (*ResourceKey, error)
	Get(ctx context.Context, keyID string) (*ResourceKey, error)
	Update(ctx context.Context, keyID string, request *UpdateResourceKeyRequest) (*ResourceKey, error)
	Delete(ctx context.Context, keyID string) error
}

// ResourceBindingsClient manages resource bindings.
type ResourceBindingsClient interface {
	List(ctx context.Context, opts *ListResourceBindingsOptions) (*ResourceBindingsList, error)
	Create(ctx context.Context, request *CreateResourceBindingRequest) (*ResourceBinding, error)
	Get(ctx context.Context, bindingID string) (*ResourceBinding, error)
	Update(ctx context.Context, bindingID string, request *UpdateResourceBindingRequest) (*ResourceBinding, error)
	Delete(ctx context.Context, bindingID string) error
}

// ResourceAliasesClient manages resource aliases.
type ResourceAliasesClient interface {
	List(ctx context.Context, opts *ListResourceAliasesOptions) (*ResourceAliasesList, error)
	Create(ctx context.Context, request *CreateResourceAliasRequest) (*ResourceAlias, error)
	Get(ctx context.Context, aliasID string) (*ResourceAlias, error)
	Update(ctx context.Context, aliasID string, request *UpdateResourceAliasRequest) (*ResourceAlias, error)
	Delete(ctx context.Context, aliasID string) error
}

// ReclamationsClient manages reclamations.
type ReclamationsClient interface {
	List(ctx context.Context, opts *ListReclamationsOptions) (*ReclamationsList, error)
	RunAction(ctx context.Context, reclamationID, actionName string, request *RunReclamationActionRequest) (*Reclamation, error)
}

// Client provides access to all Resource Controller resource clients.
type Client interface {
	ResourceInstances() ResourceInstancesClient
	ResourceKeys() ResourceKeysClient
	ResourceBindings() ResourceBindingsClient
	ResourceAliases() ResourceAliasesClient
	Reclamations() ReclamationsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a rc.Client.
//
// # Authentication precedence
//
//  1. AccessToken: if set, it is used directly as a static Bearer token.
//  2. APIKey: the client exchanges the key for a bearer token at TokenURL
//     (or the default token endpoint) and refreshes it near expiry.
//  3. No credentials: requests are sent without authentication.
//
// Per-request timeouts should be controlled via context passed to client
// methods. Retry behavior can be tuned via RetryMax/RetryWaitMin/RetryWaitMax.
type Config struct {
	// APIEndpoint: base URL for the Resource Controller API
	// (e.g., "https://resource-controller.example.com").
	// rcclient.New normalizes this value by trimming a trailing slash and
	// adding "https://" if no scheme is present.
	APIEndpoint string

	// Authentication options (provide one)
	// APIKey: exchanged for a bearer token via the token endpoint.
	APIKey string
	// AccessToken: if set, used directly as a static Bearer token.
	AccessToken string
	// TokenURL: full token endpoint. If empty and APIKey is set, the default
	// endpoint is used.
	TokenURL string

	// Optional configurations
	// HTTPTimeout: optional default HTTP timeout where supported.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures (>=500, 429,
	// and connection errors). If 0, a sensible default is used.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
