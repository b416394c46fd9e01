package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rcontrol-io/rc-client/internal/http"
	"github.com/rcontrol-io/rc-client/pkg/rc"
)

// ResourceKeysClient implements rc.ResourceKeysClient.
type ResourceKeysClient struct {
	httpClient *http.Client
}

// NewResourceKeysClient creates a new resource keys client.
func NewResourceKeysClient(httpClient *http.Client) *ResourceKeysClient {
	return &ResourceKeysClient{httpClient: httpClient}
}

// List implements rc.ResourceKeysClient.List.
func (c *ResourceKeysClient) List(ctx context.Context, opts *rc.ListResourceKeysOptions) (*rc.ResourceKeysList, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/resource_keys", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing resource keys: %w", err)
	}

	var list rc.ResourceKeysList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing resource keys list: %w", err)
	}

	return &list, nil
}

// Create implements rc.ResourceKeysClient.Create.
func (c *ResourceKeysClient) Create(ctx context.Context, request *rc.CreateResourceKeyRequest) (*rc.ResourceKey, error) {
	if request == nil {
		return nil, &rc.InvalidArgumentError{Param: "request"}
	}

	if request.Name == "" {
		return nil, &rc.InvalidArgumentError{Param: "name"}
	}

	if request.Source == "" {
		return nil, &rc.InvalidArgumentError{Param: "source"}
	}

	resp, err := c.httpClient.Post(ctx, "/v2/resource_keys", request)
	if err != nil {
		return nil, fmt.Errorf("creating resource key: %w", err)
	}

	var key rc.ResourceKey

	err = json.Unmarshal(resp.Body, &key)
	if err != nil {
		return nil, fmt.Errorf("parsing resource key: %w", err)
	}

	return &key, nil
}

// Get implements rc.ResourceKeysClient.Get.
func (c *ResourceKeysClient) Get(ctx context.Context, keyID string) (*rc.ResourceKey, error) {
	if keyID == "" {
		return nil, &rc.InvalidArgumentError{Param: "id"}
	}

	resp, err := c.httpClient.Get(ctx, "/v2/resource_keys/"+url.PathEscape(keyID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting resource key: %w", err)
	}

	var key rc.ResourceKey

	err = json.Unmarshal(resp.Body, &key)
	if err != nil {
		return nil, fmt.Errorf("parsing resource key: %w", err)
	}

	return &key, nil
}

// Update implements rc.ResourceKeysClient.Update.
func (c *ResourceKeysClient) Update(ctx context.Context, keyID string, request *rc.UpdateResourceKeyRequest) (*rc.ResourceKey, error) {
	if keyID == "" {
		return nil, &rc.InvalidArgumentError{Param: "id"}
	}

	if request == nil || request.Name == "" {
		return nil, &rc.InvalidArgumentError{Param: "name"}
	}

	resp, err := c.httpClient.Patch(ctx, "/v2/resource_keys/"+url.PathEscape(keyID), request)
	if err != nil {
		return nil, fmt.Errorf("updating resource key: %w", err)
	}

	var key rc.ResourceKey

	err = json.Unmarshal(resp.Body, &key)
	if err != nil {
		return nil, fmt.Errorf("parsing resource key: %w", err)
	}

	return &key, nil
}

// Delete implements rc.ResourceKeysClient.Delete.
func (c *ResourceKeysClient) Delete(ctx context.Context, keyID string) error {
	if keyID == "" {
		return &rc.InvalidArgumentError{Param: "id"}
	}

	_, err := c.httpClient.Delete(ctx, "/v2/resource_keys/"+url.PathEscape(keyID))
	if err != nil {
		return fmt.Errorf("deleting resource key: %w", err)
	}

	return nil
}
