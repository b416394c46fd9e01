package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rcontrol-io/rc-client/internal/http"
	"github.com/rcontrol-io/rc-client/pkg/rc"
)

// ResourceBindingsClient implements rc.ResourceBindingsClient.
type ResourceBindingsClient struct {
	httpClient *http.Client
}

// NewResourceBindingsClient creates a new resource bindings client.
func NewResourceBindingsClient(httpClient *http.Client) *ResourceBindingsClient {
	return &ResourceBindingsClient{httpClient: httpClient}
}

// List implements rc.ResourceBindingsClient.List.
func (c *ResourceBindingsClient) List(ctx context.Context, opts *rc.ListResourceBindingsOptions) (*rc.ResourceBindingsList, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/resource_bindings", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing resource bindings: %w", err)
	}

	var list rc.ResourceBindingsList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing resource bindings list: %w", err)
	}

	return &list, nil
}

// Create implements rc.ResourceBindingsClient.Create.
func (c *ResourceBindingsClient) Create(ctx context.Context, request *rc.CreateResourceBindingRequest) (*rc.ResourceBinding, error) {
	if request == nil {
		return nil, &rc.InvalidArgumentError{Param: "request"}
	}

	if request.Source == "" {
		return nil, &rc.InvalidArgumentError{Param: "source"}
	}

	if request.Target == "" {
		return nil, &rc.InvalidArgumentError{Param: "target"}
	}

	resp, err := c.httpClient.Post(ctx, "/v2/resource_bindings", request)
	if err != nil {
		return nil, fmt.Errorf("creating resource binding: %w", err)
	}

	var binding rc.ResourceBinding

	err = json.Unmarshal(resp.Body, &binding)
	if err != nil {
		return nil, fmt.Errorf("parsing resource binding: %w", err)
	}

	return &binding, nil
}

// Get implements rc.ResourceBindingsClient.Get.
func (c *ResourceBindingsClient) Get(ctx context.Context, bindingID string) (*rc.ResourceBinding, error) {
	if bindingID == "" {
		return nil, &rc.InvalidArgumentError{Param: "id"}
	}

	resp, err := c.httpClient.Get(ctx, "/v2/resource_bindings/"+url.PathEscape(bindingID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting resource binding: %w", err)
	}

	var binding rc.ResourceBinding

	err = json.Unmarshal(resp.Body, &binding)
	if err != nil {
		return nil, fmt.Errorf("parsing resource binding: %w", err)
	}

	return &binding, nil
}

// Update implements rc.ResourceBindingsClient.Update.
func (c *ResourceBindingsClient) Update(ctx context.Context, bindingID string, request *rc.UpdateResourceBindingRequest) (*rc.ResourceBinding, error) {
	if bindingID == "" {
		return nil, &rc.InvalidArgumentError{Param: "id"}
	}

	if request == nil || request.Name == "" {
		return nil, &rc.InvalidArgumentError{Param: "name"}
	}

	resp, err := c.httpClient.Patch(ctx, "/v2/resource_bindings/"+url.PathEscape(bindingID), request)
	if err != nil {
		return nil, fmt.Errorf("updating resource binding: %w", err)
	}

	var binding rc.ResourceBinding

	err = json.Unmarshal(resp.Body, &binding)
	if err != nil {
		return nil, fmt.Errorf("parsing resource binding: %w", err)
	}

	return &binding, nil
}

// Delete implements rc.ResourceBindingsClient.Delete.
func (c *ResourceBindingsClient) Delete(ctx context.Context, bindingID string) error {
	if bindingID == "" {
		return &rc.InvalidArgumentError{Param: "id"}
	}

	_, err := c.httpClient.Delete(ctx, "/v2/resource_bindings/"+url.PathEscape(bindingID))
	if err != nil {
		return fmt.Errorf("deleting resource binding: %w", err)
	}

	return nil
}
