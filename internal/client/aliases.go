package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rcontrol-io/rc-client/internal/http"
	"github.com/rcontrol-io/rc-client/pkg/rc"
)

// ResourceAliasesClient implements rc.ResourceAliasesClient.
type ResourceAliasesClient struct {
	httpClient *http.Client
}

// NewResourceAliasesClient creates a new resource aliases client.
func NewResourceAliasesClient(httpClient *http.Client) *ResourceAliasesClient {
	return &ResourceAliasesClient{httpClient: httpClient}
}

// List implements rc.ResourceAliasesClient.List.
func (c *ResourceAliasesClient) List(ctx context.Context, opts *rc.ListResourceAliasesOptions) (*rc.ResourceAliasesList, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/resource_aliases", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing resource aliases: %w", err)
	}

	var list rc.ResourceAliasesList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing resource aliases list: %w", err)
	}

	return &list, nil
}

// Create implements rc.ResourceAliasesClient.Create.
func (c *ResourceAliasesClient) Create(ctx context.Context, request *rc.CreateResourceAliasRequest) (*rc.ResourceAlias, error) {
	if request == nil {
		return nil, &rc.InvalidArgumentError{Param: "request"}
	}

	if request.Name == "" {
		return nil, &rc.InvalidArgumentError{Param: "name"}
	}

	if request.Source == "" {
		return nil, &rc.InvalidArgumentError{Param: "source"}
	}

	if request.Target == "" {
		return nil, &rc.InvalidArgumentError{Param: "target"}
	}

	resp, err := c.httpClient.Post(ctx, "/v2/resource_aliases", request)
	if err != nil {
		return nil, fmt.Errorf("creating resource alias: %w", err)
	}

	var alias rc.ResourceAlias

	err = json.Unmarshal(resp.Body, &alias)
	if err != nil {
		return nil, fmt.Errorf("parsing resource alias: %w", err)
	}

	return &alias, nil
}

// Get implements rc.ResourceAliasesClient.Get.
func (c *ResourceAliasesClient) Get(ctx context.Context, aliasID string) (*rc.ResourceAlias, error) {
	if aliasID == "" {
		return nil, &rc.InvalidArgumentError{Param: "id"}
	}

	resp, err := c.httpClient.Get(ctx, "/v2/resource_aliases/"+url.PathEscape(aliasID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting resource alias: %w", err)
	}

	var alias rc.ResourceAlias

	err = json.Unmarshal(resp.Body, &alias)
	if err != nil {
		return nil, fmt.Errorf("parsing resource alias: %w", err)
	}

	return &alias, nil
}

// Update implements rc.ResourceAliasesClient.Update.
func (c *ResourceAliasesClient) Update(ctx context.Context, aliasID string, request *rc.UpdateResourceAliasRequest) (*rc.ResourceAlias, error) {
	if aliasID == "" {
		return nil, &rc.InvalidArgumentError{Param: "id"}
	}

	if request == nil || request.Name == "" {
		return nil, &rc.InvalidArgumentError{Param: "name"}
	}

	resp, err := c.httpClient.Patch(ctx, "/v2/resource_aliases/"+url.PathEscape(aliasID), request)
	if err != nil {
		return nil, fmt.Errorf("updating resource alias: %w", err)
	}

	var alias rc.ResourceAlias

	err = json.Unmarshal(resp.Body, &alias)
	if err != nil {
		return nil, fmt.Errorf("parsing resource alias: %w", err)
	}

	return &alias, nil
}

// Delete implements rc.ResourceAliasesClient.Delete.
func (c *ResourceAliasesClient) Delete(ctx context.Context, aliasID string) error {
	if aliasID == "" {
		return &rc.InvalidArgumentError{Param: "id"}
	}

	_, err := c.httpClient.Delete(ctx, "/v2/resource_aliases/"+url.PathEscape(aliasID))
	if err != nil {
		return fmt.Errorf("deleting resource alias: %w", err)
	}

	return nil
}
