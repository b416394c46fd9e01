package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rcontrol-io/rc-client/internal/http"
	"github.com/rcontrol-io/rc-client/pkg/rc"
)

// ResourceInstancesClient implements rc.ResourceInstancesClient.
type ResourceInstancesClient struct {
	httpClient *http.Client
}

// NewResourceInstancesClient creates a new resource instances client.
func NewResourceInstancesClient(httpClient *http.Client) *ResourceInstancesClient {
	return &ResourceInstancesClient{httpClient: httpClient}
}

// List implements rc.ResourceInstancesClient.List.
func (c *ResourceInstancesClient) List(ctx context.Context, opts *rc.ListResourceInstancesOptions) (*rc.ResourceInstancesList, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/resource_instances", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing resource instances: %w", err)
	}

	var list rc.ResourceInstancesList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing resource instances list: %w", err)
	}

	return &list, nil
}

// Create implements rc.ResourceInstancesClient.Create. When the request asks
// for an entity lock, the flag travels in the Entity-Lock header rather than
// the body.
func (c *ResourceInstancesClient) Create(ctx context.Context, request *rc.CreateResourceInstanceRequest) (*rc.ResourceInstance, error) {
	if request == nil {
		return nil, &rc.InvalidArgumentError{Param: "request"}
	}

	if request.Name == "" {
		return nil, &rc.InvalidArgumentError{Param: "name"}
	}

	if request.Target == "" {
		return nil, &rc.InvalidArgumentError{Param: "target"}
	}

	if request.ResourceGroup == "" {
		return nil, &rc.InvalidArgumentError{Param: "resource_group"}
	}

	if request.ResourcePlanID == "" {
		return nil, &rc.InvalidArgumentError{Param: "resource_plan_id"}
	}

	req := &http.Request{
		Method: "POST",
		Path:   "/v2/resource_instances",
		Body:   request,
	}

	if request.EntityLock {
		req.Headers = map[string]string{"Entity-Lock": strconv.FormatBool(request.EntityLock)}
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating resource instance: %w", err)
	}

	var instance rc.ResourceInstance

	err = json.Unmarshal(resp.Body, &instance)
	if err != nil {
		return nil, fmt.Errorf("parsing resource instance: %w", err)
	}

	return &instance, nil
}

// Get implements rc.ResourceInstancesClient.Get.
func (c *ResourceInstancesClient) Get(ctx context.Context, instanceID string) (*rc.ResourceInstance, error) {
	if instanceID == "" {
		return nil, &rc.InvalidArgumentError{Param: "id"}
	}

	resp, err := c.httpClient.Get(ctx, "/v2/resource_instances/"+url.PathEscape(instanceID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting resource instance: %w", err)
	}

	var instance rc.ResourceInstance

	err = json.Unmarshal(resp.Body, &instance)
	if err != nil {
		return nil, fmt.Errorf("parsing resource instance: %w", err)
	}

	return &instance, nil
}

// Update implements rc.ResourceInstancesClient.Update.
func (c *ResourceInstancesClient) Update(ctx context.Context, instanceID string, request *rc.UpdateResourceInstanceRequest) (*rc.ResourceInstance, error) {
	if instanceID == "" {
		return nil, &rc.InvalidArgumentError{Param: "id"}
	}

	resp, err := c.httpClient.Patch(ctx, "/v2/resource_instances/"+url.PathEscape(instanceID), request)
	if err != nil {
		return nil, fmt.Errorf("updating resource instance: %w", err)
	}

	var instance rc.ResourceInstance

	err = json.Unmarshal(resp.Body, &instance)
	if err != nil {
		return nil, fmt.Errorf("parsing resource instance: %w", err)
	}

	return &instance, nil
}

// Delete implements rc.ResourceInstancesClient.Delete.
func (c *ResourceInstancesClient) Delete(ctx context.Context, instanceID string) error {
	if instanceID == "" {
		return &rc.InvalidArgumentError{Param: "id"}
	}

	_, err := c.httpClient.Delete(ctx, "/v2/resource_instances/"+url.PathEscape(instanceID))
	if err != nil {
		return fmt.Errorf("deleting resource instance: %w", err)
	}

	return nil
}

// Lock implements rc.ResourceInstancesClient.Lock.
func (c *ResourceInstancesClient) Lock(ctx context.Context, instanceID string) (*rc.ResourceInstance, error) {
	if instanceID == "" {
		return nil, &rc.InvalidArgumentError{Param: "id"}
	}

	resp, err := c.httpClient.Post(ctx, "/v2/resource_instances/"+url.PathEscape(instanceID)+"/lock", nil)
	if err != nil {
		return nil, fmt.Errorf("locking resource instance: %w", err)
	}

	var instance rc.ResourceInstance

	err = json.Unmarshal(resp.Body, &instance)
	if err != nil {
		return nil, fmt.Errorf("parsing resource instance: %w", err)
	}

	return &instance, nil
}

// Unlock implements rc.ResourceInstancesClient.Unlock.
func (c *ResourceInstancesClient) Unlock(ctx context.Context, instanceID string) (*rc.ResourceInstance, error) {
	if instanceID == "" {
		return nil, &rc.InvalidArgumentError{Param: "id"}
	}

	resp, err := c.httpClient.Delete(ctx, "/v2/resource_instances/"+url.PathEscape(instanceID)+"/lock")
	if err != nil {
		return nil, fmt.Errorf("unlocking resource instance: %w", err)
	}

	var instance rc.ResourceInstance

	err = json.Unmarshal(resp.Body, &instance)
	if err != nil {
		return nil, fmt.Errorf("parsing resource instance: %w", err)
	}

	return &instance, nil
}
