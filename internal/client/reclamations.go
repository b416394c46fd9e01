package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rcontrol-io/rc-client/internal/http"
	"github.com/rcontrol-io/rc-client/pkg/rc"
)

// ReclamationsClient implements rc.ReclamationsClient.
type ReclamationsClient struct {
	httpClient *http.Client
}

// NewReclamationsClient creates a new reclamations client.
func NewReclamationsClient(httpClient *http.Client) *ReclamationsClient {
	return &ReclamationsClient{httpClient: httpClient}
}

// List implements rc.ReclamationsClient.List.
func (c *ReclamationsClient) List(ctx context.Context, opts *rc.ListReclamationsOptions) (*rc.ReclamationsList, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/reclamations", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing reclamations: %w", err)
	}

	var list rc.ReclamationsList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing reclamations list: %w", err)
	}

	return &list, nil
}

// RunAction implements rc.ReclamationsClient.RunAction. actionName is
// "reclaim" to delete the resource for good or "restore" to bring it back.
func (c *ReclamationsClient) RunAction(ctx context.Context, reclamationID, actionName string, request *rc.RunReclamationActionRequest) (*rc.Reclamation, error) {
	if reclamationID == "" {
		return nil, &rc.InvalidArgumentError{Param: "id"}
	}

	if actionName == "" {
		return nil, &rc.InvalidArgumentError{Param: "action_name"}
	}

	path := "/v1/reclamations/" + url.PathEscape(reclamationID) + "/actions/" + url.PathEscape(actionName)

	var body interface{}
	if request != nil {
		body = request
	}

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("running reclamation action: %w", err)
	}

	var reclamation rc.Reclamation

	err = json.Unmarshal(resp.Body, &reclamation)
	if err != nil {
		return nil, fmt.Errorf("parsing reclamation: %w", err)
	}

	return &reclamation, nil
}
