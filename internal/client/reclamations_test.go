package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rcontrol-io/rc-client/internal/client"
	"github.com/rcontrol-io/rc-client/pkg/rc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReclamationsList(t *testing.T) {
	t.Parallel()
	t.Run("with filters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/reclamations", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "account-1", request.URL.Query().Get("account_id"))
			assert.Equal(t, "instance-1", request.URL.Query().Get("resource_instance_id"))

			response := map[string]interface{}{
				"resources": []map[string]interface{}{
					{"id": "reclamation-1", "state": "SCHEDULED"},
				},
			}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		cli := client.NewTestClient(server.URL)

		list, err := cli.Reclamations().List(context.Background(), &rc.ListReclamationsOptions{
			AccountID:          "account-1",
			ResourceInstanceID: "instance-1",
		})
		require.NoError(t, err)
		require.Len(t, list.Resources, 1)
		assert.Equal(t, "SCHEDULED", *list.Resources[0].State)
	})

	t.Run("empty body decodes to empty list", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{})
		}))
		defer server.Close()

		cli := client.NewTestClient(server.URL)

		list, err := cli.Reclamations().List(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, list.Resources)
	})
}

func TestReclamationsRunAction(t *testing.T) {
	t.Parallel()
	t.Run("restore with comment", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/reclamations/reclamation-1/actions/restore", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "restore request", body["comment"])
			assert.NotContains(t, body, "request_by")

			_ = json.NewEncoder(writer).Encode(rc.Reclamation{
				ID:    rc.StringPtr("reclamation-1"),
				State: rc.StringPtr("RESTORING"),
			})
		}))
		defer server.Close()

		cli := client.NewTestClient(server.URL)

		reclamation, err := cli.Reclamations().RunAction(context.Background(), "reclamation-1", "restore", &rc.RunReclamationActionRequest{
			Comment: rc.StringPtr("restore request"),
		})
		require.NoError(t, err)
		assert.Equal(t, "RESTORING", *reclamation.State)
	})

	t.Run("reclaim without body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/reclamations/reclamation-1/actions/reclaim", request.URL.Path)

			_ = json.NewEncoder(writer).Encode(rc.Reclamation{
				ID:    rc.StringPtr("reclamation-1"),
				State: rc.StringPtr("RECLAIMING"),
			})
		}))
		defer server.Close()

		cli := client.NewTestClient(server.URL)

		reclamation, err := cli.Reclamations().RunAction(context.Background(), "reclamation-1", "reclaim", nil)
		require.NoError(t, err)
		assert.Equal(t, "RECLAIMING", *reclamation.State)
	})

	t.Run("missing arguments issue no request", func(t *testing.T) {
		t.Parallel()

		server := client.NewCountingServer(t)
		defer server.Close()

		cli := client.NewTestClient(server.URL)

		invalidArg := &rc.InvalidArgumentError{}

		_, err := cli.Reclamations().RunAction(context.Background(), "", "reclaim", nil)
		require.ErrorAs(t, err, &invalidArg)
		assert.Equal(t, "id", invalidArg.Param)

		_, err = cli.Reclamations().RunAction(context.Background(), "reclamation-1", "", nil)
		require.ErrorAs(t, err, &invalidArg)
		assert.Equal(t, "action_name", invalidArg.Param)
	})
}
