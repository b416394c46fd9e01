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

func TestResourceInstancesList(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v2/resource_instances", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "my-instance", request.URL.Query().Get("name"))
		assert.Equal(t, "50", request.URL.Query().Get("limit"))
		assert.False(t, request.URL.Query().Has("guid"))

		response := map[string]interface{}{
			"rows_count": 1,
			"next_url":   "/v2/resource_instances?start=abc",
			"resources": []map[string]interface{}{
				{"id": "instance-1", "name": "my-instance", "state": "active"},
			},
		}
		_ = json.NewEncoder(writer).Encode(response)
	}))
	defer server.Close()

	cli := client.NewTestClient(server.URL)

	list, err := cli.ResourceInstances().List(context.Background(), &rc.ListResourceInstancesOptions{
		Name:  "my-instance",
		Limit: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.RowsCount)
	assert.True(t, list.HasNext())
	require.Len(t, list.Resources, 1)
	assert.Equal(t, "instance-1", *list.Resources[0].ID)
	assert.Equal(t, "active", *list.Resources[0].State)
}

func TestResourceInstancesList_NilOptions(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Empty(t, request.URL.RawQuery)

		response := map[string]interface{}{
			"rows_count": 0,
			"next_url":   "",
			"resources":  []map[string]interface{}{},
		}
		_ = json.NewEncoder(writer).Encode(response)
	}))
	defer server.Close()

	cli := client.NewTestClient(server.URL)

	list, err := cli.ResourceInstances().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), list.RowsCount)
	assert.False(t, list.HasNext())
	assert.Empty(t, list.Resources)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestResourceInstancesCreate(t *testing.T) {
	t.Parallel()
	t.Run("successful create", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/resource_instances", request.URL.Path)
			assert.Equal(t, "POST", request.Method)
			assert.Empty(t, request.Header.Get("Entity-Lock"))

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "my-instance", body["name"])
			assert.Equal(t, "global", body["target"])
			assert.Equal(t, "group-1", body["resource_group"])
			assert.Equal(t, "plan-1", body["resource_plan_id"])
			assert.NotContains(t, body, "tags")
			assert.NotContains(t, body, "allow_cleanup")

			writer.WriteHeader(http.StatusCreated)

			response := map[string]interface{}{
				"id":    "instance-1",
				"name":  "my-instance",
				"state": "active",
			}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		cli := client.NewTestClient(server.URL)

		instance, err := cli.ResourceInstances().Create(context.Background(), &rc.CreateResourceInstanceRequest{
			Name:           "my-instance",
			Target:         "global",
			ResourceGroup:  "group-1",
			ResourcePlanID: "plan-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "instance-1", *instance.ID)
	})

	t.Run("create with entity lock header", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "true", request.Header.Get("Entity-Lock"))

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.NotContains(t, body, "EntityLock")

			writer.WriteHeader(http.StatusCreated)

			locked := true
			response := rc.ResourceInstance{ID: rc.StringPtr("instance-1"), Locked: &locked}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		cli := client.NewTestClient(server.URL)

		instance, err := cli.ResourceInstances().Create(context.Background(), &rc.CreateResourceInstanceRequest{
			Name:           "my-instance",
			Target:         "global",
			ResourceGroup:  "group-1",
			ResourcePlanID: "plan-1",
			EntityLock:     true,
		})
		require.NoError(t, err)
		assert.True(t, *instance.Locked)
	})

	t.Run("missing required arguments issue no request", func(t *testing.T) {
		t.Parallel()

		server := client.NewCountingServer(t)
		defer server.Close()

		cli := client.NewTestClient(server.URL)

		requests := map[string]*rc.CreateResourceInstanceRequest{
			"name":             {Target: "global", ResourceGroup: "g", ResourcePlanID: "p"},
			"target":           {Name: "n", ResourceGroup: "g", ResourcePlanID: "p"},
			"resource_group":   {Name: "n", Target: "global", ResourcePlanID: "p"},
			"resource_plan_id": {Name: "n", Target: "global", ResourceGroup: "g"},
		}

		for param, request := range requests {
			_, err := cli.ResourceInstances().Create(context.Background(), request)
			require.Error(t, err)

			invalidArg := &rc.InvalidArgumentError{}
			require.ErrorAs(t, err, &invalidArg)
			assert.Equal(t, param, invalidArg.Param)
		}
	})
}

func TestResourceInstancesGet(t *testing.T) {
	t.Parallel()

	instance := rc.ResourceInstance{
		ID:   rc.StringPtr("instance-1"),
		Name: rc.StringPtr("my-instance"),
	}

	tests := []client.TestGetOperation[rc.ResourceInstance]{
		{
			Name:         "successful get",
			ID:           "instance-1",
			ExpectedPath: "/v2/resource_instances/instance-1",
			StatusCode:   http.StatusOK,
			Response:     &instance,
		},
		{
			Name:         "not found",
			ID:           "missing",
			ExpectedPath: "/v2/resource_instances/missing",
			StatusCode:   http.StatusNotFound,
			Response: map[string]interface{}{
				"error_code": "RC-ResourceInstanceDoesnotExist",
				"message":    "instance not found",
			},
			WantErr:    true,
			ErrMessage: "instance not found",
		},
	}

	client.RunGetTests(t, tests, func(c *client.Client) func(context.Context, string) (*rc.ResourceInstance, error) {
		return c.ResourceInstances().Get
	})
}

func TestResourceInstancesGet_EscapesPath(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v2/resource_instances/id%2Fwith%2Fslashes", request.URL.EscapedPath())
		_ = json.NewEncoder(writer).Encode(rc.ResourceInstance{ID: rc.StringPtr("id/with/slashes")})
	}))
	defer server.Close()

	cli := client.NewTestClient(server.URL)

	instance, err := cli.ResourceInstances().Get(context.Background(), "id/with/slashes")
	require.NoError(t, err)
	assert.Equal(t, "id/with/slashes", *instance.ID)
}

func TestResourceInstancesUpdate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v2/resource_instances/instance-1", request.URL.Path)
		assert.Equal(t, "PATCH", request.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "renamed", body["name"])
		assert.NotContains(t, body, "resource_plan_id")

		response := rc.ResourceInstance{
			ID:   rc.StringPtr("instance-1"),
			Name: rc.StringPtr("renamed"),
		}
		_ = json.NewEncoder(writer).Encode(response)
	}))
	defer server.Close()

	cli := client.NewTestClient(server.URL)

	instance, err := cli.ResourceInstances().Update(context.Background(), "instance-1", &rc.UpdateResourceInstanceRequest{
		Name: rc.StringPtr("renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", *instance.Name)
}

func TestResourceInstancesDelete(t *testing.T) {
	t.Parallel()

	tests := []client.TestDeleteOperation{
		{
			Name:         "successful delete",
			ID:           "instance-1",
			ExpectedPath: "/v2/resource_instances/instance-1",
			StatusCode:   http.StatusNoContent,
		},
	}

	client.RunDeleteTests(t, tests, func(c *client.Client) func(context.Context, string) error {
		return c.ResourceInstances().Delete
	})
}

func TestResourceInstancesLockUnlock(t *testing.T) {
	t.Parallel()
	t.Run("lock", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/resource_instances/instance-1/lock", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			locked := true
			_ = json.NewEncoder(writer).Encode(rc.ResourceInstance{ID: rc.StringPtr("instance-1"), Locked: &locked})
		}))
		defer server.Close()

		cli := client.NewTestClient(server.URL)

		instance, err := cli.ResourceInstances().Lock(context.Background(), "instance-1")
		require.NoError(t, err)
		assert.True(t, *instance.Locked)
	})

	t.Run("unlock", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/resource_instances/instance-1/lock", request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)

			locked := false
			_ = json.NewEncoder(writer).Encode(rc.ResourceInstance{ID: rc.StringPtr("instance-1"), Locked: &locked})
		}))
		defer server.Close()

		cli := client.NewTestClient(server.URL)

		instance, err := cli.ResourceInstances().Unlock(context.Background(), "instance-1")
		require.NoError(t, err)
		assert.False(t, *instance.Locked)
	})

	t.Run("empty id issues no request", func(t *testing.T) {
		t.Parallel()

		server := client.NewCountingServer(t)
		defer server.Close()

		cli := client.NewTestClient(server.URL)

		_, err := cli.ResourceInstances().Lock(context.Background(), "")
		require.Error(t, err)

		invalidArg := &rc.InvalidArgumentError{}
		assert.ErrorAs(t, err, &invalidArg)

		_, err = cli.ResourceInstances().Unlock(context.Background(), "")
		require.Error(t, err)
		assert.ErrorAs(t, err, &invalidArg)
	})
}
