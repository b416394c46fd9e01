package rc_test

import (
	"encoding/json"
	"testing"

	"github.com/rcontrol-io/rc-client/pkg/rc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListResourceInstancesOptions_ToValues(t *testing.T) {
	t.Parallel()
	t.Run("nil options", func(t *testing.T) {
		t.Parallel()

		var opts *rc.ListResourceInstancesOptions

		assert.Empty(t, opts.ToValues())
	})

	t.Run("zero values are dropped", func(t *testing.T) {
		t.Parallel()

		opts := &rc.ListResourceInstancesOptions{
			Name:  "my-postgres",
			Limit: 0,
		}

		values := opts.ToValues()
		assert.Equal(t, "my-postgres", values.Get("name"))
		assert.NotContains(t, values, "limit")
		assert.NotContains(t, values, "guid")
	})

	t.Run("all filters", func(t *testing.T) {
		t.Parallel()

		opts := &rc.ListResourceInstancesOptions{
			GUID:            "guid-1",
			Name:            "my-postgres",
			ResourceGroupID: "group-1",
			ResourceID:      "resource-1",
			ResourcePlanID:  "plan-1",
			Type:            "service_instance",
			SubType:         "pg",
			Limit:           50,
			UpdatedFrom:     "2021-01-01",
			UpdatedTo:       "2021-02-01",
		}

		values := opts.ToValues()
		assert.Len(t, values, 10)
		assert.Equal(t, "50", values.Get("limit"))
		assert.Equal(t, "service_instance", values.Get("type"))
		assert.Equal(t, "2021-01-01", values.Get("updated_from"))
	})
}

func TestListResourceAliasesOptions_ToValues(t *testing.T) {
	t.Parallel()

	opts := &rc.ListResourceAliasesOptions{
		ResourceInstanceID: "instance-1",
		RegionInstanceID:   "region-instance-1",
		Limit:              10,
	}

	values := opts.ToValues()
	assert.Equal(t, "instance-1", values.Get("resource_instance_id"))
	assert.Equal(t, "region-instance-1", values.Get("region_instance_id"))
	assert.Equal(t, "10", values.Get("limit"))
	assert.NotContains(t, values, "name")
}

func TestListReclamationsOptions_ToValues(t *testing.T) {
	t.Parallel()

	var nilOpts *rc.ListReclamationsOptions

	assert.Empty(t, nilOpts.ToValues())

	opts := &rc.ListReclamationsOptions{AccountID: "account-1"}
	values := opts.ToValues()
	assert.Equal(t, "account-1", values.Get("account_id"))
	assert.NotContains(t, values, "resource_instance_id")
}

func TestCreateResourceInstanceRequest_JSON(t *testing.T) {
	t.Parallel()

	request := rc.CreateResourceInstanceRequest{
		Name:           "my-postgres",
		Target:         "region-1",
		ResourceGroup:  "group-1",
		ResourcePlanID: "plan-1",
		EntityLock:     true,
	}

	data, err := json.Marshal(request)
	require.NoError(t, err)

	var rendered map[string]interface{}

	require.NoError(t, json.Unmarshal(data, &rendered))

	// EntityLock travels as a header, never in the body.
	assert.NotContains(t, rendered, "EntityLock")
	assert.NotContains(t, rendered, "entity_lock")
	assert.Equal(t, "my-postgres", rendered["name"])
	assert.NotContains(t, rendered, "tags")
	assert.NotContains(t, rendered, "allow_cleanup")
}

func TestUpdateResourceInstanceRequest_JSON(t *testing.T) {
	t.Parallel()

	request := rc.UpdateResourceInstanceRequest{
		Name: rc.StringPtr("renamed"),
	}

	data, err := json.Marshal(request)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "renamed"}`, string(data))
}
