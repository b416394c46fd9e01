package rc_test

import (
	"encoding/json"
	"testing"

	"github.com/rcontrol-io/rc-client/pkg/rc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceInstancesList_UnmarshalJSON(t *testing.T) {
	t.Parallel()
	t.Run("complete envelope", func(t *testing.T) {
		t.Parallel()

		wire := `{
			"rows_count": 2,
			"next_url": "/v2/resource_instances?next_docid=abc",
			"resources": [
				{"id": "instance-1"},
				{"id": "instance-2"}
			]
		}`

		var list rc.ResourceInstancesList

		err := json.Unmarshal([]byte(wire), &list)
		require.NoError(t, err)
		assert.Equal(t, int64(2), list.RowsCount)
		require.Len(t, list.Resources, 2)
		assert.Equal(t, "instance-2", *list.Resources[1].ID)
		assert.True(t, list.HasNext())
	})

	t.Run("last page", func(t *testing.T) {
		t.Parallel()

		var list rc.ResourceInstancesList

		err := json.Unmarshal([]byte(`{"rows_count": 0, "next_url": "", "resources": []}`), &list)
		require.NoError(t, err)
		assert.False(t, list.HasNext())
		assert.Empty(t, list.Resources)
	})

	t.Run("missing envelope fields", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name  string
			wire  string
			field string
		}{
			{
				name:  "rows_count",
				wire:  `{"next_url": "", "resources": []}`,
				field: "rows_count",
			},
			{
				name:  "next_url",
				wire:  `{"rows_count": 0, "resources": []}`,
				field: "next_url",
			},
			{
				name:  "resources",
				wire:  `{"rows_count": 0, "next_url": ""}`,
				field: "resources",
			},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				var list rc.ResourceInstancesList

				err := json.Unmarshal([]byte(tt.wire), &list)
				require.Error(t, err)

				missing := &rc.MissingRequiredFieldError{}
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, tt.field, missing.Field)
				assert.Equal(t, "ResourceInstancesList", missing.Model)
			})
		}
	})
}

func TestListEnvelopes_RequireFields(t *testing.T) {
	t.Parallel()

	// Every paged list enforces the same envelope contract.
	tests := []struct {
		name      string
		unmarshal func([]byte) error
		model     string
	}{
		{
			name: "keys",
			unmarshal: func(data []byte) error {
				var list rc.ResourceKeysList

				return json.Unmarshal(data, &list)
			},
			model: "ResourceKeysList",
		},
		{
			name: "bindings",
			unmarshal: func(data []byte) error {
				var list rc.ResourceBindingsList

				return json.Unmarshal(data, &list)
			},
			model: "ResourceBindingsList",
		},
		{
			name: "aliases",
			unmarshal: func(data []byte) error {
				var list rc.ResourceAliasesList

				return json.Unmarshal(data, &list)
			},
			model: "ResourceAliasesList",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.unmarshal([]byte(`{"next_url": "", "resources": []}`))
			require.Error(t, err)

			missing := &rc.MissingRequiredFieldError{}
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, "rows_count", missing.Field)
			assert.Equal(t, tt.model, missing.Model)

			err = tt.unmarshal([]byte(`{"rows_count": 0, "next_url": "", "resources": []}`))
			require.NoError(t, err)
		})
	}
}

func TestReclamationsList_UnmarshalJSON(t *testing.T) {
	t.Parallel()
	t.Run("with resources", func(t *testing.T) {
		t.Parallel()

		var list rc.ReclamationsList

		err := json.Unmarshal([]byte(`{"resources": [{"id": "reclamation-1"}]}`), &list)
		require.NoError(t, err)
		require.Len(t, list.Resources, 1)
		assert.Equal(t, "reclamation-1", *list.Resources[0].ID)
	})

	t.Run("empty object", func(t *testing.T) {
		t.Parallel()

		var list rc.ReclamationsList

		err := json.Unmarshal([]byte(`{}`), &list)
		require.NoError(t, err)
		assert.Empty(t, list.Resources)
	})
}
