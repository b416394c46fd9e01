package rc_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rcontrol-io/rc-client/pkg/rc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{name: "second precision", value: "2021-01-01T12:00:00Z"},
		{name: "nanosecond precision", value: "2020-09-04T16:12:20.123456789Z"},
		{name: "with offset", value: "2020-09-04T16:12:20+02:00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parsed, err := rc.ParseTimestamp(tt.value)
			require.NoError(t, err)
			// Formatting what was parsed reproduces the wire form.
			assert.Equal(t, tt.value, parsed.String())
		})
	}

	t.Run("bare date", func(t *testing.T) {
		t.Parallel()

		parsed, err := rc.ParseTimestamp("2021-03-15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC), parsed.Time())
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Parallel()

		_, err := rc.ParseTimestamp("not-a-time")
		require.Error(t, err)

		decodeErr := &rc.DecodeError{}
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "not-a-time", decodeErr.Value)
	})
}

func TestTimestamp_JSON(t *testing.T) {
	t.Parallel()
	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		var ts rc.Timestamp

		err := json.Unmarshal([]byte(`"2020-09-04T16:12:20.123456789Z"`), &ts)
		require.NoError(t, err)

		data, err := json.Marshal(ts)
		require.NoError(t, err)
		assert.Equal(t, `"2020-09-04T16:12:20.123456789Z"`, string(data))
	})

	t.Run("malformed string", func(t *testing.T) {
		t.Parallel()

		var ts rc.Timestamp

		err := json.Unmarshal([]byte(`"yesterday"`), &ts)
		require.Error(t, err)

		decodeErr := &rc.DecodeError{}
		assert.ErrorAs(t, err, &decodeErr)
	})

	t.Run("non-string value", func(t *testing.T) {
		t.Parallel()

		var ts rc.Timestamp

		err := json.Unmarshal([]byte(`1599235940`), &ts)
		require.Error(t, err)

		decodeErr := &rc.DecodeError{}
		assert.ErrorAs(t, err, &decodeErr)
	})
}

func TestTimestamp_Equal(t *testing.T) {
	t.Parallel()

	utc, err := rc.ParseTimestamp("2020-09-04T14:12:20Z")
	require.NoError(t, err)

	offset, err := rc.ParseTimestamp("2020-09-04T16:12:20+02:00")
	require.NoError(t, err)

	other, err := rc.ParseTimestamp("2020-09-04T16:12:21Z")
	require.NoError(t, err)

	// Same instant in different zones compares equal.
	assert.True(t, utc.Equal(offset))
	assert.False(t, utc.Equal(other))
}

func TestNewTimestamp(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	ts := rc.NewTimestamp(now)
	require.NotNil(t, ts)
	assert.Equal(t, now, ts.Time())
}
