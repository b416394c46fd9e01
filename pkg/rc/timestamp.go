package rc

import (
	"encoding/json"
	"time"
)

// Timestamp is a point in time carried over the wire in RFC 3339 form.
// The API emits nanosecond-precision UTC timestamps; formatting preserves
// exactly what was parsed so decode/encode round-trips are lossless.
type Timestamp time.Time

// ParseTimestamp converts a wire timestamp string into a Timestamp. Both
// full RFC 3339 date-times and bare dates (YYYY-MM-DD) are accepted.
func ParseTimestamp(value string) (Timestamp, error) {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", value)
	}

	if err != nil {
		return Timestamp{}, &DecodeError{Value: value, Err: err}
	}

	return Timestamp(parsed), nil
}

// String renders the canonical wire form.
func (t Timestamp) String() string {
	return time.Time(t).Format(time.RFC3339Nano)
}

// Time returns the underlying time.Time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// Equal reports whether two timestamps represent the same instant.
func (t Timestamp) Equal(other Timestamp) bool {
	return time.Time(t).Equal(time.Time(other))
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler. A malformed timestamp fails
// with a *DecodeError rather than silently producing a zero value.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return &DecodeError{Value: string(data), Err: err}
	}

	parsed, err := ParseTimestamp(value)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// NewTimestamp returns a pointer to a Timestamp for the given time, for use
// in request payloads with optional fields.
func NewTimestamp(t time.Time) *Timestamp {
	ts := Timestamp(t)

	return &ts
}
