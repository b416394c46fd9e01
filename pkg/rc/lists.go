package rc

import "encoding/json"

// ResourceInstancesList is one page of instances. The server always sends
// rows_count, next_url and resources; next_url is empty on the last page.
type ResourceInstancesList struct {
	RowsCount int64              `json:"rows_count"`
	NextURL   string             `json:"next_url"`
	Resources []ResourceInstance `json:"resources"`
}

// UnmarshalJSON implements json.Unmarshaler and enforces the required fields.
func (l *ResourceInstancesList) UnmarshalJSON(data []byte) error {
	var raw struct {
		RowsCount *int64              `json:"rows_count"`
		NextURL   *string             `json:"next_url"`
		Resources *[]ResourceInstance `json:"resources"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if err := checkListFields("ResourceInstancesList", raw.RowsCount, raw.NextURL, raw.Resources == nil); err != nil {
		return err
	}

	l.RowsCount = *raw.RowsCount
	l.NextURL = *raw.NextURL
	l.Resources = *raw.Resources

	return nil
}

// HasNext reports whether another page follows this one.
func (l *ResourceInstancesList) HasNext() bool {
	return l.NextURL != ""
}

// String renders the list as indented JSON.
func (l ResourceInstancesList) String() string {
	return jsonString(l)
}

// ResourceKeysList is one page of keys.
type ResourceKeysList struct {
	RowsCount int64         `json:"rows_count"`
	NextURL   string        `json:"next_url"`
	Resources []ResourceKey `json:"resources"`
}

// UnmarshalJSON implements json.Unmarshaler and enforces the required fields.
func (l *ResourceKeysList) UnmarshalJSON(data []byte) error {
	var raw struct {
		RowsCount *int64         `json:"rows_count"`
		NextURL   *string        `json:"next_url"`
		Resources *[]ResourceKey `json:"resources"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if err := checkListFields("ResourceKeysList", raw.RowsCount, raw.NextURL, raw.Resources == nil); err != nil {
		return err
	}

	l.RowsCount = *raw.RowsCount
	l.NextURL = *raw.NextURL
	l.Resources = *raw.Resources

	return nil
}

// HasNext reports whether another page follows this one.
func (l *ResourceKeysList) HasNext() bool {
	return l.NextURL != ""
}

// String renders the list as indented JSON.
func (l ResourceKeysList) String() string {
	return jsonString(l)
}

// ResourceBindingsList is one page of bindings.
type ResourceBindingsList struct {
	RowsCount int64             `json:"rows_count"`
	NextURL   string            `json:"next_url"`
	Resources []ResourceBinding `json:"resources"`
}

// UnmarshalJSON implements json.Unmarshaler and enforces the required fields.
func (l *ResourceBindingsList) UnmarshalJSON(data []byte) error {
	var raw struct {
		RowsCount *int64             `json:"rows_count"`
		NextURL   *string            `json:"next_url"`
		Resources *[]ResourceBinding `json:"resources"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if err := checkListFields("ResourceBindingsList", raw.RowsCount, raw.NextURL, raw.Resources == nil); err != nil {
		return err
	}

	l.RowsCount = *raw.RowsCount
	l.NextURL = *raw.NextURL
	l.Resources = *raw.Resources

	return nil
}

// HasNext reports whether another page follows this one.
func (l *ResourceBindingsList) HasNext() bool {
	return l.NextURL != ""
}

// String renders the list as indented JSON.
func (l ResourceBindingsList) String() string {
	return jsonString(l)
}

// ResourceAliasesList is one page of aliases.
type ResourceAliasesList struct {
	RowsCount int64           `json:"rows_count"`
	NextURL   string          `json:"next_url"`
	Resources []ResourceAlias `json:"resources"`
}

// UnmarshalJSON implements json.Unmarshaler and enforces the required fields.
func (l *ResourceAliasesList) UnmarshalJSON(data []byte) error {
	var raw struct {
		RowsCount *int64           `json:"rows_count"`
		NextURL   *string          `json:"next_url"`
		Resources *[]ResourceAlias `json:"resources"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if err := checkListFields("ResourceAliasesList", raw.RowsCount, raw.NextURL, raw.Resources == nil); err != nil {
		return err
	}

	l.RowsCount = *raw.RowsCount
	l.NextURL = *raw.NextURL
	l.Resources = *raw.Resources

	return nil
}

// HasNext reports whether another page follows this one.
func (l *ResourceAliasesList) HasNext() bool {
	return l.NextURL != ""
}

// String renders the list as indented JSON.
func (l ResourceAliasesList) String() string {
	return jsonString(l)
}

// ReclamationsList holds reclamations. Unlike the paged lists, resources is
// optional on the wire and there is no pagination envelope.
type ReclamationsList struct {
	Resources []Reclamation `json:"resources,omitempty"`
}

// String renders the list as indented JSON.
func (l ReclamationsList) String() string {
	return jsonString(l)
}

// checkListFields reports the first missing required list-envelope field.
func checkListFields(model string, rowsCount *int64, nextURL *string, resourcesMissing bool) error {
	if rowsCount == nil {
		return &MissingRequiredFieldError{Field: "rows_count", Model: model}
	}

	if nextURL == nil {
		return &MissingRequiredFieldError{Field: "next_url", Model: model}
	}

	if resourcesMissing {
		return &MissingRequiredFieldError{Field: "resources", Model: model}
	}

	return nil
}
