package rc

import (
	"encoding/json"
	"reflect"
)

// StringPtr returns a pointer to the given string.
func StringPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to the given bool.
func BoolPtr(b bool) *bool {
	return &b
}

// jsonString renders a model as indented JSON for diagnostics.
func jsonString(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}

	return string(data)
}

// Credentials is the secret material a resource broker attaches to a binding
// or key. Besides the fixed fields, brokers add arbitrary vendor-specific
// fields; those are preserved verbatim in Extra and merged back on encode.
type Credentials struct {
	APIKey               *string `json:"apikey,omitempty"`
	IAMAPIKeyDescription *string `json:"iam_apikey_description,omitempty"`
	IAMAPIKeyName        *string `json:"iam_apikey_name,omitempty"`
	IAMRoleCRN           *string `json:"iam_role_crn,omitempty"`
	IAMServiceIDCRN      *string `json:"iam_serviceid_crn,omitempty"`

	// Extra holds broker-defined fields not declared above. Never dropped,
	// never type-converted.
	Extra map[string]interface{} `json:"-"`
}

// credentialsFields is the set of declared wire names.
var credentialsFields = map[string]struct{}{
	"apikey":                 {},
	"iam_apikey_description": {},
	"iam_apikey_name":        {},
	"iam_role_crn":           {},
	"iam_serviceid_crn":      {},
}

// UnmarshalJSON implements json.Unmarshaler, splitting declared fields from
// broker-defined extras.
func (c *Credentials) UnmarshalJSON(data []byte) error {
	type credentials Credentials

	var known credentials
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var all map[string]interface{}
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	for name := range credentialsFields {
		delete(all, name)
	}

	*c = Credentials(known)
	if len(all) > 0 {
		c.Extra = all
	}

	return nil
}

// MarshalJSON implements json.Marshaler, appending extras to the declared
// fields. Extras never shadow a declared field.
func (c Credentials) MarshalJSON() ([]byte, error) {
	type credentials Credentials

	base, err := json.Marshal(credentials(c))
	if err != nil {
		return nil, err
	}

	if len(c.Extra) == 0 {
		return base, nil
	}

	merged := make(map[string]interface{})
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}

	for key, value := range c.Extra {
		if _, declared := credentialsFields[key]; declared {
			continue
		}

		merged[key] = value
	}

	return json.Marshal(merged)
}

// Equal reports whether every attribute, declared and extra, compares equal.
func (c *Credentials) Equal(other *Credentials) bool {
	if c == nil || other == nil {
		return c == other
	}

	return reflect.DeepEqual(*c, *other)
}

// String renders the credentials as indented JSON.
func (c Credentials) String() string {
	return jsonString(c)
}

// PlanHistoryItem is one element of an instance's plan history: the plan and
// the date the instance moved onto it. Both fields are required on the wire.
type PlanHistoryItem struct {
	ResourcePlanID string    `json:"resource_plan_id"`
	StartDate      Timestamp `json:"start_date"`
}

// UnmarshalJSON implements json.Unmarshaler and enforces the required fields.
func (p *PlanHistoryItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		ResourcePlanID *string    `json:"resource_plan_id"`
		StartDate      *Timestamp `json:"start_date"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.ResourcePlanID == nil {
		return &MissingRequiredFieldError{Field: "resource_plan_id", Model: "PlanHistoryItem"}
	}

	if raw.StartDate == nil {
		return &MissingRequiredFieldError{Field: "start_date", Model: "PlanHistoryItem"}
	}

	p.ResourcePlanID = *raw.ResourcePlanID
	p.StartDate = *raw.StartDate

	return nil
}

// Equal reports whether both attributes compare equal.
func (p PlanHistoryItem) Equal(other PlanHistoryItem) bool {
	return p.ResourcePlanID == other.ResourcePlanID && p.StartDate.Equal(other.StartDate)
}

// String renders the item as indented JSON.
func (p PlanHistoryItem) String() string {
	return jsonString(p)
}

// ResourceInstance is a provisioned resource. Every field is optional: the
// server decides what to return, and partial values round-trip without
// inventing keys for absent fields.
type ResourceInstance struct {
	ID                  *string                `json:"id,omitempty"`
	GUID                *string                `json:"guid,omitempty"`
	CRN                 *string                `json:"crn,omitempty"`
	URL                 *string                `json:"url,omitempty"`
	Name                *string                `json:"name,omitempty"`
	AccountID           *string                `json:"account_id,omitempty"`
	ResourceGroupID     *string                `json:"resource_group_id,omitempty"`
	ResourceGroupCRN    *string                `json:"resource_group_crn,omitempty"`
	ResourceID          *string                `json:"resource_id,omitempty"`
	ResourcePlanID      *string                `json:"resource_plan_id,omitempty"`
	TargetCRN           *string                `json:"target_crn,omitempty"`
	State               *string                `json:"state,omitempty"`
	Type                *string                `json:"type,omitempty"`
	SubType             *string                `json:"sub_type,omitempty"`
	AllowCleanup        *bool                  `json:"allow_cleanup,omitempty"`
	Locked              *bool                  `json:"locked,omitempty"`
	LastOperation       map[string]interface{} `json:"last_operation,omitempty"`
	DashboardURL        *string                `json:"dashboard_url,omitempty"`
	PlanHistory         []PlanHistoryItem      `json:"plan_history,omitempty"`
	ResourceAliasesURL  *string                `json:"resource_aliases_url,omitempty"`
	ResourceBindingsURL *string                `json:"resource_bindings_url,omitempty"`
	ResourceKeysURL     *string                `json:"resource_keys_url,omitempty"`
	CreatedAt           *Timestamp             `json:"created_at,omitempty"`
	UpdatedAt           *Timestamp             `json:"updated_at,omitempty"`
	DeletedAt           *Timestamp             `json:"deleted_at,omitempty"`
}

// String renders the instance as indented JSON.
func (r ResourceInstance) String() string {
	return jsonString(r)
}

// ResourceAlias projects an instance into a target namespace.
type ResourceAlias struct {
	ID                  *string    `json:"id,omitempty"`
	GUID                *string    `json:"guid,omitempty"`
	CRN                 *string    `json:"crn,omitempty"`
	URL                 *string    `json:"url,omitempty"`
	Name                *string    `json:"name,omitempty"`
	AccountID           *string    `json:"account_id,omitempty"`
	ResourceGroupID     *string    `json:"resource_group_id,omitempty"`
	ResourceGroupCRN    *string    `json:"resource_group_crn,omitempty"`
	TargetCRN           *string    `json:"target_crn,omitempty"`
	State               *string    `json:"state,omitempty"`
	ResourceInstanceID  *string    `json:"resource_instance_id,omitempty"`
	RegionInstanceID    *string    `json:"region_instance_id,omitempty"`
	ResourceInstanceURL *string    `json:"resource_instance_url,omitempty"`
	ResourceBindingsURL *string    `json:"resource_bindings_url,omitempty"`
	ResourceKeysURL     *string    `json:"resource_keys_url,omitempty"`
	CreatedAt           *Timestamp `json:"created_at,omitempty"`
	UpdatedAt           *Timestamp `json:"updated_at,omitempty"`
	DeletedAt           *Timestamp `json:"deleted_at,omitempty"`
}

// String renders the alias as indented JSON.
func (r ResourceAlias) String() string {
	return jsonString(r)
}

// ResourceBinding attaches credentials to an alias for consumption by an
// application in a target environment.
type ResourceBinding struct {
	ID               *string      `json:"id,omitempty"`
	GUID             *string      `json:"guid,omitempty"`
	CRN              *string      `json:"crn,omitempty"`
	URL              *string      `json:"url,omitempty"`
	Name             *string      `json:"name,omitempty"`
	AccountID        *string      `json:"account_id,omitempty"`
	ResourceGroupID  *string      `json:"resource_group_id,omitempty"`
	SourceCRN        *string      `json:"source_crn,omitempty"`
	TargetCRN        *string      `json:"target_crn,omitempty"`
	RegionBindingID  *string      `json:"region_binding_id,omitempty"`
	State            *string      `json:"state,omitempty"`
	Credentials      *Credentials `json:"credentials,omitempty"`
	IAMCompatible    *bool        `json:"iam_compatible,omitempty"`
	ResourceAliasURL *string      `json:"resource_alias_url,omitempty"`
	CreatedAt        *Timestamp   `json:"created_at,omitempty"`
	UpdatedAt        *Timestamp   `json:"updated_at,omitempty"`
	DeletedAt        *Timestamp   `json:"deleted_at,omitempty"`
}

// String renders the binding as indented JSON.
func (r ResourceBinding) String() string {
	return jsonString(r)
}

// ResourceKey grants credentials directly against an instance or alias,
// without an application binding.
type ResourceKey struct {
	ID                  *string      `json:"id,omitempty"`
	GUID                *string      `json:"guid,omitempty"`
	CRN                 *string      `json:"crn,omitempty"`
	URL                 *string      `json:"url,omitempty"`
	Name                *string      `json:"name,omitempty"`
	AccountID           *string      `json:"account_id,omitempty"`
	ResourceGroupID     *string      `json:"resource_group_id,omitempty"`
	SourceCRN           *string      `json:"source_crn,omitempty"`
	State               *string      `json:"state,omitempty"`
	Credentials         *Credentials `json:"credentials,omitempty"`
	IAMCompatible       *bool        `json:"iam_compatible,omitempty"`
	ResourceInstanceURL *string      `json:"resource_instance_url,omitempty"`
	CreatedAt           *Timestamp   `json:"created_at,omitempty"`
	UpdatedAt           *Timestamp   `json:"updated_at,omitempty"`
	DeletedAt           *Timestamp   `json:"deleted_at,omitempty"`
}

// String renders the key as indented JSON.
func (r ResourceKey) String() string {
	return jsonString(r)
}

// Reclamation is a pending deletion/restore workflow for an instance past
// its retention policy. State values are opaque server-assigned strings.
type Reclamation struct {
	ID                 *string                `json:"id,omitempty"`
	EntityID           *string                `json:"entity_id,omitempty"`
	EntityTypeID       *string                `json:"entity_type_id,omitempty"`
	EntityCRN          *string                `json:"entity_crn,omitempty"`
	ResourceInstanceID *string                `json:"resource_instance_id,omitempty"`
	ResourceGroupID    *string                `json:"resource_group_id,omitempty"`
	AccountID          *string                `json:"account_id,omitempty"`
	PolicyID           *string                `json:"policy_id,omitempty"`
	State              *string                `json:"state,omitempty"`
	TargetTime         *string                `json:"target_time,omitempty"`
	CustomProperties   map[string]interface{} `json:"custom_properties,omitempty"`
	CreatedAt          *Timestamp             `json:"created_at,omitempty"`
	CreatedBy          *string                `json:"created_by,omitempty"`
	UpdatedAt          *Timestamp             `json:"updated_at,omitempty"`
	UpdatedBy          *string                `json:"updated_by,omitempty"`
}

// String renders the reclamation as indented JSON.
func (r Reclamation) String() string {
	return jsonString(r)
}
