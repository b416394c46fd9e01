package rc

import (
	"net/url"
	"strconv"
)

// CreateResourceInstanceRequest provisions a new instance.
type CreateResourceInstanceRequest struct {
	// Name, Target, ResourceGroup and ResourcePlanID are required.
	Name           string                 `json:"name"`
	Target         string                 `json:"target"`
	ResourceGroup  string                 `json:"resource_group"`
	ResourcePlanID string                 `json:"resource_plan_id"`
	Tags           []string               `json:"tags,omitempty"`
	AllowCleanup   *bool                  `json:"allow_cleanup,omitempty"`
	Parameters     map[string]interface{} `json:"parameters,omitempty"`

	// EntityLock is sent as the Entity-Lock header, not in the body. When
	// true the instance is created already locked against update/delete.
	EntityLock bool `json:"-"`
}

// UpdateResourceInstanceRequest updates an instance. Only set fields are sent.
type UpdateResourceInstanceRequest struct {
	Name           *string                `json:"name,omitempty"`
	Parameters     map[string]interface{} `json:"parameters,omitempty"`
	ResourcePlanID *string                `json:"resource_plan_id,omitempty"`
	AllowCleanup   *bool                  `json:"allow_cleanup,omitempty"`
}

// ResourceKeyPostParameters carries configuration options for a new key.
type ResourceKeyPostParameters struct {
	ServiceIDCRN *string `json:"serviceid_crn,omitempty"`
}

// CreateResourceKeyRequest creates a new key against an instance or alias.
type CreateResourceKeyRequest struct {
	// Name and Source are required. Source is the short or long ID of a
	// resource instance or alias.
	Name       string                     `json:"name"`
	Source     string                     `json:"source"`
	Parameters *ResourceKeyPostParameters `json:"parameters,omitempty"`
	Role       *string                    `json:"role,omitempty"`
}

// UpdateResourceKeyRequest renames a key.
type UpdateResourceKeyRequest struct {
	Name string `json:"name"`
}

// ResourceBindingPostParameters carries configuration options for a binding.
type ResourceBindingPostParameters struct {
	ServiceIDCRN *string `json:"serviceid_crn,omitempty"`
}

// CreateResourceBindingRequest binds an alias to an application target.
type CreateResourceBindingRequest struct {
	// Source (alias ID) and Target (application CRN) are required.
	Source     string                         `json:"source"`
	Target     string                         `json:"target"`
	Name       *string                        `json:"name,omitempty"`
	Parameters *ResourceBindingPostParameters `json:"parameters,omitempty"`
	Role       *string                        `json:"role,omitempty"`
}

// UpdateResourceBindingRequest renames a binding.
type UpdateResourceBindingRequest struct {
	Name string `json:"name"`
}

// CreateResourceAliasRequest aliases an instance into a target namespace.
type CreateResourceAliasRequest struct {
	// All three fields are required.
	Name   string `json:"name"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// UpdateResourceAliasRequest renames an alias.
type UpdateResourceAliasRequest struct {
	Name string `json:"name"`
}

// RunReclamationActionRequest drives a reclamation. ActionName is "reclaim"
// to delete the resource for good or "restore" to bring it back.
type RunReclamationActionRequest struct {
	RequestBy *string `json:"request_by,omitempty"`
	Comment   *string `json:"comment,omitempty"`
}

// ListResourceInstancesOptions filters an instance listing. Zero values are
// omitted from the query string.
type ListResourceInstancesOptions struct {
	GUID            string
	Name            string
	ResourceGroupID string
	ResourceID      string
	ResourcePlanID  string
	Type            string
	SubType         string
	Limit           int
	UpdatedFrom     string
	UpdatedTo       string
}

// ToValues converts the options to URL query values.
func (o *ListResourceInstancesOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	setValue(values, "guid", o.GUID)
	setValue(values, "name", o.Name)
	setValue(values, "resource_group_id", o.ResourceGroupID)
	setValue(values, "resource_id", o.ResourceID)
	setValue(values, "resource_plan_id", o.ResourcePlanID)
	setValue(values, "type", o.Type)
	setValue(values, "sub_type", o.SubType)
	setLimit(values, o.Limit)
	setValue(values, "updated_from", o.UpdatedFrom)
	setValue(values, "updated_to", o.UpdatedTo)

	return values
}

// ListResourceKeysOptions filters a key listing.
type ListResourceKeysOptions struct {
	GUID            string
	Name            string
	ResourceGroupID string
	ResourceID      string
	Limit           int
	UpdatedFrom     string
	UpdatedTo       string
}

// ToValues converts the options to URL query values.
func (o *ListResourceKeysOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	setValue(values, "guid", o.GUID)
	setValue(values, "name", o.Name)
	setValue(values, "resource_group_id", o.ResourceGroupID)
	setValue(values, "resource_id", o.ResourceID)
	setLimit(values, o.Limit)
	setValue(values, "updated_from", o.UpdatedFrom)
	setValue(values, "updated_to", o.UpdatedTo)

	return values
}

// ListResourceBindingsOptions filters a binding listing.
type ListResourceBindingsOptions struct {
	GUID            string
	Name            string
	ResourceGroupID string
	ResourceID      string
	RegionBindingID string
	Limit           int
	UpdatedFrom     string
	UpdatedTo       string
}

// ToValues converts the options to URL query values.
func (o *ListResourceBindingsOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	setValue(values, "guid", o.GUID)
	setValue(values, "name", o.Name)
	setValue(values, "resource_group_id", o.ResourceGroupID)
	setValue(values, "resource_id", o.ResourceID)
	setValue(values, "region_binding_id", o.RegionBindingID)
	setLimit(values, o.Limit)
	setValue(values, "updated_from", o.UpdatedFrom)
	setValue(values, "updated_to", o.UpdatedTo)

	return values
}

// ListResourceAliasesOptions filters an alias listing.
type ListResourceAliasesOptions struct {
	GUID               string
	Name               string
	ResourceInstanceID string
	RegionInstanceID   string
	ResourceID         string
	ResourceGroupID    string
	Limit              int
	UpdatedFrom        string
	UpdatedTo          string
}

// ToValues converts the options to URL query values.
func (o *ListResourceAliasesOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	setValue(values, "guid", o.GUID)
	setValue(values, "name", o.Name)
	setValue(values, "resource_instance_id", o.ResourceInstanceID)
	setValue(values, "region_instance_id", o.RegionInstanceID)
	setValue(values, "resource_id", o.ResourceID)
	setValue(values, "resource_group_id", o.ResourceGroupID)
	setLimit(values, o.Limit)
	setValue(values, "updated_from", o.UpdatedFrom)
	setValue(values, "updated_to", o.UpdatedTo)

	return values
}

// ListReclamationsOptions filters a reclamation listing.
type ListReclamationsOptions struct {
	AccountID          string
	ResourceInstanceID string
}

// ToValues converts the options to URL query values.
func (o *ListReclamationsOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	setValue(values, "account_id", o.AccountID)
	setValue(values, "resource_instance_id", o.ResourceInstanceID)

	return values
}

func setValue(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func setLimit(values url.Values, limit int) {
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
}
