package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rcontrol-io/rc-client/internal/constants"
	"github.com/rcontrol-io/rc-client/pkg/rc"
	"github.com/rcontrol-io/rc-client/pkg/rcclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrAPIKeyRequired      = errors.New("API key is required")
)

// CreateClient builds an API client from the effective configuration. The
// api flag, RC_* environment variables, and the config file have already
// been merged by viper at this point.
func CreateClient() (rc.Client, error) {
	config := &rc.Config{
		APIEndpoint: viper.GetString("api"),
		APIKey:      viper.GetString("apikey"),
		AccessToken: viper.GetString("token"),
		TokenURL:    viper.GetString("token_url"),
		Debug:       viper.GetBool("debug"),
	}

	client, err := rcclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// renderOutput writes value as JSON or YAML per the output flag, or calls
// renderTable for the default format.
func renderOutput(value interface{}, renderTable func() error) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode as JSON: %w", err)
		}

		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode as YAML: %w", err)
		}

		return nil
	default:
		return renderTable()
	}
}

// strValue renders an optional string for table output.
func strValue(value *string) string {
	if value == nil || *value == "" {
		return constants.NotAvailable
	}

	return *value
}

// boolValue renders an optional bool for table output.
func boolValue(value *bool) string {
	if value == nil {
		return constants.NotAvailable
	}

	return strconv.FormatBool(*value)
}

// timeValue renders an optional timestamp for table output.
func timeValue(value *rc.Timestamp) string {
	if value == nil {
		return constants.NotAvailable
	}

	return value.Time().Format("2006-01-02 15:04:05")
}

// appendCredentials adds credential rows to a details table. Values are
// masked unless show is set.
func appendCredentials(table *tablewriter.Table, creds *rc.Credentials, show bool) {
	if creds == nil {
		return
	}

	render := func(value string) string {
		if !show {
			return constants.MaskedSecret
		}

		return truncate(value)
	}

	declared := map[string]*string{
		"apikey":                 creds.APIKey,
		"iam_apikey_description": creds.IAMAPIKeyDescription,
		"iam_apikey_name":        creds.IAMAPIKeyName,
		"iam_role_crn":           creds.IAMRoleCRN,
		"iam_serviceid_crn":      creds.IAMServiceIDCRN,
	}

	names := make([]string, 0, len(declared)+len(creds.Extra))
	for name, value := range declared {
		if value != nil {
			names = append(names, name)
		}
	}

	for name := range creds.Extra {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		if value, ok := declared[name]; ok && value != nil {
			_ = table.Append("Credential: "+name, render(*value))

			continue
		}

		_ = table.Append("Credential: "+name, render(fmt.Sprintf("%v", creds.Extra[name])))
	}
}

// truncate shortens long cell values so tables stay readable.
func truncate(value string) string {
	if len(value) > constants.StringTruncationLength {
		return value[:constants.StringTruncationLength-3] + "..."
	}

	return value
}
