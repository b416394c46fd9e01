package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/rcontrol-io/rc-client/pkg/rc"
	"github.com/spf13/cobra"
)

// NewKeysCommand creates the keys command group.
func NewKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keys",
		Aliases: []string{"key"},
		Short:   "Manage resource keys",
		Long:    "Create, inspect, rename, and delete resource keys",
	}

	cmd.AddCommand(newKeysListCommand())
	cmd.AddCommand(newKeysGetCommand())
	cmd.AddCommand(newKeysCreateCommand())
	cmd.AddCommand(newKeysUpdateCommand())
	cmd.AddCommand(newKeysDeleteCommand())

	return cmd
}

func newKeysListCommand() *cobra.Command {
	opts := &rc.ListResourceKeysOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resource keys",
		Long:  "List resource keys in the account, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			list, err := client.ResourceKeys().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list resource keys: %w", err)
			}

			return renderOutput(list, func() error {
				return renderKeysTable(list)
			})
		},
	}

	cmd.Flags().StringVar(&opts.GUID, "guid", "", "filter by GUID")
	cmd.Flags().StringVar(&opts.Name, "name", "", "filter by name")
	cmd.Flags().StringVar(&opts.ResourceGroupID, "resource-group", "", "filter by resource group ID")
	cmd.Flags().StringVar(&opts.ResourceID, "resource-id", "", "filter by resource (offering) ID")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum results per page")
	cmd.Flags().StringVar(&opts.UpdatedFrom, "updated-from", "", "only keys updated after this date")
	cmd.Flags().StringVar(&opts.UpdatedTo, "updated-to", "", "only keys updated before this date")

	return cmd
}

func renderKeysTable(list *rc.ResourceKeysList) error {
	if len(list.Resources) == 0 {
		_, _ = os.Stdout.WriteString("No resource keys found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "State", "Source", "Created")

	for _, key := range list.Resources {
		_ = table.Append(
			strValue(key.ID),
			strValue(key.Name),
			strValue(key.State),
			truncate(strValue(key.SourceCRN)),
			timeValue(key.CreatedAt),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if list.HasNext() {
		_, _ = fmt.Fprintf(os.Stdout, "\nMore results available. Next page: %s\n", list.NextURL)
	}

	return nil
}

func newKeysGetCommand() *cobra.Command {
	var showCredentials bool

	cmd := &cobra.Command{
		Use:   "get KEY_ID",
		Short: "Get resource key details",
		Long:  "Display detailed information about a resource key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyID := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			key, err := client.ResourceKeys().Get(context.Background(), keyID)
			if err != nil {
				return fmt.Errorf("failed to get resource key '%s': %w", keyID, err)
			}

			return renderOutput(key, func() error {
				return renderKeyDetails(key, showCredentials)
			})
		},
	}

	cmd.Flags().BoolVar(&showCredentials, "show-credentials", false, "print credential values instead of masking them")

	return cmd
}

func renderKeyDetails(key *rc.ResourceKey, showCredentials bool) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", strValue(key.ID))
	_ = table.Append("Name", strValue(key.Name))
	_ = table.Append("State", strValue(key.State))
	_ = table.Append("Source", truncate(strValue(key.SourceCRN)))
	_ = table.Append("IAM Compatible", boolValue(key.IAMCompatible))
	_ = table.Append("Created", timeValue(key.CreatedAt))
	_ = table.Append("Updated", timeValue(key.UpdatedAt))

	appendCredentials(table, key.Credentials, showCredentials)

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newKeysCreateCommand() *cobra.Command {
	var (
		name         string
		source       string
		role         string
		serviceIDCRN string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a resource key",
		Long:  "Create a new resource key against an instance or alias",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &rc.CreateResourceKeyRequest{
				Name:   name,
				Source: source,
			}
			if role != "" {
				request.Role = rc.StringPtr(role)
			}

			if serviceIDCRN != "" {
				request.Parameters = &rc.ResourceKeyPostParameters{
					ServiceIDCRN: rc.StringPtr(serviceIDCRN),
				}
			}

			key, err := client.ResourceKeys().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create resource key: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created resource key '%s' with ID %s\n",
				strValue(key.Name), strValue(key.ID))

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "key name (required)")
	cmd.Flags().StringVar(&source, "source", "", "instance or alias ID the key is created against (required)")
	cmd.Flags().StringVar(&role, "role", "", "access role for the key")
	cmd.Flags().StringVar(&serviceIDCRN, "serviceid-crn", "", "service ID CRN to create the key with")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func newKeysUpdateCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "update KEY_ID",
		Short: "Rename a resource key",
		Long:  "Change the name of a resource key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyID := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			key, err := client.ResourceKeys().Update(context.Background(), keyID, &rc.UpdateResourceKeyRequest{Name: name})
			if err != nil {
				return fmt.Errorf("failed to update resource key '%s': %w", keyID, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully renamed resource key to '%s'\n", strValue(key.Name))

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new key name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newKeysDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete KEY_ID",
		Short: "Delete a resource key",
		Long:  "Delete a resource key and revoke its credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyID := args[0]

			if !force && !confirmDeletion("resource key", keyID) {
				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.ResourceKeys().Delete(context.Background(), keyID)
			if err != nil {
				return fmt.Errorf("failed to delete resource key '%s': %w", keyID, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted resource key '%s'\n", keyID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
