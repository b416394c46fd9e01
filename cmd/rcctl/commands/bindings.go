package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/rcontrol-io/rc-client/pkg/rc"
	"github.com/spf13/cobra"
)

// NewBindingsCommand creates the bindings command group.
func NewBindingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bindings",
		Aliases: []string{"binding"},
		Short:   "Manage resource bindings",
		Long:    "Create, inspect, rename, and delete resource bindings",
	}

	cmd.AddCommand(newBindingsListCommand())
	cmd.AddCommand(newBindingsGetCommand())
	cmd.AddCommand(newBindingsCreateCommand())
	cmd.AddCommand(newBindingsUpdateCommand())
	cmd.AddCommand(newBindingsDeleteCommand())

	return cmd
}

func newBindingsListCommand() *cobra.Command {
	opts := &rc.ListResourceBindingsOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resource bindings",
		Long:  "List resource bindings in the account, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			list, err := client.ResourceBindings().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list resource bindings: %w", err)
			}

			return renderOutput(list, func() error {
				return renderBindingsTable(list)
			})
		},
	}

	cmd.Flags().StringVar(&opts.GUID, "guid", "", "filter by GUID")
	cmd.Flags().StringVar(&opts.Name, "name", "", "filter by name")
	cmd.Flags().StringVar(&opts.ResourceGroupID, "resource-group", "", "filter by resource group ID")
	cmd.Flags().StringVar(&opts.ResourceID, "resource-id", "", "filter by resource (offering) ID")
	cmd.Flags().StringVar(&opts.RegionBindingID, "region-binding-id", "", "filter by region binding ID")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum results per page")
	cmd.Flags().StringVar(&opts.UpdatedFrom, "updated-from", "", "only bindings updated after this date")
	cmd.Flags().StringVar(&opts.UpdatedTo, "updated-to", "", "only bindings updated before this date")

	return cmd
}

func renderBindingsTable(list *rc.ResourceBindingsList) error {
	if len(list.Resources) == 0 {
		_, _ = os.Stdout.WriteString("No resource bindings found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "State", "Source", "Target")

	for _, binding := range list.Resources {
		_ = table.Append(
			strValue(binding.ID),
			strValue(binding.Name),
			strValue(binding.State),
			truncate(strValue(binding.SourceCRN)),
			truncate(strValue(binding.TargetCRN)),
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

func newBindingsGetCommand() *cobra.Command {
	var showCredentials bool

	cmd := &cobra.Command{
		Use:   "get BINDING_ID",
		Short: "Get resource binding details",
		Long:  "Display detailed information about a resource binding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bindingID := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			binding, err := client.ResourceBindings().Get(context.Background(), bindingID)
			if err != nil {
				return fmt.Errorf("failed to get resource binding '%s': %w", bindingID, err)
			}

			return renderOutput(binding, func() error {
				return renderBindingDetails(binding, showCredentials)
			})
		},
	}

	cmd.Flags().BoolVar(&showCredentials, "show-credentials", false, "print credential values instead of masking them")

	return cmd
}

func renderBindingDetails(binding *rc.ResourceBinding, showCredentials bool) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", strValue(binding.ID))
	_ = table.Append("Name", strValue(binding.Name))
	_ = table.Append("State", strValue(binding.State))
	_ = table.Append("Source", truncate(strValue(binding.SourceCRN)))
	_ = table.Append("Target", truncate(strValue(binding.TargetCRN)))
	_ = table.Append("IAM Compatible", boolValue(binding.IAMCompatible))
	_ = table.Append("Created", timeValue(binding.CreatedAt))
	_ = table.Append("Updated", timeValue(binding.UpdatedAt))

	appendCredentials(table, binding.Credentials, showCredentials)

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newBindingsCreateCommand() *cobra.Command {
	var (
		source       string
		target       string
		name         string
		role         string
		serviceIDCRN string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a resource binding",
		Long:  "Bind a resource alias to an application target",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &rc.CreateResourceBindingRequest{
				Source: source,
				Target: target,
			}
			if name != "" {
				request.Name = rc.StringPtr(name)
			}

			if role != "" {
				request.Role = rc.StringPtr(role)
			}

			if serviceIDCRN != "" {
				request.Parameters = &rc.ResourceBindingPostParameters{
					ServiceIDCRN: rc.StringPtr(serviceIDCRN),
				}
			}

			binding, err := client.ResourceBindings().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create resource binding: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created resource binding with ID %s\n", strValue(binding.ID))

			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "alias ID to bind (required)")
	cmd.Flags().StringVar(&target, "target", "", "CRN of the application to bind to (required)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "binding name")
	cmd.Flags().StringVar(&role, "role", "", "access role for the binding")
	cmd.Flags().StringVar(&serviceIDCRN, "serviceid-crn", "", "service ID CRN to create the binding with")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newBindingsUpdateCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "update BINDING_ID",
		Short: "Rename a resource binding",
		Long:  "Change the name of a resource binding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bindingID := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			binding, err := client.ResourceBindings().Update(context.Background(), bindingID, &rc.UpdateResourceBindingRequest{Name: name})
			if err != nil {
				return fmt.Errorf("failed to update resource binding '%s': %w", bindingID, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully renamed resource binding to '%s'\n", strValue(binding.Name))

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new binding name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newBindingsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete BINDING_ID",
		Short: "Delete a resource binding",
		Long:  "Delete a resource binding and revoke its credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bindingID := args[0]

			if !force && !confirmDeletion("resource binding", bindingID) {
				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.ResourceBindings().Delete(context.Background(), bindingID)
			if err != nil {
				return fmt.Errorf("failed to delete resource binding '%s': %w", bindingID, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted resource binding '%s'\n", bindingID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
