package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/rcontrol-io/rc-client/pkg/rc"
	"github.com/spf13/cobra"
)

// NewAliasesCommand creates the aliases command group.
func NewAliasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "aliases",
		Aliases: []string{"alias"},
		Short:   "Manage resource aliases",
		Long:    "Create, inspect, rename, and delete resource aliases",
	}

	cmd.AddCommand(newAliasesListCommand())
	cmd.AddCommand(newAliasesGetCommand())
	cmd.AddCommand(newAliasesCreateCommand())
	cmd.AddCommand(newAliasesUpdateCommand())
	cmd.AddCommand(newAliasesDeleteCommand())

	return cmd
}

func newAliasesListCommand() *cobra.Command {
	opts := &rc.ListResourceAliasesOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resource aliases",
		Long:  "List resource aliases in the account, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			list, err := client.ResourceAliases().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list resource aliases: %w", err)
			}

			return renderOutput(list, func() error {
				return renderAliasesTable(list)
			})
		},
	}

	cmd.Flags().StringVar(&opts.GUID, "guid", "", "filter by GUID")
	cmd.Flags().StringVar(&opts.Name, "name", "", "filter by name")
	cmd.Flags().StringVar(&opts.ResourceInstanceID, "instance", "", "filter by resource instance ID")
	cmd.Flags().StringVar(&opts.RegionInstanceID, "region-instance-id", "", "filter by region instance ID")
	cmd.Flags().StringVar(&opts.ResourceID, "resource-id", "", "filter by resource (offering) ID")
	cmd.Flags().StringVar(&opts.ResourceGroupID, "resource-group", "", "filter by resource group ID")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum results per page")
	cmd.Flags().StringVar(&opts.UpdatedFrom, "updated-from", "", "only aliases updated after this date")
	cmd.Flags().StringVar(&opts.UpdatedTo, "updated-to", "", "only aliases updated before this date")

	return cmd
}

func renderAliasesTable(list *rc.ResourceAliasesList) error {
	if len(list.Resources) == 0 {
		_, _ = os.Stdout.WriteString("No resource aliases found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "State", "Instance", "Target")

	for _, alias := range list.Resources {
		_ = table.Append(
			strValue(alias.ID),
			strValue(alias.Name),
			strValue(alias.State),
			strValue(alias.ResourceInstanceID),
			truncate(strValue(alias.TargetCRN)),
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

func newAliasesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ALIAS_ID",
		Short: "Get resource alias details",
		Long:  "Display detailed information about a resource alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			aliasID := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			alias, err := client.ResourceAliases().Get(context.Background(), aliasID)
			if err != nil {
				return fmt.Errorf("failed to get resource alias '%s': %w", aliasID, err)
			}

			return renderOutput(alias, func() error {
				return renderAliasDetails(alias)
			})
		},
	}
}

func renderAliasDetails(alias *rc.ResourceAlias) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", strValue(alias.ID))
	_ = table.Append("Name", strValue(alias.Name))
	_ = table.Append("State", strValue(alias.State))
	_ = table.Append("CRN", truncate(strValue(alias.CRN)))
	_ = table.Append("Instance", strValue(alias.ResourceInstanceID))
	_ = table.Append("Target", truncate(strValue(alias.TargetCRN)))
	_ = table.Append("Created", timeValue(alias.CreatedAt))
	_ = table.Append("Updated", timeValue(alias.UpdatedAt))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newAliasesCreateCommand() *cobra.Command {
	var (
		name   string
		source string
		target string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a resource alias",
		Long:  "Alias a resource instance into a target namespace",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			alias, err := client.ResourceAliases().Create(context.Background(), &rc.CreateResourceAliasRequest{
				Name:   name,
				Source: source,
				Target: target,
			})
			if err != nil {
				return fmt.Errorf("failed to create resource alias: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created resource alias '%s' with ID %s\n",
				strValue(alias.Name), strValue(alias.ID))

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "alias name (required)")
	cmd.Flags().StringVar(&source, "source", "", "instance ID to alias (required)")
	cmd.Flags().StringVar(&target, "target", "", "CRN of the namespace to alias into (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newAliasesUpdateCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "update ALIAS_ID",
		Short: "Rename a resource alias",
		Long:  "Change the name of a resource alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			aliasID := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			alias, err := client.ResourceAliases().Update(context.Background(), aliasID, &rc.UpdateResourceAliasRequest{Name: name})
			if err != nil {
				return fmt.Errorf("failed to update resource alias '%s': %w", aliasID, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully renamed resource alias to '%s'\n", strValue(alias.Name))

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new alias name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newAliasesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ALIAS_ID",
		Short: "Delete a resource alias",
		Long:  "Delete a resource alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			aliasID := args[0]

			if !force && !confirmDeletion("resource alias", aliasID) {
				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.ResourceAliases().Delete(context.Background(), aliasID)
			if err != nil {
				return fmt.Errorf("failed to delete resource alias '%s': %w", aliasID, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted resource alias '%s'\n", aliasID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
