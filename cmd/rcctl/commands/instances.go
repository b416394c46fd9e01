package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/rcontrol-io/rc-client/pkg/rc"
	"github.com/spf13/cobra"
)

// NewInstancesCommand creates the instances command group.
func NewInstancesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "instances",
		Aliases: []string{"instance", "in"},
		Short:   "Manage resource instances",
		Long:    "Provision, inspect, update, lock, and delete resource instances",
	}

	cmd.AddCommand(newInstancesListCommand())
	cmd.AddCommand(newInstancesGetCommand())
	cmd.AddCommand(newInstancesCreateCommand())
	cmd.AddCommand(newInstancesUpdateCommand())
	cmd.AddCommand(newInstancesDeleteCommand())
	cmd.AddCommand(newInstancesLockCommand())
	cmd.AddCommand(newInstancesUnlockCommand())

	return cmd
}

func newInstancesListCommand() *cobra.Command {
	opts := &rc.ListResourceInstancesOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resource instances",
		Long:  "List resource instances in the account, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			list, err := client.ResourceInstances().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list resource instances: %w", err)
			}

			return renderOutput(list, func() error {
				return renderInstancesTable(list)
			})
		},
	}

	cmd.Flags().StringVar(&opts.GUID, "guid", "", "filter by GUID")
	cmd.Flags().StringVar(&opts.Name, "name", "", "filter by name")
	cmd.Flags().StringVar(&opts.ResourceGroupID, "resource-group", "", "filter by resource group ID")
	cmd.Flags().StringVar(&opts.ResourceID, "resource-id", "", "filter by resource (offering) ID")
	cmd.Flags().StringVar(&opts.ResourcePlanID, "plan", "", "filter by resource plan ID")
	cmd.Flags().StringVar(&opts.Type, "type", "", "filter by type")
	cmd.Flags().StringVar(&opts.SubType, "sub-type", "", "filter by sub-type")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum results per page")
	cmd.Flags().StringVar(&opts.UpdatedFrom, "updated-from", "", "only instances updated after this date")
	cmd.Flags().StringVar(&opts.UpdatedTo, "updated-to", "", "only instances updated before this date")

	return cmd
}

func renderInstancesTable(list *rc.ResourceInstancesList) error {
	if len(list.Resources) == 0 {
		_, _ = os.Stdout.WriteString("No resource instances found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "State", "Plan", "Locked", "Updated")

	for _, instance := range list.Resources {
		_ = table.Append(
			strValue(instance.ID),
			strValue(instance.Name),
			strValue(instance.State),
			strValue(instance.ResourcePlanID),
			boolValue(instance.Locked),
			timeValue(instance.UpdatedAt),
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

func newInstancesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INSTANCE_ID",
		Short: "Get resource instance details",
		Long:  "Display detailed information about a resource instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instanceID := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			instance, err := client.ResourceInstances().Get(context.Background(), instanceID)
			if err != nil {
				return fmt.Errorf("failed to get resource instance '%s': %w", instanceID, err)
			}

			return renderOutput(instance, func() error {
				return renderInstanceDetails(instance)
			})
		},
	}
}

func renderInstanceDetails(instance *rc.ResourceInstance) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", strValue(instance.ID))
	_ = table.Append("Name", strValue(instance.Name))
	_ = table.Append("State", strValue(instance.State))
	_ = table.Append("CRN", truncate(strValue(instance.CRN)))
	_ = table.Append("Resource Group", strValue(instance.ResourceGroupID))
	_ = table.Append("Plan", strValue(instance.ResourcePlanID))
	_ = table.Append("Target", strValue(instance.TargetCRN))
	_ = table.Append("Locked", boolValue(instance.Locked))
	_ = table.Append("Allow Cleanup", boolValue(instance.AllowCleanup))
	_ = table.Append("Created", timeValue(instance.CreatedAt))
	_ = table.Append("Updated", timeValue(instance.UpdatedAt))

	if instance.DashboardURL != nil && *instance.DashboardURL != "" {
		_ = table.Append("Dashboard", truncate(*instance.DashboardURL))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// InstancesCreateOptions holds the flags for creating an instance.
type InstancesCreateOptions struct {
	Name           string
	Target         string
	ResourceGroup  string
	ResourcePlanID string
	Tags           []string
	ParametersJSON string
	AllowCleanup   bool
	Lock           bool
}

func newInstancesCreateCommand() *cobra.Command {
	var opts InstancesCreateOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Provision a resource instance",
		Long:  "Provision a new resource instance in the targeted resource group",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstancesCreateCommand(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "instance name (required)")
	cmd.Flags().StringVar(&opts.Target, "target", "", "deployment target, e.g. a region (required)")
	cmd.Flags().StringVar(&opts.ResourceGroup, "resource-group", "", "resource group ID (required)")
	cmd.Flags().StringVar(&opts.ResourcePlanID, "plan", "", "resource plan ID (required)")
	cmd.Flags().StringSliceVar(&opts.Tags, "tags", nil, "tags to attach")
	cmd.Flags().StringVar(&opts.ParametersJSON, "parameters", "", "provisioning parameters as JSON")
	cmd.Flags().BoolVar(&opts.AllowCleanup, "allow-cleanup", false, "allow the platform to reclaim the instance")
	cmd.Flags().BoolVar(&opts.Lock, "lock", false, "create the instance locked against updates and deletion")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("resource-group")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func runInstancesCreateCommand(cmd *cobra.Command, opts InstancesCreateOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	request := &rc.CreateResourceInstanceRequest{
		Name:           opts.Name,
		Target:         opts.Target,
		ResourceGroup:  opts.ResourceGroup,
		ResourcePlanID: opts.ResourcePlanID,
		Tags:           opts.Tags,
		EntityLock:     opts.Lock,
	}

	if cmd.Flags().Changed("allow-cleanup") {
		request.AllowCleanup = rc.BoolPtr(opts.AllowCleanup)
	}

	if opts.ParametersJSON != "" {
		err := json.Unmarshal([]byte(opts.ParametersJSON), &request.Parameters)
		if err != nil {
			return fmt.Errorf("invalid --parameters JSON: %w", err)
		}
	}

	instance, err := client.ResourceInstances().Create(context.Background(), request)
	if err != nil {
		return fmt.Errorf("failed to create resource instance: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully created resource instance '%s' with ID %s\n",
		strValue(instance.Name), strValue(instance.ID))

	return nil
}

func newInstancesUpdateCommand() *cobra.Command {
	var (
		name           string
		plan           string
		parametersJSON string
		allowCleanup   bool
	)

	cmd := &cobra.Command{
		Use:   "update INSTANCE_ID",
		Short: "Update a resource instance",
		Long:  "Update the name, plan, or parameters of a resource instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instanceID := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &rc.UpdateResourceInstanceRequest{}
			if name != "" {
				request.Name = rc.StringPtr(name)
			}

			if plan != "" {
				request.ResourcePlanID = rc.StringPtr(plan)
			}

			if cmd.Flags().Changed("allow-cleanup") {
				request.AllowCleanup = rc.BoolPtr(allowCleanup)
			}

			if parametersJSON != "" {
				err := json.Unmarshal([]byte(parametersJSON), &request.Parameters)
				if err != nil {
					return fmt.Errorf("invalid --parameters JSON: %w", err)
				}
			}

			instance, err := client.ResourceInstances().Update(context.Background(), instanceID, request)
			if err != nil {
				return fmt.Errorf("failed to update resource instance '%s': %w", instanceID, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully updated resource instance '%s'\n", strValue(instance.Name))

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new instance name")
	cmd.Flags().StringVar(&plan, "plan", "", "new resource plan ID")
	cmd.Flags().StringVar(&parametersJSON, "parameters", "", "new parameters as JSON")
	cmd.Flags().BoolVar(&allowCleanup, "allow-cleanup", false, "allow the platform to reclaim the instance")

	return cmd
}

func newInstancesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete INSTANCE_ID",
		Short: "Delete a resource instance",
		Long:  "Deprovision a resource instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instanceID := args[0]

			if !force && !confirmDeletion("resource instance", instanceID) {
				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.ResourceInstances().Delete(context.Background(), instanceID)
			if err != nil {
				return fmt.Errorf("failed to delete resource instance '%s': %w", instanceID, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted resource instance '%s'\n", instanceID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func confirmDeletion(entityType, id string) bool {
	_, _ = fmt.Fprintf(os.Stdout, "Really delete %s '%s'? (y/N): ", entityType, id)

	var response string

	_, _ = fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		_, _ = os.Stdout.WriteString("Cancelled\n")

		return false
	}

	return true
}

func newInstancesLockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lock INSTANCE_ID",
		Short: "Lock a resource instance",
		Long:  "Lock a resource instance against updates and deletion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instanceID := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			instance, err := client.ResourceInstances().Lock(context.Background(), instanceID)
			if err != nil {
				return fmt.Errorf("failed to lock resource instance '%s': %w", instanceID, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully locked resource instance '%s'\n", strValue(instance.Name))

			return nil
		},
	}
}

func newInstancesUnlockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock INSTANCE_ID",
		Short: "Unlock a resource instance",
		Long:  "Remove the update and deletion lock from a resource instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instanceID := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			instance, err := client.ResourceInstances().Unlock(context.Background(), instanceID)
			if err != nil {
				return fmt.Errorf("failed to unlock resource instance '%s': %w", instanceID, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully unlocked resource instance '%s'\n", strValue(instance.Name))

			return nil
		},
	}
}
