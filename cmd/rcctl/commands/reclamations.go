package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/rcontrol-io/rc-client/pkg/rc"
	"github.com/spf13/cobra"
)

// NewReclamationsCommand creates the reclamations command group.
func NewReclamationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reclamations",
		Aliases: []string{"reclamation"},
		Short:   "Manage reclamations",
		Long:    "List pending reclamations and restore or permanently reclaim deleted instances",
	}

	cmd.AddCommand(newReclamationsListCommand())
	cmd.AddCommand(newReclamationsRestoreCommand())
	cmd.AddCommand(newReclamationsReclaimCommand())

	return cmd
}

func newReclamationsListCommand() *cobra.Command {
	opts := &rc.ListReclamationsOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reclamations",
		Long:  "List reclamations in the account, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			list, err := client.Reclamations().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list reclamations: %w", err)
			}

			return renderOutput(list, func() error {
				return renderReclamationsTable(list)
			})
		},
	}

	cmd.Flags().StringVar(&opts.AccountID, "account", "", "filter by account ID")
	cmd.Flags().StringVar(&opts.ResourceInstanceID, "instance", "", "filter by resource instance ID")

	return cmd
}

func renderReclamationsTable(list *rc.ReclamationsList) error {
	if len(list.Resources) == 0 {
		_, _ = os.Stdout.WriteString("No reclamations found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Instance", "State", "Target Time", "Updated")

	for _, reclamation := range list.Resources {
		_ = table.Append(
			strValue(reclamation.ID),
			strValue(reclamation.ResourceInstanceID),
			strValue(reclamation.State),
			strValue(reclamation.TargetTime),
			timeValue(reclamation.UpdatedAt),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newReclamationsRestoreCommand() *cobra.Command {
	var (
		requestBy string
		comment   string
	)

	cmd := &cobra.Command{
		Use:   "restore RECLAMATION_ID",
		Short: "Restore a reclaimed instance",
		Long:  "Bring an instance scheduled for reclamation back into service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReclamationAction(args[0], "restore", requestBy, comment)
		},
	}

	cmd.Flags().StringVar(&requestBy, "request-by", "", "who requested the action")
	cmd.Flags().StringVar(&comment, "comment", "", "comment recorded with the action")

	return cmd
}

func newReclamationsReclaimCommand() *cobra.Command {
	var (
		requestBy string
		comment   string
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "reclaim RECLAMATION_ID",
		Short: "Permanently reclaim an instance",
		Long:  "Delete a reclaimed instance for good, ahead of its scheduled target time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Reclaiming '%s' deletes the instance permanently. Continue? (y/N): ", args[0])

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					_, _ = os.Stdout.WriteString("Cancelled\n")

					return nil
				}
			}

			return runReclamationAction(args[0], "reclaim", requestBy, comment)
		},
	}

	cmd.Flags().StringVar(&requestBy, "request-by", "", "who requested the action")
	cmd.Flags().StringVar(&comment, "comment", "", "comment recorded with the action")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func runReclamationAction(reclamationID, actionName, requestBy, comment string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	var request *rc.RunReclamationActionRequest
	if requestBy != "" || comment != "" {
		request = &rc.RunReclamationActionRequest{}
		if requestBy != "" {
			request.RequestBy = rc.StringPtr(requestBy)
		}

		if comment != "" {
			request.Comment = rc.StringPtr(comment)
		}
	}

	reclamation, err := client.Reclamations().RunAction(context.Background(), reclamationID, actionName, request)
	if err != nil {
		return fmt.Errorf("failed to %s reclamation '%s': %w", actionName, reclamationID, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Reclamation '%s' is now %s\n", strValue(reclamation.ID), strValue(reclamation.State))

	return nil
}
