// Update command for the tix CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tix/pkg/types"
)

var (
	updateStatus      string
	updateAssignee    string
	updateCategory    string
	updateTitle       string
	updateDescription string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update ticket fields",
	Long:  "Apply a partial update to a ticket. Only the fields named by flags change; everything else keeps its value.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticketID := args[0]

		// A flag that was passed counts as present even when its value is
		// empty, so a field can be cleared explicitly.
		var patch types.TicketPatch
		if cmd.Flags().Changed("status") {
			patch.Status = &updateStatus
		}
		if cmd.Flags().Changed("assignee") {
			patch.Assignee = &updateAssignee
		}
		if cmd.Flags().Changed("category") {
			patch.Category = &updateCategory
		}
		if cmd.Flags().Changed("title") {
			patch.Title = &updateTitle
		}
		if cmd.Flags().Changed("description") {
			patch.Description = &updateDescription
		}

		if patch.IsZero() {
			fmt.Fprintln(os.Stderr, "update: at least one field flag must be provided")
			os.Exit(exitUserError)
		}

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "update:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		ticket, err := backend.UpdateTicket(ticketID, patch)
		if err != nil {
			switch {
			case errors.Is(err, types.ErrTicketNotFound):
				fmt.Fprintf(os.Stderr, "ticket %q not found\n", ticketID)
				os.Exit(exitUserError)
			case errors.Is(err, types.ErrNoFields):
				fmt.Fprintln(os.Stderr, "update: no fields to update")
				os.Exit(exitUserError)
			default:
				fmt.Fprintln(os.Stderr, "update ticket:", err)
				os.Exit(exitSysError)
			}
		}

		if flagJSON {
			if err := printJSON(ticket); err != nil {
				fmt.Fprintln(os.Stderr, "update:", err)
				os.Exit(exitSysError)
			}
		} else {
			fmt.Printf("Updated %s\n", ticketID)
		}

		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "set ticket status (conventionally Open, In Progress, Closed)")
	updateCmd.Flags().StringVar(&updateAssignee, "assignee", "", "set assigned user")
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "set ticket category")
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "set ticket title")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "set ticket description")
}
