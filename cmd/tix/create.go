// Create command for the tix CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	createCategory    string
	createTitle       string
	createDescription string
	createAssignee    string
	createReporter    string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new ticket",
	Long:  "Create a new ticket. New tickets always start in status Open.",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		ticket, err := backend.CreateTicket(
			createCategory, createTitle, createDescription,
			createAssignee, createReporter,
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, "create ticket:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			if err := printJSON(ticket); err != nil {
				fmt.Fprintln(os.Stderr, "create:", err)
				os.Exit(exitSysError)
			}
		} else {
			fmt.Printf("Created ticket: %s\n", ticket.ID)
		}

		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createCategory, "category", "", "ticket category (e.g. Bug, Feature)")
	createCmd.Flags().StringVar(&createTitle, "title", "", "ticket title (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "ticket description")
	createCmd.Flags().StringVar(&createAssignee, "assignee", "", "assigned user")
	createCmd.Flags().StringVar(&createReporter, "reporter", "", "reporting user")

	createCmd.MarkFlagRequired("title")
}
