// Show command for the tix CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tix/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single ticket by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticketID := args[0]

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		ticket, err := backend.GetTicket(ticketID)
		if err != nil {
			if errors.Is(err, types.ErrTicketNotFound) {
				fmt.Fprintf(os.Stderr, "ticket %q not found\n", ticketID)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "get ticket:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			if err := printJSON(ticket); err != nil {
				fmt.Fprintln(os.Stderr, "show:", err)
				os.Exit(exitSysError)
			}
		} else {
			printTicket(ticket)
		}

		return nil
	},
}
