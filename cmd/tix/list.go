// List command for the tix CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tickets, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		tickets, err := backend.ListTickets()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list tickets:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			if err := printJSON(tickets); err != nil {
				fmt.Fprintln(os.Stderr, "list:", err)
				os.Exit(exitSysError)
			}
			return nil
		}

		if len(tickets) == 0 {
			fmt.Println("No tickets")
			return nil
		}
		for _, t := range tickets {
			fmt.Printf("%s  [%s]  %s: %s\n", t.ID, t.Status, t.Category, t.Title)
		}

		return nil
	},
}
