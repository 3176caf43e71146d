// Init command for the tix CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize tix storage",
	Long:  "Create configuration and data directories, create the schema, and seed the default account and sample tickets.",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := backend.Detach(); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Tix storage initialized successfully")
		return nil
	},
}
