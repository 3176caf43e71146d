// Login command for the tix CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tix/pkg/types"
)

var (
	loginUsername   string
	loginPassword   string
	loginRememberMe bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify credentials against the stored account",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "login:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		// remember-me is accepted for compatibility with the request shape
		// but has no effect: no session is created.
		user, err := backend.Authenticate(loginUsername, loginPassword)
		if err != nil {
			if errors.Is(err, types.ErrInvalidCredentials) {
				fmt.Fprintln(os.Stderr, "login: invalid credentials")
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "login:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			if err := printJSON(user); err != nil {
				fmt.Fprintln(os.Stderr, "login:", err)
				os.Exit(exitSysError)
			}
		} else {
			fmt.Printf("Logged in as %s\n", user.Username)
		}

		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "account username (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (required)")
	loginCmd.Flags().BoolVar(&loginRememberMe, "remember-me", false, "remember this login (accepted, currently no effect)")

	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")
}
