package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, store, err := newClient()
			if err != nil {
				return err
			}

			user, err := requireUser(client, store)
			if err != nil {
				return err
			}

			fmt.Printf("%s (%s)\n", user.FullName, user.Email)
			fmt.Printf("Role: %s\n", user.Role)
			return nil
		},
	}
}
