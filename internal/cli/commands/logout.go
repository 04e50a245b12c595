package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cruisebase/cruisebase/internal/session"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := session.NewStore(session.DefaultBackend())
			store.Logout()
			fmt.Println("✓ Logged out.")
			return nil
		},
	}
}
