package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cruisebase/cruisebase/internal/api"
)

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var req api.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Sign up as an Owner or Driver",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				password, err := promptSecret("Password")
				if err != nil {
					return err
				}
				req.Password = password
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}

			if err := client.Register(context.Background(), req); err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			fmt.Println("✓ Account created. Log in with: cruisebase login")
			return nil
		},
	}

	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&req.Username, "username", "", "Username")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "Phone number")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (will prompt if not provided)")
	cmd.Flags().StringVar(&req.Role, "role", "Driver", "Account role: Owner or Driver")

	return cmd
}
