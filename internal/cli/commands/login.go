package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the CruiseBase platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set CRUISEBASE_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set CRUISEBASE_PASSWORD, will prompt if not provided)")

	return cmd
}

func runLogin(email, password string) error {
	// Check for environment variables (useful for CI/CD)
	if email == "" {
		email = os.Getenv("CRUISEBASE_EMAIL")
	}
	if password == "" {
		password = os.Getenv("CRUISEBASE_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or CRUISEBASE_EMAIL env var)")
	}

	if password == "" {
		secret, err := promptSecret("Password")
		if err != nil {
			return err
		}
		password = secret
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	user, err := client.BootstrapSession(context.Background(), email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Println("✓ Login successful!")
	fmt.Printf("  User: %s (%s)\n", user.FullName, user.Email)
	fmt.Printf("  Role: %s\n", user.Role)

	return nil
}
