package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cruisebase/cruisebase/internal/api"
	"github.com/cruisebase/cruisebase/internal/session"
)

// NewContractCmd creates the contract command group
func NewContractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Manage hire-purchase contracts",
	}

	cmd.AddCommand(newContractCreateCmd())

	return cmd
}

func newContractCreateCmd() *cobra.Command {
	var req api.CreateContractRequest
	var driverSearch string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a hire-purchase contract (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, store, err := newClient()
			if err != nil {
				return err
			}
			user, err := requireUser(client, store)
			if err != nil {
				return err
			}

			// Fail fast locally; the backend enforces this too.
			if user.Role != session.RoleAdmin && user.Role != session.RoleSuperAdmin {
				return fmt.Errorf("contract creation requires an admin account")
			}

			ctx := context.Background()

			if req.DriverID == "" && driverSearch != "" {
				driver, err := client.SearchUser(ctx, driverSearch)
				if err != nil {
					return fmt.Errorf("driver lookup failed: %w", err)
				}
				req.DriverID = driver.ID
				fmt.Printf("Driver: %s %s (%s)\n", driver.FirstName, driver.LastName, driver.Email)
			}

			if err := client.CreateContract(ctx, req); err != nil {
				return fmt.Errorf("failed to create contract: %w", err)
			}

			fmt.Printf("✓ Contract created on vehicle %s.\n", req.VehicleID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.VehicleID, "vehicle", "", "Vehicle ID")
	cmd.Flags().StringVar(&req.DriverID, "driver", "", "Driver user ID")
	cmd.Flags().StringVar(&driverSearch, "driver-search", "", "Find the driver by name or email instead of ID")
	cmd.Flags().StringVar(&req.ContractType, "type", "HirePurchase", "Contract type")
	cmd.Flags().IntVar(&req.Tenure, "tenure", 0, "Tenure in payment periods")
	cmd.Flags().Float64Var(&req.PaymentAmount, "payment", 0, "Payment amount per period")
	cmd.Flags().StringVar(&req.PaymentFrequency, "frequency", "Weekly", "Payment frequency: Daily, Weekly or Monthly")
	cmd.Flags().StringVar(&req.StartDate, "start", "", "Start date (YYYY-MM-DD)")

	return cmd
}
