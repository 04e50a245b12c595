package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cruisebase/cruisebase/internal/api"
	"github.com/cruisebase/cruisebase/internal/session"
)

// NewFleetCmd creates the fleet command group
func NewFleetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fleet",
		Short: "Manage vehicles",
	}

	cmd.AddCommand(newFleetListCmd())
	cmd.AddCommand(newFleetAddCmd())
	cmd.AddCommand(newFleetProgressCmd())

	return cmd
}

func newFleetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List your vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, store, err := newClient()
			if err != nil {
				return err
			}
			if _, err := requireUser(client, store); err != nil {
				return err
			}

			vehicles, err := client.Vehicles(context.Background())
			if err != nil {
				return err
			}

			if len(vehicles) == 0 {
				fmt.Println("No vehicles found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPLATE\tCOLOR\tACTIVE\tCONTRACT")
			fmt.Fprintln(w, "──\t────\t─────\t─────\t──────\t────────")
			for _, v := range vehicles {
				contract := v.ContractType
				if contract == "" {
					contract = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%s\n",
					v.ID, v.Name, v.PlateNumber, v.Color, v.IsActive, contract)
			}
			w.Flush()

			return nil
		},
	}
}

func newFleetAddCmd() *cobra.Command {
	var req api.CreateVehicleRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new vehicle",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, store, err := newClient()
			if err != nil {
				return err
			}
			if _, err := requireUser(client, store); err != nil {
				return err
			}

			vehicle, err := client.CreateVehicle(context.Background(), req)
			if err != nil {
				return fmt.Errorf("failed to create vehicle: %w", err)
			}

			fmt.Printf("✓ Vehicle created: %s (%s)\n", vehicle.Name, vehicle.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Vehicle name")
	cmd.Flags().StringVar(&req.Brand, "brand", "", "Brand")
	cmd.Flags().StringVar(&req.Model, "model", "", "Model")
	cmd.Flags().StringVar(&req.PlateNumber, "plate", "", "Plate number")
	cmd.Flags().StringVar(&req.Color, "color", "", "Color")
	cmd.Flags().StringVar(&req.UserID, "driver", "", "Driver user ID to assign (admin only)")
	cmd.Flags().Float64Var(&req.OwnerPercentage, "owner-percentage", 0, "Owner share of collections (0-100)")

	return cmd
}

func newFleetProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <vehicle-id>",
		Short: "Show hire-purchase contract progress for a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, store, err := newClient()
			if err != nil {
				return err
			}
			user, err := requireUser(client, store)
			if err != nil {
				return err
			}

			// Drivers see their side of the contract, everyone else the
			// owner's side.
			var progress *api.ContractProgress
			if user.Role == session.RoleDriver {
				progress, err = client.DriverProgress(context.Background(), args[0])
			} else {
				progress, err = client.OwnerProgress(context.Background(), args[0])
			}
			if err != nil {
				return err
			}

			fmt.Printf("Contract progress for %s:\n\n", progress.VehicleID)
			fmt.Printf("  Total value: %.2f\n", progress.TotalValue)
			fmt.Printf("  Paid:        %.2f (%.1f%%)\n", progress.PaidAmount, progress.Percentage)
			fmt.Printf("  Remaining:   %.2f\n", progress.RemainingAmount)
			return nil
		},
	}
}
