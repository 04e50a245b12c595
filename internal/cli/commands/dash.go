package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cruisebase/cruisebase/internal/api"
	"github.com/cruisebase/cruisebase/internal/cache"
	"github.com/cruisebase/cruisebase/internal/config"
	"github.com/cruisebase/cruisebase/internal/session"
)

// NewDashCmd creates the dash command
func NewDashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Show your dashboard",
		Long: `Shows a role-appropriate summary: assigned vehicle and repayment progress
for drivers, fleet overview for owners, platform totals for admins.

Falls back to the local cache when the platform is unreachable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDash()
		},
	}
}

func runDash() error {
	client, store, err := newClient()
	if err != nil {
		return err
	}
	user, err := requireUser(client, store)
	if err != nil {
		return err
	}

	fmt.Printf("CruiseBase: %s (%s)\n\n", user.FullName, user.Role)

	ctx := context.Background()

	vehicles, err := client.Vehicles(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			return fmt.Errorf("session expired. Run 'cruisebase login' again")
		}
		// Network trouble: render the last synced state instead.
		return renderCachedDash(user)
	}

	printVehicles(vehicles)

	if user.Role == session.RoleDriver && len(vehicles) > 0 {
		if progress, err := client.DriverProgress(ctx, vehicles[0].ID); err == nil {
			fmt.Printf("\nContract: %.2f of %.2f paid (%.1f%%), %.2f remaining\n",
				progress.PaidAmount, progress.TotalValue, progress.Percentage, progress.RemainingAmount)
		}
	}

	if user.Role == session.RoleDriver || user.Role == session.RoleOwner {
		if wallet, err := client.WalletBalance(ctx); err == nil {
			fmt.Printf("\nWallet: %.2f %s\n", wallet.Balance, wallet.Currency)
		}
	}

	return nil
}

// renderCachedDash prints the last synced snapshot from the local cache.
func renderCachedDash(user *session.User) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cacheStore, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		return fmt.Errorf("platform unreachable and no local cache available: %w", err)
	}

	lastSync, err := cacheStore.LastSync(user.ID)
	if err != nil || lastSync == nil {
		return fmt.Errorf("platform unreachable and nothing cached yet")
	}

	fmt.Printf("(offline, showing data synced at %s)\n\n", lastSync.FinishedAt.Format("2006-01-02 15:04"))

	vehicles, err := cacheStore.VehiclesFor(user.ID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPLATE\tCOLOR\tACTIVE")
	for _, v := range vehicles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", v.Name, v.PlateNumber, v.Color, v.IsActive)
	}
	w.Flush()

	if wallet, err := cacheStore.WalletFor(user.ID); err == nil && wallet != nil {
		fmt.Printf("\nWallet: %.2f %s\n", wallet.Balance, wallet.Currency)
	}

	return nil
}

func printVehicles(vehicles []api.Vehicle) {
	if len(vehicles) == 0 {
		fmt.Println("No vehicles yet.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPLATE\tCOLOR\tACTIVE")
	for _, v := range vehicles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", v.Name, v.PlateNumber, v.Color, v.IsActive)
	}
	w.Flush()
}
