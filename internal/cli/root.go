package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cruisebase/cruisebase/internal/cli/commands"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "cruisebase",
	Short: "CruiseBase - fleet financing from the command line",
	Long: `CruiseBase CLI - Manage your fleet, contracts and wallet.

Drivers track their hire-purchase progress, owners manage their fleet and
admins create contracts, all against the hosted CruiseBase platform.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cruisebase version %s\n", version)
		},
	})

	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewRegisterCmd())
	rootCmd.AddCommand(commands.NewFleetCmd())
	rootCmd.AddCommand(commands.NewWalletCmd())
	rootCmd.AddCommand(commands.NewContractCmd())
	rootCmd.AddCommand(commands.NewDashCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
