package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/cruisebase/cruisebase/internal/api"
)

// NewWalletCmd creates the wallet command group
func NewWalletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Operate your wallet",
	}

	cmd.AddCommand(newWalletBalanceCmd())
	cmd.AddCommand(newWalletHistoryCmd())
	cmd.AddCommand(newWalletWithdrawCmd())
	cmd.AddCommand(newWalletSetPinCmd())

	return cmd
}

func newWalletBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show your wallet balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, store, err := newClient()
			if err != nil {
				return err
			}
			if _, err := requireUser(client, store); err != nil {
				return err
			}

			wallet, err := client.WalletBalance(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Balance: %.2f %s\n", wallet.Balance, wallet.Currency)
			if !wallet.IsPinSet {
				fmt.Println("\nNo transaction PIN set. Set one with: cruisebase wallet set-pin")
			}
			return nil
		},
	}
}

func newWalletHistoryCmd() *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show transaction history",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, store, err := newClient()
			if err != nil {
				return err
			}
			if _, err := requireUser(client, store); err != nil {
				return err
			}

			result, err := client.TransactionHistory(context.Background(), page, limit)
			if err != nil {
				return err
			}

			if len(result.Transactions) == 0 {
				fmt.Println("No transactions found.")
				return nil
			}

			fmt.Printf("Transactions (page %d, %d total):\n\n", page, result.Total)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tTYPE\tSTATUS\tAMOUNT\tDESCRIPTION")
			fmt.Fprintln(w, "────\t────\t──────\t──────\t───────────")
			for _, t := range result.Transactions {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\n",
					t.CreatedAt, t.Type, t.Status, t.Amount, t.Description)
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "Entries per page")

	return cmd
}

func newWalletWithdrawCmd() *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw funds to a bank account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithdraw(amount)
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount to withdraw")

	return cmd
}

func runWithdraw(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive (use --amount)")
	}

	client, store, err := newClient()
	if err != nil {
		return err
	}
	if _, err := requireUser(client, store); err != nil {
		return err
	}

	ctx := context.Background()

	accounts, err := client.UserBankAccounts(ctx)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		return fmt.Errorf("no bank accounts on file. Add one in the web dashboard first")
	}

	account, err := promptBankAccount(accounts)
	if err != nil {
		return err
	}

	pin, err := promptSecret("Wallet PIN")
	if err != nil {
		return err
	}

	if err := client.Withdraw(ctx, api.WithdrawRequest{
		Amount:        amount,
		BankAccountID: account.ID,
		PIN:           pin,
	}); err != nil {
		return fmt.Errorf("withdrawal failed: %w", err)
	}

	fmt.Printf("✓ Withdrawal of %.2f to %s (%s) submitted.\n",
		amount, account.AccountName, account.BankName)
	return nil
}

// promptBankAccount shows an interactive selection over the user's saved
// accounts, skipping the prompt when there is only one.
func promptBankAccount(accounts []api.BankAccount) (*api.BankAccount, error) {
	if len(accounts) == 1 {
		return &accounts[0], nil
	}

	labels := make([]string, len(accounts))
	for i, a := range accounts {
		labels[i] = fmt.Sprintf("%s - %s (%s)", a.BankName, a.AccountNumber, a.AccountName)
	}

	prompt := promptui.Select{
		Label: "Select bank account",
		Items: labels,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("account selection cancelled: %w", err)
	}
	return &accounts[index], nil
}

func newWalletSetPinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-pin",
		Short: "Set your wallet transaction PIN",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, store, err := newClient()
			if err != nil {
				return err
			}
			if _, err := requireUser(client, store); err != nil {
				return err
			}

			pin, err := promptSecret("New PIN (4 digits)")
			if err != nil {
				return err
			}
			confirm, err := promptSecret("Confirm PIN")
			if err != nil {
				return err
			}
			if pin != confirm {
				return fmt.Errorf("PINs do not match")
			}

			if err := client.SetPIN(context.Background(), pin); err != nil {
				return fmt.Errorf("failed to set PIN: %w", err)
			}

			fmt.Println("✓ Wallet PIN set.")
			return nil
		},
	}
}
