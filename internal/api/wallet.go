package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/oklog/ulid/v2"
)

// WalletBalance fetches the current wallet summary.
func (c *Client) WalletBalance(ctx context.Context) (*Wallet, error) {
	var wallet Wallet
	if err := c.doJSON(ctx, http.MethodGet, "/api/wallet/balance", nil, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// TransactionHistory fetches one page of the wallet ledger.
func (c *Client) TransactionHistory(ctx context.Context, page, limit int) (*TransactionPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var result TransactionPage
	path := "/api/wallet/transaction-history?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Withdraw moves funds to a saved bank account. A ULID reference is generated
// when the caller does not provide one, so a retried submission stays
// idempotent on the backend.
func (c *Client) Withdraw(ctx context.Context, req WithdrawRequest) error {
	if req.Reference == "" {
		req.Reference = ulid.Make().String()
	}
	if err := c.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid withdrawal request: %w", err)
	}
	return c.doJSON(ctx, http.MethodPost, "/api/wallet/withdraw", req, nil)
}

// SetPIN sets the wallet transaction PIN.
func (c *Client) SetPIN(ctx context.Context, pin string) error {
	if len(pin) != 4 {
		return fmt.Errorf("pin must be exactly 4 digits")
	}
	return c.doJSON(ctx, http.MethodPost, "/api/wallet/set-pin", pin, nil)
}

// Banks lists supported withdrawal banks.
func (c *Client) Banks(ctx context.Context) ([]Bank, error) {
	var banks []Bank
	if err := c.doJSON(ctx, http.MethodGet, "/api/wallet/banks", nil, &banks); err != nil {
		return nil, err
	}
	return banks, nil
}

// UserBankAccounts lists the bank accounts saved against the wallet.
func (c *Client) UserBankAccounts(ctx context.Context) ([]BankAccount, error) {
	var accounts []BankAccount
	if err := c.doJSON(ctx, http.MethodGet, "/api/wallet/user-bank-accounts", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// ResolveAccount verifies an account number against a bank code and returns
// the account holder's name.
func (c *Client) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*ResolvedAccount, error) {
	var resolved ResolvedAccount
	path := "/api/wallet/resolve-account?accountNumber=" + url.QueryEscape(accountNumber) +
		"&bankCode=" + url.QueryEscape(bankCode)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resolved); err != nil {
		return nil, err
	}
	return &resolved, nil
}
