package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruisebase/cruisebase/internal/session"
)

func TestWithdrawGeneratesReference(t *testing.T) {
	var received WithdrawRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/wallet/withdraw", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
	}))
	defer srv.Close()

	store := session.NewStore(nil)
	store.SetCredentials("T1", "R1")
	client := New(srv.URL, store)

	err := client.Withdraw(context.Background(), WithdrawRequest{
		Amount:        150.00,
		BankAccountID: "acct-1",
		PIN:           "1234",
	})
	require.NoError(t, err)

	assert.Equal(t, 150.00, received.Amount)
	assert.NotEmpty(t, received.Reference, "a reference must be generated when absent")
}

func TestWithdrawValidation(t *testing.T) {
	client := New("http://localhost:0", session.NewStore(nil))

	cases := []struct {
		name string
		req  WithdrawRequest
	}{
		{"zero amount", WithdrawRequest{BankAccountID: "a", PIN: "1234"}},
		{"missing account", WithdrawRequest{Amount: 10, PIN: "1234"}},
		{"short pin", WithdrawRequest{Amount: 10, BankAccountID: "a", PIN: "12"}},
		{"non-numeric pin", WithdrawRequest{Amount: 10, BankAccountID: "a", PIN: "abcd"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := client.Withdraw(context.Background(), tc.req)
			require.Error(t, err)
		})
	}
}

func TestTransactionHistoryPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode(TransactionPage{
			Transactions: []Transaction{{ID: "t1", Amount: 20, Type: "Collection", Status: "Completed"}},
			Total:        51,
		})
	}))
	defer srv.Close()

	store := session.NewStore(nil)
	store.SetCredentials("T1", "R1")
	client := New(srv.URL, store)

	page, err := client.TransactionHistory(context.Background(), 3, 25)
	require.NoError(t, err)
	assert.Equal(t, 51, page.Total)
	require.Len(t, page.Transactions, 1)
	assert.Equal(t, "Collection", page.Transactions[0].Type)
}
