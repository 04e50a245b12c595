package cache

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruisebase/cruisebase/internal/api"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache.sqlite"))
	require.NoError(t, err)
	return store
}

func TestReplaceVehicles(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.ReplaceVehicles("u1", []api.Vehicle{
		{ID: "v1", Name: "Corolla", PlateNumber: "ABC-123", IsActive: true},
		{ID: "v2", Name: "Hilux", PlateNumber: "XYZ-789"},
	}))

	vehicles, err := store.VehiclesFor("u1")
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "Corolla", vehicles[0].Name)

	// A later sync replaces, not appends.
	require.NoError(t, store.ReplaceVehicles("u1", []api.Vehicle{
		{ID: "v1", Name: "Corolla", PlateNumber: "ABC-123", IsActive: false},
	}))

	vehicles, err = store.VehiclesFor("u1")
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.False(t, vehicles[0].IsActive)

	// Other users' rows are untouched by a sync.
	other, err := store.VehiclesFor("u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestWalletSnapshotUpsert(t *testing.T) {
	store := openTestStore(t)

	none, err := store.WalletFor("u1")
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, store.SaveWallet("u1", &api.Wallet{ID: "w1", Balance: 100, Currency: "NGN"}))
	require.NoError(t, store.SaveWallet("u1", &api.Wallet{ID: "w1", Balance: 250, Currency: "NGN", IsPinSet: true}))

	snapshot, err := store.WalletFor("u1")
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, 250.0, snapshot.Balance)
	assert.True(t, snapshot.IsPinSet)
}

func TestReplaceTransactions(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.ReplaceTransactions("u1", []api.Transaction{
		{ID: "t1", Amount: 20, Type: "Collection", Status: "Completed", CreatedAt: "2026-08-01T10:00:00Z"},
		{ID: "t2", Amount: 50, Type: "Withdrawal", Status: "Pending", CreatedAt: "2026-08-02T10:00:00Z"},
	}))

	transactions, err := store.TransactionsFor("u1", 10)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "t2", transactions[0].ID, "newest first")
}

func TestSyncRunLog(t *testing.T) {
	store := openTestStore(t)

	none, err := store.LastSync("u1")
	require.NoError(t, err)
	assert.Nil(t, none)

	startedAt := time.Now().UTC().Add(-time.Minute)
	require.NoError(t, store.RecordSync("u1", startedAt, nil))
	require.NoError(t, store.RecordSync("u1", startedAt.Add(30*time.Second), errors.New("network down")))

	last, err := store.LastSync("u1")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "network down", last.Error)
	assert.NotEmpty(t, last.ID)
}
