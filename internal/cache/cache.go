// Package cache keeps a local sqlite snapshot of the data the dashboards
// render, so the CLI can show the last known state when the network is down.
// The cache is advisory only: it never feeds the request gateway or the route
// authorization gate.
package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cruisebase/cruisebase/internal/api"
)

// Store wraps the cache database.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// WAL keeps concurrent CLI/dashboard readers from blocking the sync job.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("failed to apply pragma: %w", err)
		}
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate cache schema: %w", err)
	}

	return &Store{db: db}, nil
}

// ReplaceVehicles swaps the cached fleet for a user with a fresh fetch.
func (s *Store) ReplaceVehicles(userID string, vehicles []api.Vehicle) error {
	now := time.Now().UTC()
	rows := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		rows = append(rows, Vehicle{
			ID:               v.ID,
			UserID:           userID,
			Name:             v.Name,
			Brand:            v.Brand,
			Model:            v.Model,
			PlateNumber:      v.PlateNumber,
			Color:            v.Color,
			IsActive:         v.IsActive,
			ContractType:     v.ContractType,
			Tenure:           v.Tenure,
			PaymentAmount:    v.PaymentAmount,
			PaymentFrequency: v.PaymentFrequency,
			SyncedAt:         now,
		})
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&Vehicle{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// VehiclesFor returns the cached fleet for a user.
func (s *Store) VehiclesFor(userID string) ([]Vehicle, error) {
	var rows []Vehicle
	if err := s.db.Where("user_id = ?", userID).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load cached vehicles: %w", err)
	}
	return rows, nil
}

// ReplaceTransactions swaps the cached ledger page for a user.
func (s *Store) ReplaceTransactions(userID string, transactions []api.Transaction) error {
	now := time.Now().UTC()
	rows := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, Transaction{
			ID:          t.ID,
			UserID:      userID,
			Amount:      t.Amount,
			Type:        t.Type,
			Status:      t.Status,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
			SyncedAt:    now,
		})
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&Transaction{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// TransactionsFor returns cached ledger entries, newest first.
func (s *Store) TransactionsFor(userID string, limit int) ([]Transaction, error) {
	if limit < 1 {
		limit = 10
	}
	var rows []Transaction
	if err := s.db.Where("user_id = ?", userID).Order("created_at desc").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load cached transactions: %w", err)
	}
	return rows, nil
}

// SaveWallet upserts the wallet snapshot for a user.
func (s *Store) SaveWallet(userID string, wallet *api.Wallet) error {
	snapshot := WalletSnapshot{
		UserID:   userID,
		WalletID: wallet.ID,
		Balance:  wallet.Balance,
		Currency: wallet.Currency,
		IsPinSet: wallet.IsPinSet,
		SyncedAt: time.Now().UTC(),
	}
	if err := s.db.Save(&snapshot).Error; err != nil {
		return fmt.Errorf("failed to save wallet snapshot: %w", err)
	}
	return nil
}

// WalletFor returns the last known wallet state for a user, or nil when no
// sync has happened yet.
func (s *Store) WalletFor(userID string) (*WalletSnapshot, error) {
	var snapshot WalletSnapshot
	err := s.db.Where("user_id = ?", userID).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load wallet snapshot: %w", err)
	}
	return &snapshot, nil
}

// RecordSync stores the outcome of one cache refresh.
func (s *Store) RecordSync(userID string, startedAt time.Time, syncErr error) error {
	run := SyncRun{
		UserID:     userID,
		StartedAt:  startedAt,
		FinishedAt: time.Now().UTC(),
	}
	if syncErr != nil {
		run.Error = syncErr.Error()
	}
	return s.db.Create(&run).Error
}

// LastSync returns the most recent sync run for a user, or nil when none.
func (s *Store) LastSync(userID string) (*SyncRun, error) {
	var run SyncRun
	err := s.db.Where("user_id = ?", userID).Order("started_at desc").First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load last sync: %w", err)
	}
	return &run, nil
}
