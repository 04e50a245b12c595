package cache

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Vehicle is a locally cached copy of a fleet vehicle, keyed by the backend's
// vehicle ID and scoped to the user that fetched it.
type Vehicle struct {
	ID               string    `gorm:"primaryKey;type:varchar(64)"`
	UserID           string    `gorm:"index;not null"`
	Name             string    `gorm:"not null"`
	Brand            string
	Model            string
	PlateNumber      string
	Color            string
	IsActive         bool
	ContractType     string
	Tenure           int
	PaymentAmount    float64
	PaymentFrequency string
	SyncedAt         time.Time `gorm:"not null"`
}

// Transaction is a locally cached wallet ledger entry.
type Transaction struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)"`
	UserID      string    `gorm:"index;not null"`
	Amount      float64
	Type        string
	Status      string
	Description string
	CreatedAt   string
	SyncedAt    time.Time `gorm:"not null"`
}

// WalletSnapshot is the last known wallet state for a user.
type WalletSnapshot struct {
	UserID   string `gorm:"primaryKey;type:varchar(64)"`
	WalletID string
	Balance  float64
	Currency string
	IsPinSet bool
	SyncedAt time.Time `gorm:"not null"`
}

// SyncRun records one cache refresh attempt, successful or not.
type SyncRun struct {
	ID         string    `gorm:"primaryKey;type:varchar(26)"`
	UserID     string    `gorm:"index;not null"`
	StartedAt  time.Time `gorm:"not null"`
	FinishedAt time.Time
	Error      string
}

// BeforeCreate generates a ULID for the ID field if it's empty
func (r *SyncRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = ulid.Make().String()
	}
	return nil
}

// AutoMigrate creates or updates the cache schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Vehicle{},
		&Transaction{},
		&WalletSnapshot{},
		&SyncRun{},
	)
}
