package model

import (
	"time"
)

// Account represents the database model for accounts. The compound unique
// index enforces "one account per user per type"; Version backs the
// optimistic conditional write. All monetary columns are cents.
type Account struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement"`
	UserID uint64 `gorm:"not null;uniqueIndex:idx_accounts_user_type"`
	Type   string `gorm:"not null;size:50;uniqueIndex:idx_accounts_user_type"`
	Status string `gorm:"not null;size:50"`

	CurrentBalance   int64 `gorm:"not null;default:0"`
	AvailableBalance int64 `gorm:"not null;default:0"`
	LockedBalance    int64 `gorm:"not null;default:0"`

	EmployeeContributions  int64 `gorm:"not null;default:0"`
	EmployerContributions  int64 `gorm:"not null;default:0"`
	VoluntaryContributions int64 `gorm:"not null;default:0"`
	InterestEarned         int64 `gorm:"not null;default:0"`
	InvestmentReturns      int64 `gorm:"not null;default:0"`
	DividendsEarned        int64 `gorm:"not null;default:0"`
	TotalWithdrawn         int64 `gorm:"not null;default:0"`
	PenaltiesApplied       int64 `gorm:"not null;default:0"`
	TaxWithheld            int64 `gorm:"not null;default:0"`

	Version           uint64    `gorm:"not null;default:1"`
	LastTransactionID string    `gorm:"size:64"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
