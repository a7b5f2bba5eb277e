package model

import (
	"time"
)

// Transaction represents the database model for transactions. The unique
// index on TransactionID carries the domain identity; the unique index on
// CheckoutRequestID is the store-level guard against double-processing one
// gateway event. Rows are append-only.
type Transaction struct {
	ID                uint64  `gorm:"primaryKey;autoIncrement"`
	TransactionID     string  `gorm:"uniqueIndex;not null;size:64"`
	UserID            *uint64 `gorm:"index"`
	AccountID         *uint64 `gorm:"index"`
	Kind              string  `gorm:"not null;size:50"`
	Status            string  `gorm:"not null;size:50;index"`
	Amount            string  `gorm:"not null;size:50"`
	AmountCents       int64   `gorm:"not null"`
	Description       string  `gorm:"type:text"`
	Metadata          string  `gorm:"type:jsonb"`
	CheckoutRequestID *string `gorm:"uniqueIndex;size:255"`
	GatewayReference  string  `gorm:"size:255"`
	CreatedAt         time.Time `gorm:"not null;index"`
	UpdatedAt         time.Time `gorm:"not null"`
	ProcessedAt       *time.Time
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
