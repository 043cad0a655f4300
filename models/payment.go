package models

import "time"

// Payment is an append-only ledger entry. TransactionID is the opaque
// reference handed back by the payment provider.
type Payment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerEmail    string    `gorm:"index;not null" json:"owner_email"`
	Price         float64   `gorm:"not null" json:"price"`
	TransactionID string    `gorm:"not null" json:"transaction_id"`
	PaidAt        time.Time `json:"paid_at"`
}
