package payment

import (
	"time"
)

// Payment statuses. A payment is created pending and flips to success
// exactly once, from the gateway callback.
const (
	StatusPending = "pending"
	StatusSuccess = "success"
)

// Payment is one record per payment attempt. TrxID is the correlation key
// shared with the gateway; the unique index backs callback idempotency.
type Payment struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TrxID     string `gorm:"type:varchar(64);not null;uniqueIndex" json:"trxId"`
	BookingID uint   `gorm:"not null;index" json:"bookingId"`

	Amount   float64 `gorm:"type:numeric(12,2);not null" json:"amount"`
	Currency string  `gorm:"type:varchar(10);not null" json:"currency"`

	CustomerName  string `gorm:"type:varchar(255)" json:"customerName"`
	CustomerEmail string `gorm:"type:varchar(255)" json:"customerEmail"`
	CustomerPhone string `gorm:"type:varchar(20)" json:"customerPhone"`

	Status string `gorm:"type:varchar(20);not null" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
