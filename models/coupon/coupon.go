package coupon

import (
	"time"
)

// Coupon is a discount code with an expiry date.
type Coupon struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Code            string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	DiscountPercent int       `gorm:"not null" json:"discountPercent"`
	ExpiresAt       time.Time `gorm:"not null" json:"expiresAt"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
