package booking

import (
	"time"
)

// Booking links a tourist, a guide and a package for a tour date.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	TouristEmail string `gorm:"type:varchar(255);not null;index" json:"touristEmail"`
	TouristName  string `gorm:"type:varchar(255)" json:"touristName"`
	GuideEmail   string `gorm:"type:varchar(255);index" json:"guideEmail"`
	PackageID    uint   `gorm:"index" json:"packageId"`
	PackageTitle string `gorm:"type:varchar(255)" json:"packageTitle"`

	TourDate time.Time `json:"tourDate"`
	Price    float64   `gorm:"type:numeric(12,2)" json:"price"`
	Status   string    `gorm:"type:varchar(50);not null" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
