package tourpackage

import (
	"time"

	"unique-travel/models/story"
)

// Package is a tour offering in the catalog.
type Package struct {
	ID       uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Title    string            `gorm:"type:varchar(255);not null" json:"title"`
	TripType string            `gorm:"type:varchar(100);index" json:"tripType"`
	Price    float64           `gorm:"type:numeric(12,2);not null" json:"price"`
	About    string            `gorm:"type:text" json:"about"`
	Photos   story.StringSlice `gorm:"type:json" json:"photos"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
