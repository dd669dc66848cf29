package guide

import (
	"time"
)

// Guide is a catalog entry for an approved tour guide, denormalized from
// the application that produced it.
type Guide struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string `gorm:"type:varchar(255);not null;index" json:"email"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	PhotoURL string `gorm:"type:varchar(2048)" json:"photoURL"`
	Title    string `gorm:"type:varchar(255)" json:"title"`
	Reason   string `gorm:"type:text" json:"reason"`
	CVLink   string `gorm:"type:varchar(2048)" json:"cvLink"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
