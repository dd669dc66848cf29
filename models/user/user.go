package user

import (
	"time"
)

// User is created on first sign-in; the email is the identity key.
// Role is empty for plain tourists that never picked one explicitly.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Name     string `gorm:"type:varchar(255)" json:"name"`
	PhotoURL string `gorm:"type:varchar(2048)" json:"photoURL"`
	Role     string `gorm:"type:varchar(50)" json:"role,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
