package application

import (
	"time"
)

// Application is a tourist's tour-guide candidacy. The row is deleted once
// it has been approved or rejected.
type Application struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ApplicantEmail string `gorm:"type:varchar(255);not null;index" json:"email"`
	ApplicantName  string `gorm:"type:varchar(255)" json:"name"`
	PhotoURL       string `gorm:"type:varchar(2048)" json:"photoURL"`
	Title          string `gorm:"type:varchar(255);not null" json:"title"`
	Reason         string `gorm:"type:text" json:"reason"`
	CVLink         string `gorm:"type:varchar(2048)" json:"cvLink"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
