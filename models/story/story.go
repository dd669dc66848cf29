package story

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Story is a tourist-written travel story with a photo gallery.
type Story struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorEmail string      `gorm:"type:varchar(255);not null;index" json:"email"`
	AuthorName  string      `gorm:"type:varchar(255)" json:"name"`
	Title       string      `gorm:"type:varchar(255);not null" json:"title"`
	Excerpt     string      `gorm:"type:text" json:"excerpt"`
	Photos      StringSlice `gorm:"type:json" json:"photo"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// StringSlice is a custom type to handle JSON serialization for PostgreSQL
type StringSlice []string

// Scan implements the Scanner interface for database deserialization
func (ss *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*ss = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, ss)
}

// Value implements the driver Valuer interface for database serialization
func (ss StringSlice) Value() (driver.Value, error) {
	if ss == nil {
		return nil, nil
	}
	return json.Marshal(ss)
}
