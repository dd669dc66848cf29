package role

import (
	"errors"

	"unique-travel/constants"
	userModel "unique-travel/models/user"

	"gorm.io/gorm"
)

// Directory resolves a user's stored role by email.
type Directory interface {
	RoleOf(email string) (string, error)
}

// GormDirectory reads the users table directly. Lookups are never cached:
// an admin promoting a user must be visible to the very next request.
type GormDirectory struct {
	db *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

// RoleOf returns the stored role, or RoleNone when the user is absent or
// has no role set.
func (d *GormDirectory) RoleOf(email string) (string, error) {
	var u userModel.User
	err := d.db.Select("role").Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return constants.RoleNone, nil
		}
		return "", err
	}
	if u.Role == "" {
		return constants.RoleNone, nil
	}
	return u.Role, nil
}
