package constants

// User roles
const (
	RoleAdmin     = "admin"
	RoleTourGuide = "tourGuide"
	RoleTourist   = "tourist"

	// RoleNone is reported for users that are absent or have no role set.
	RoleNone = "none"
)
