package booking

// Booking statuses
const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
	StatusInReview = "In Review"
)

// IsValidStatus reports whether s is one of the known booking statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusInReview:
		return true
	default:
		return false
	}
}

// IsGuideDecision reports whether s is a status a tour guide may set.
func IsGuideDecision(s string) bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransition reports whether a booking may move from one status to another.
// Rejected and In Review are absorbing.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusAccepted || to == StatusRejected || to == StatusInReview
	case StatusAccepted:
		return to == StatusInReview
	default:
		return false
	}
}
