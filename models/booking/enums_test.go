package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusAccepted, StatusRejected, StatusInReview} {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("Confirmed"))
	assert.False(t, IsValidStatus(""))
}

func TestIsGuideDecision(t *testing.T) {
	assert.True(t, IsGuideDecision(StatusAccepted))
	assert.True(t, IsGuideDecision(StatusRejected))
	assert.False(t, IsGuideDecision(StatusPending))
	assert.False(t, IsGuideDecision(StatusInReview))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusInReview, true},
		{StatusAccepted, StatusInReview, true},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusAccepted, false},
		{StatusInReview, StatusPending, false},
		{StatusInReview, StatusAccepted, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}
