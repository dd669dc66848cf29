package logger

import (
	"testing"
	"time"

	"unique-travel/types"

	"github.com/stretchr/testify/assert"
)

func TestLogDoesNotBlockWhenBufferFull(t *testing.T) {
	// No ProcessLog goroutine draining, so the buffer fills up.
	asyncLogger := NewAsyncLogger(nil)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 500; i++ {
			asyncLogger.Log(types.LogEntry{Method: "GET", URL: "/bookings"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Log blocked on a full buffer")
	}

	// Buffer keeps the oldest entries, the overflow is dropped.
	assert.Equal(t, cap(asyncLogger.channel), len(asyncLogger.channel))
}
