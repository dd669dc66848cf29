package logger

import (
	"log"
	"unique-travel/types"

	logModel "unique-travel/models/log"

	"gorm.io/gorm"
)

type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100), // Buffered channel to hold log entries
	}
}

// ProcessLog drains the channel and persists entries. Run in its own goroutine.
func (logger *AsyncLogger) ProcessLog() {
	for logEntry := range logger.channel {
		dbLog := logModel.Log{
			Method:       logEntry.Method,
			URL:          logEntry.URL,
			RequestBody:  logEntry.RequestBody,
			ResponseBody: logEntry.ResponseBody,
			StatusCode:   logEntry.StatusCode,
			CreatedAt:    logEntry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			log.Printf("Failed to insert new log entry: %v", err)
		}
	}
}

// Log queues a log entry without blocking. When the writer has fallen behind
// and the buffer is full the entry is dropped, so request latency never
// depends on the log table.
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	select {
	case logger.channel <- entry:
	default:
		Warning("Log buffer full, dropping entry for " + entry.URL)
	}
}
