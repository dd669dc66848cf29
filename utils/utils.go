package utils

import (
	"time"

	"unique-travel/types"

	"github.com/gofiber/fiber/v2"
)

// CreateSanitizedLogEntry creates a deep-copied log entry for the async
// logger. Copies guard against fiber reusing its buffers after the handler
// returns.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := string(append([]byte(nil), c.Body()...))
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	return types.LogEntry{
		Method:       method,
		URL:          url,
		RequestBody:  requestBody,
		ResponseBody: responseBody,
		StatusCode:   c.Response().StatusCode(),
		CreatedAt:    time.Now(),
	}
}
