package handlers

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
)

// logError records the underlying cause for operators; the client only sees
// a generic message.
func logError(c *gin.Context, operation string, err error) {
	requestID := c.GetString("requestID")
	log.Printf("[%s] %s failed: %v", requestID, operation, err)
}

// isUniqueViolation reports whether err is a storage-level unique constraint
// failure. sqlite does not expose a typed error for this, so the message is
// the contract.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
