package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateRequestID creates a short correlation ID for log output.
// Format: {operation}-p{player}-{8charHexUUID}
//
// Example:
//   - Input: operation="load", player=3
//   - Output: "load-p3-a3f8e2b1"
func GenerateRequestID(operation string, player int) string {
	return fmt.Sprintf("%s-p%d-%s", operation, player, generateShortUUID())
}

// generateShortUUID creates an 8-character hex string from a UUID.
// This provides sufficient uniqueness while keeping IDs compact.
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
