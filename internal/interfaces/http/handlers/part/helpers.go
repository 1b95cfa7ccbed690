package part

import (
	"github.com/gin-gonic/gin"

	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/id"
)

// parsePartSID validates the prefixed part ID from the URL (e.g., "prt_xK9mP2vL3nQ").
func parsePartSID(c *gin.Context) (string, error) {
	sid := c.Param("id")
	if sid == "" {
		return "", errors.NewValidationError("part ID is required")
	}

	if err := id.ValidatePrefix(sid, id.PrefixPart); err != nil {
		return "", errors.NewValidationError("invalid part ID format, expected prt_xxxxx")
	}

	return sid, nil
}
