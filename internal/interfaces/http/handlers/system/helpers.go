package system

import (
	"github.com/gin-gonic/gin"

	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/id"
)

// parseSystemSID validates a prefixed system ID taken from the named URL
// parameter (e.g., "sys_xK9mP2vL3nQ").
func parseSystemSID(c *gin.Context, param string) (string, error) {
	sid := c.Param(param)
	if sid == "" {
		return "", errors.NewValidationError("system ID is required")
	}

	if err := id.ValidatePrefix(sid, id.PrefixSystem); err != nil {
		return "", errors.NewValidationError("invalid system ID format, expected sys_xxxxx")
	}

	return sid, nil
}
