package part

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quartermaster/internal/application/part/usecases"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/utils"
)

// MarkUnusable handles PATCH /part/:id/unusable
func (h *PartHandler) MarkUnusable(c *gin.Context) {
	sid, err := parsePartSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var cmd usecases.MarkPartUnusableCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		h.logger.Warnw("invalid request body for mark part unusable", "sid", sid, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}
	cmd.SID = sid

	result, err := h.markUnusableUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Part marked unusable", result)
}

// Restore handles PATCH /part/:id/restore
func (h *PartHandler) Restore(c *gin.Context) {
	sid, err := parsePartSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RestorePartCommand{SID: sid}
	result, err := h.restorePartUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Part restored", result)
}
