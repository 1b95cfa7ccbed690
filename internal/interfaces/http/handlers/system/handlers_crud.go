package system

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quartermaster/internal/application/system/usecases"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/utils"
)

// CreateSystem handles POST /system
func (h *SystemHandler) CreateSystem(c *gin.Context) {
	var cmd usecases.CreateSystemCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		h.logger.Warnw("invalid request body for create system", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.createSystemUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "System created successfully")
}

// GetSystem handles GET /system/:id
func (h *SystemHandler) GetSystem(c *gin.Context) {
	sid, err := parseSystemSID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetSystemQuery{SID: sid}
	result, err := h.getSystemUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "System retrieved successfully", result)
}

// ListSystems handles GET /system/allsys
func (h *SystemHandler) ListSystems(c *gin.Context) {
	result, err := h.listSystemsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Systems retrieved successfully", result)
}
