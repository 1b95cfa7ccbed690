package system

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quartermaster/internal/application/system/usecases"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/utils"
)

// AssignSystem handles POST /system/assign
func (h *SystemHandler) AssignSystem(c *gin.Context) {
	var cmd usecases.AssignSystemCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		h.logger.Warnw("invalid request body for assign system", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.assignSystemUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "System assigned successfully", result)
}

// UnassignSystem handles PATCH /system/unassign/:systemId
func (h *SystemHandler) UnassignSystem(c *gin.Context) {
	sid, err := parseSystemSID(c, "systemId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UnassignSystemCommand{SystemID: sid}
	result, err := h.unassignSystemUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "System unassigned successfully", result)
}

// DeallocateSystem handles PATCH /system/deallocate/:systemId
func (h *SystemHandler) DeallocateSystem(c *gin.Context) {
	sid, err := parseSystemSID(c, "systemId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeallocateSystemCommand{SystemID: sid}
	result, err := h.deallocateSystemUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "System deallocated successfully", result)
}

// GetDashboardStats handles GET /system/stats
func (h *SystemHandler) GetDashboardStats(c *gin.Context) {
	result, err := h.dashboardStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dashboard stats retrieved successfully", result)
}
