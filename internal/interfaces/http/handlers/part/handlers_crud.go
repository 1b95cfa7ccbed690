package part

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quartermaster/internal/application/part/usecases"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/utils"
)

// CreatePart handles POST /part
func (h *PartHandler) CreatePart(c *gin.Context) {
	var cmd usecases.CreatePartCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		h.logger.Warnw("invalid request body for create part", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.createPartUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Part created successfully")
}

// GetPart handles GET /part/:id
func (h *PartHandler) GetPart(c *gin.Context) {
	sid, err := parsePartSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetPartQuery{SID: sid}
	result, err := h.getPartUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Part retrieved successfully", result)
}

// ListParts handles GET /part
func (h *PartHandler) ListParts(c *gin.Context) {
	query := usecases.ListPartsQuery{
		Status: c.Query("status"),
		Type:   c.Query("type"),
	}

	result, err := h.listPartsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Parts retrieved successfully", result)
}

// UpdatePart handles PUT /part/:id
func (h *PartHandler) UpdatePart(c *gin.Context) {
	sid, err := parsePartSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var cmd usecases.UpdatePartCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		h.logger.Warnw("invalid request body for update part", "sid", sid, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}
	cmd.SID = sid

	result, err := h.updatePartUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Part updated successfully", result)
}

// DeletePart handles DELETE /part/:id
func (h *PartHandler) DeletePart(c *gin.Context) {
	sid, err := parsePartSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeletePartCommand{SID: sid}
	if err := h.deletePartUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Part deleted successfully", nil)
}
