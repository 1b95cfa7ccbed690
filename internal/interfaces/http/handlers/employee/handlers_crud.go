package employee

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quartermaster/internal/application/employee/usecases"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/id"
	"quartermaster/internal/shared/utils"
)

// parseEmployeeSID validates the prefixed employee ID from the URL (e.g., "emp_xK9mP2vL3nQ").
func parseEmployeeSID(c *gin.Context) (string, error) {
	sid := c.Param("id")
	if sid == "" {
		return "", errors.NewValidationError("employee ID is required")
	}

	if err := id.ValidatePrefix(sid, id.PrefixEmployee); err != nil {
		return "", errors.NewValidationError("invalid employee ID format, expected emp_xxxxx")
	}

	return sid, nil
}

// CreateEmployee handles POST /employee
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var cmd usecases.CreateEmployeeCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		h.logger.Warnw("invalid request body for create employee", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.createEmployeeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Employee created successfully")
}

// GetEmployee handles GET /employee/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	sid, err := parseEmployeeSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetEmployeeQuery{SID: sid}
	result, err := h.getEmployeeUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Employee retrieved successfully", result)
}

// ListEmployees handles GET /employee/allemployee
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	result, err := h.listEmployeesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Employees retrieved successfully", result)
}

// UpdateEmployee handles PUT /employee/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	sid, err := parseEmployeeSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var cmd usecases.UpdateEmployeeCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		h.logger.Warnw("invalid request body for update employee", "sid", sid, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}
	cmd.SID = sid

	result, err := h.updateEmployeeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Employee updated successfully", result)
}

// DeleteEmployee handles DELETE /employee/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	sid, err := parseEmployeeSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteEmployeeCommand{SID: sid}
	if err := h.deleteEmployeeUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Employee deleted successfully", nil)
}
