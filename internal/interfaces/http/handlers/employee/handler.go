// Package employee provides HTTP handlers for employee management.
package employee

import (
	"quartermaster/internal/application/employee/usecases"
	"quartermaster/internal/shared/logger"
)

// EmployeeHandler handles HTTP requests for employees.
type EmployeeHandler struct {
	createEmployeeUC *usecases.CreateEmployeeUseCase
	getEmployeeUC    *usecases.GetEmployeeUseCase
	listEmployeesUC  *usecases.ListEmployeesUseCase
	updateEmployeeUC *usecases.UpdateEmployeeUseCase
	deleteEmployeeUC *usecases.DeleteEmployeeUseCase
	logger           logger.Interface
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(
	createEmployeeUC *usecases.CreateEmployeeUseCase,
	getEmployeeUC *usecases.GetEmployeeUseCase,
	listEmployeesUC *usecases.ListEmployeesUseCase,
	updateEmployeeUC *usecases.UpdateEmployeeUseCase,
	deleteEmployeeUC *usecases.DeleteEmployeeUseCase,
) *EmployeeHandler {
	return &EmployeeHandler{
		createEmployeeUC: createEmployeeUC,
		getEmployeeUC:    getEmployeeUC,
		listEmployeesUC:  listEmployeesUC,
		updateEmployeeUC: updateEmployeeUC,
		deleteEmployeeUC: deleteEmployeeUC,
		logger:           logger.NewLogger(),
	}
}
