package usecases

import (
	"context"
	"testing"

	employeetestutil "quartermaster/internal/application/employee/testutil"
	parttestutil "quartermaster/internal/application/part/testutil"
	"quartermaster/internal/application/system/testutil"
	apperrors "quartermaster/internal/shared/errors"
)

type assignFixture struct {
	create *CreateSystemUseCase
	assign *AssignSystemUseCase

	systemRepo   *testutil.MockSystemRepository
	partRepo     *parttestutil.MockPartRepository
	employeeRepo *employeetestutil.MockEmployeeRepository
}

func newAssignFixture() *assignFixture {
	systemRepo := testutil.NewMockSystemRepository()
	partRepo := parttestutil.NewMockPartRepository()
	employeeRepo := employeetestutil.NewMockEmployeeRepository()
	txManager := testutil.NewMockTransactionManager()
	log := testutil.NewMockLogger()

	return &assignFixture{
		create:       NewCreateSystemUseCase(systemRepo, partRepo, employeeRepo, txManager, log),
		assign:       NewAssignSystemUseCase(systemRepo, partRepo, employeeRepo, log),
		systemRepo:   systemRepo,
		partRepo:     partRepo,
		employeeRepo: employeeRepo,
	}
}

func (f *assignFixture) buildSystem(t *testing.T, name, barcode, serial string) string {
	t.Helper()

	p := seedPart(t, f.partRepo, barcode, serial)
	result, err := f.create.Execute(context.Background(), CreateSystemCommand{
		Name:    name,
		PartIDs: []string{p.SID()},
	})
	if err != nil {
		t.Fatalf("create system %s: %v", name, err)
	}
	return result.ID
}

func TestAssignSystem_Success(t *testing.T) {
	f := newAssignFixture()

	systemSID := f.buildSystem(t, "ws-01", "BC-001", "SN-001")
	e := seedEmployee(t, f.employeeRepo, "1001", "asha@example.com")

	result, err := f.assign.Execute(context.Background(), AssignSystemCommand{
		SystemID:   systemSID,
		EmployeeID: e.SID(),
	})
	if err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if result.System.Status != "assigned" {
		t.Errorf("system status = %v, want assigned", result.System.Status)
	}
	if result.Employee == nil || result.Employee.ID != e.SID() {
		t.Fatalf("result.Employee = %+v, want employee %s", result.Employee, e.SID())
	}
	if result.Employee.AllocatedSystem == nil || result.Employee.AllocatedSystem.ID != systemSID {
		t.Errorf("employee.AllocatedSystem = %v, want %v", result.Employee.AllocatedSystem, systemSID)
	}
	if result.Employee.AllocatedSystem != nil && result.Employee.AllocatedSystem.PartCount != 1 {
		t.Errorf("employee.AllocatedSystem.PartCount = %v, want 1", result.Employee.AllocatedSystem.PartCount)
	}
	if result.System.PartCount != 1 {
		t.Errorf("system.PartCount = %v, want 1", result.System.PartCount)
	}
}

func TestAssignSystem_SamePairIsIdempotent(t *testing.T) {
	f := newAssignFixture()

	systemSID := f.buildSystem(t, "ws-01", "BC-001", "SN-001")
	e := seedEmployee(t, f.employeeRepo, "1001", "asha@example.com")

	cmd := AssignSystemCommand{SystemID: systemSID, EmployeeID: e.SID()}
	if _, err := f.assign.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	if _, err := f.assign.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("re-assigning the same pair should succeed, got %v", err)
	}
}

func TestAssignSystem_SystemNotFound(t *testing.T) {
	f := newAssignFixture()
	e := seedEmployee(t, f.employeeRepo, "1001", "asha@example.com")

	_, err := f.assign.Execute(context.Background(), AssignSystemCommand{
		SystemID:   "sys_missing",
		EmployeeID: e.SID(),
	})
	if !apperrors.IsNotFoundError(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestAssignSystem_EmployeeNotFound(t *testing.T) {
	f := newAssignFixture()
	systemSID := f.buildSystem(t, "ws-01", "BC-001", "SN-001")

	_, err := f.assign.Execute(context.Background(), AssignSystemCommand{
		SystemID:   systemSID,
		EmployeeID: "emp_missing",
	})
	if !apperrors.IsNotFoundError(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestAssignSystem_EmployeeHoldsOtherSystem(t *testing.T) {
	f := newAssignFixture()

	first := f.buildSystem(t, "ws-01", "BC-001", "SN-001")
	second := f.buildSystem(t, "ws-02", "BC-002", "SN-002")
	e := seedEmployee(t, f.employeeRepo, "1001", "asha@example.com")

	if _, err := f.assign.Execute(context.Background(), AssignSystemCommand{
		SystemID:   first,
		EmployeeID: e.SID(),
	}); err != nil {
		t.Fatalf("first assign: %v", err)
	}

	_, err := f.assign.Execute(context.Background(), AssignSystemCommand{
		SystemID:   second,
		EmployeeID: e.SID(),
	})
	if !apperrors.IsConflictError(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestAssignSystem_SystemHeldByOtherEmployee(t *testing.T) {
	f := newAssignFixture()

	systemSID := f.buildSystem(t, "ws-01", "BC-001", "SN-001")
	e1 := seedEmployee(t, f.employeeRepo, "1001", "asha@example.com")
	e2 := seedEmployee(t, f.employeeRepo, "1002", "ravi@example.com")

	if _, err := f.assign.Execute(context.Background(), AssignSystemCommand{
		SystemID:   systemSID,
		EmployeeID: e1.SID(),
	}); err != nil {
		t.Fatalf("first assign: %v", err)
	}

	_, err := f.assign.Execute(context.Background(), AssignSystemCommand{
		SystemID:   systemSID,
		EmployeeID: e2.SID(),
	})
	if !apperrors.IsConflictError(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestAssignSystem_MissingInput(t *testing.T) {
	f := newAssignFixture()

	_, err := f.assign.Execute(context.Background(), AssignSystemCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Fields["system_id"] == "" || appErr.Fields["employee_id"] == "" {
		t.Errorf("expected field errors for both ids, got %+v", appErr.Fields)
	}
}
