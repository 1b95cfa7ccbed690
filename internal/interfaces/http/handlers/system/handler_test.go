package system

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	employeedto "quartermaster/internal/application/employee/dto"
	employeetestutil "quartermaster/internal/application/employee/testutil"
	employeeUsecases "quartermaster/internal/application/employee/usecases"
	partdto "quartermaster/internal/application/part/dto"
	parttestutil "quartermaster/internal/application/part/testutil"
	partUsecases "quartermaster/internal/application/part/usecases"
	"quartermaster/internal/application/system/dto"
	systemtestutil "quartermaster/internal/application/system/testutil"
	"quartermaster/internal/application/system/usecases"
	"quartermaster/internal/interfaces/http/handlers/testutil"
)

type handlerFixture struct {
	handler      *SystemHandler
	partRepo     *parttestutil.MockPartRepository
	employeeRepo *employeetestutil.MockEmployeeRepository
	systemRepo   *systemtestutil.MockSystemRepository
	createPartUC *partUsecases.CreatePartUseCase
	createEmpUC  *employeeUsecases.CreateEmployeeUseCase
}

func newHandlerFixture() *handlerFixture {
	partRepo := parttestutil.NewMockPartRepository()
	employeeRepo := employeetestutil.NewMockEmployeeRepository()
	systemRepo := systemtestutil.NewMockSystemRepository()
	txManager := systemtestutil.NewMockTransactionManager()
	statsCache := systemtestutil.NewMockStatsCache()
	log := systemtestutil.NewMockLogger()

	handler := NewSystemHandler(
		usecases.NewCreateSystemUseCase(systemRepo, partRepo, employeeRepo, txManager, log),
		usecases.NewGetSystemUseCase(systemRepo, partRepo, employeeRepo, log),
		usecases.NewListSystemsUseCase(systemRepo, partRepo, employeeRepo, log),
		usecases.NewAssignSystemUseCase(systemRepo, partRepo, employeeRepo, log),
		usecases.NewUnassignSystemUseCase(systemRepo, partRepo, employeeRepo, log),
		usecases.NewDeallocateSystemUseCase(systemRepo, partRepo, employeeRepo, log),
		usecases.NewGetDashboardStatsUseCase(systemRepo, partRepo, employeeRepo, statsCache, log),
	)

	return &handlerFixture{
		handler:      handler,
		partRepo:     partRepo,
		employeeRepo: employeeRepo,
		systemRepo:   systemRepo,
		createPartUC: partUsecases.NewCreatePartUseCase(partRepo, log),
		createEmpUC:  employeeUsecases.NewCreateEmployeeUseCase(employeeRepo, log),
	}
}

func (f *handlerFixture) seedPart(t *testing.T, n int) *partdto.PartDTO {
	t.Helper()

	created, err := f.createPartUC.Execute(context.Background(), partUsecases.CreatePartCommand{
		Type:         "CPU",
		Barcode:      fmt.Sprintf("BC-%04d", n),
		SerialNumber: fmt.Sprintf("SN-%04d", n),
		Brand:        "Intel",
		Model:        "i7-12700K",
	})
	require.NoError(t, err)
	return created
}

func (f *handlerFixture) seedEmployee(t *testing.T, n int) *employeedto.EmployeeDTO {
	t.Helper()

	created, err := f.createEmpUC.Execute(context.Background(), employeeUsecases.CreateEmployeeCommand{
		Name:        "Dana Whitfield",
		Number:      fmt.Sprintf("%d", 2000+n),
		Email:       fmt.Sprintf("emp%d@example.com", n),
		Department:  "Engineering",
		Designation: "Backend Engineer",
		Phone:       "9876543210",
	})
	require.NoError(t, err)
	return created
}

func (f *handlerFixture) createSystem(t *testing.T, partIDs []string) *dto.SystemDTO {
	t.Helper()

	c, w := testutil.NewTestContext(http.MethodPost, "/system", gin.H{
		"name":  "Workstation-01",
		"parts": partIDs,
	})
	f.handler.CreateSystem(c)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var created dto.SystemDTO
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	return &created
}

func TestSystemHandler_CreateSystem(t *testing.T) {
	f := newHandlerFixture()
	p1 := f.seedPart(t, 1)
	p2 := f.seedPart(t, 2)

	created := f.createSystem(t, []string{p1.ID, p2.ID})

	assert.Contains(t, created.ID, "sys_")
	assert.Equal(t, "unassigned", created.Status)
	assert.Equal(t, 2, created.PartCount)
}

func TestSystemHandler_CreateSystem_FieldValidation(t *testing.T) {
	f := newHandlerFixture()

	c, w := testutil.NewTestContext(http.MethodPost, "/system", gin.H{})
	f.handler.CreateSystem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, resp.Errors, "name")
	assert.Contains(t, resp.Errors, "parts")
}

func TestSystemHandler_CreateSystem_ClaimedPartConflict(t *testing.T) {
	f := newHandlerFixture()
	p1 := f.seedPart(t, 3)
	f.createSystem(t, []string{p1.ID})

	c, w := testutil.NewTestContext(http.MethodPost, "/system", gin.H{
		"name":  "Workstation-02",
		"parts": []string{p1.ID},
	})
	f.handler.CreateSystem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, resp.Errors, "parts")
	assert.Contains(t, resp.Errors["parts"], p1.Barcode)
}

func TestSystemHandler_AssignSystem(t *testing.T) {
	f := newHandlerFixture()
	p1 := f.seedPart(t, 4)
	sys := f.createSystem(t, []string{p1.ID})
	emp := f.seedEmployee(t, 1)

	c, w := testutil.NewTestContext(http.MethodPost, "/system/assign", gin.H{
		"system_id":   sys.ID,
		"employee_id": emp.ID,
	})
	f.handler.AssignSystem(c)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var result dto.AssignmentDTO
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	require.NotNil(t, result.Employee)
	require.NotNil(t, result.System)
	assert.Equal(t, "assigned", result.System.Status)
	require.NotNil(t, result.Employee.AllocatedSystem)
	assert.Equal(t, sys.ID, result.Employee.AllocatedSystem.ID)
	assert.Equal(t, 1, result.Employee.AllocatedSystem.PartCount)
}

func TestSystemHandler_AssignSystem_MissingInput(t *testing.T) {
	f := newHandlerFixture()

	c, w := testutil.NewTestContext(http.MethodPost, "/system/assign", gin.H{})
	f.handler.AssignSystem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, resp.Errors, "system_id")
	assert.Contains(t, resp.Errors, "employee_id")
}

func TestSystemHandler_UnassignSystem(t *testing.T) {
	f := newHandlerFixture()
	p1 := f.seedPart(t, 5)
	sys := f.createSystem(t, []string{p1.ID})
	emp := f.seedEmployee(t, 2)

	c, w := testutil.NewTestContext(http.MethodPost, "/system/assign", gin.H{
		"system_id":   sys.ID,
		"employee_id": emp.ID,
	})
	f.handler.AssignSystem(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodPatch, "/system/unassign/"+sys.ID, nil)
	testutil.SetURLParam(c, "systemId", sys.ID)
	f.handler.UnassignSystem(c)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var result dto.SystemDTO
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, "unassigned", result.Status)
	assert.Nil(t, result.Employee)
	assert.Equal(t, 1, result.PartCount)
}

func TestSystemHandler_UnassignSystem_InvalidID(t *testing.T) {
	f := newHandlerFixture()

	c, w := testutil.NewTestContext(http.MethodPatch, "/system/unassign/prt_wrong", nil)
	testutil.SetURLParam(c, "systemId", "prt_wrong")
	f.handler.UnassignSystem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSystemHandler_DeallocateSystem(t *testing.T) {
	f := newHandlerFixture()
	p1 := f.seedPart(t, 6)
	sys := f.createSystem(t, []string{p1.ID})

	c, w := testutil.NewTestContext(http.MethodPatch, "/system/deallocate/"+sys.ID, nil)
	testutil.SetURLParam(c, "systemId", sys.ID)
	f.handler.DeallocateSystem(c)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var result dto.SystemDTO
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, "deallocated", result.Status)
}

func TestSystemHandler_GetSystem_NotFound(t *testing.T) {
	f := newHandlerFixture()

	c, w := testutil.NewTestContext(http.MethodGet, "/system/sys_missing0001", nil)
	testutil.SetURLParam(c, "id", "sys_missing0001")
	f.handler.GetSystem(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSystemHandler_ListSystems(t *testing.T) {
	f := newHandlerFixture()
	p1 := f.seedPart(t, 7)
	p2 := f.seedPart(t, 8)
	f.createSystem(t, []string{p1.ID})
	f.createSystem(t, []string{p2.ID})

	c, w := testutil.NewTestContext(http.MethodGet, "/system/allsys", nil)
	f.handler.ListSystems(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var result usecases.ListSystemsResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, 2, result.Total)
}

func TestSystemHandler_GetDashboardStats(t *testing.T) {
	f := newHandlerFixture()
	p1 := f.seedPart(t, 9)
	f.seedPart(t, 10)
	f.createSystem(t, []string{p1.ID})
	f.seedEmployee(t, 3)

	c, w := testutil.NewTestContext(http.MethodGet, "/system/stats", nil)
	f.handler.GetDashboardStats(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var stats usecases.DashboardStatsResult
	require.NoError(t, json.Unmarshal(resp.Data, &stats))
	assert.Equal(t, int64(1), stats.Systems)
	assert.Equal(t, int64(2), stats.Parts)
	assert.Equal(t, int64(1), stats.Employees)
}
