package usecases

import (
	"context"
	"encoding/json"
	"testing"

	employeetestutil "quartermaster/internal/application/employee/testutil"
	parttestutil "quartermaster/internal/application/part/testutil"
	"quartermaster/internal/application/system/testutil"
	apperrors "quartermaster/internal/shared/errors"
)

type lifecycleFixture struct {
	create     *CreateSystemUseCase
	assign     *AssignSystemUseCase
	unassign   *UnassignSystemUseCase
	deallocate *DeallocateSystemUseCase
	get        *GetSystemUseCase
	list       *ListSystemsUseCase

	systemRepo   *testutil.MockSystemRepository
	partRepo     *parttestutil.MockPartRepository
	employeeRepo *employeetestutil.MockEmployeeRepository
}

func newLifecycleFixture() *lifecycleFixture {
	systemRepo := testutil.NewMockSystemRepository()
	partRepo := parttestutil.NewMockPartRepository()
	employeeRepo := employeetestutil.NewMockEmployeeRepository()
	txManager := testutil.NewMockTransactionManager()
	log := testutil.NewMockLogger()

	return &lifecycleFixture{
		create:       NewCreateSystemUseCase(systemRepo, partRepo, employeeRepo, txManager, log),
		assign:       NewAssignSystemUseCase(systemRepo, partRepo, employeeRepo, log),
		unassign:     NewUnassignSystemUseCase(systemRepo, partRepo, employeeRepo, log),
		deallocate:   NewDeallocateSystemUseCase(systemRepo, partRepo, employeeRepo, log),
		get:          NewGetSystemUseCase(systemRepo, partRepo, employeeRepo, log),
		list:         NewListSystemsUseCase(systemRepo, partRepo, employeeRepo, log),
		systemRepo:   systemRepo,
		partRepo:     partRepo,
		employeeRepo: employeeRepo,
	}
}

func (f *lifecycleFixture) buildAssignedSystem(t *testing.T) (systemSID string, employeeSID string) {
	t.Helper()

	p := seedPart(t, f.partRepo, "BC-001", "SN-001")
	e := seedEmployee(t, f.employeeRepo, "1001", "asha@example.com")

	created, err := f.create.Execute(context.Background(), CreateSystemCommand{
		Name:    "ws-01",
		PartIDs: []string{p.SID()},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.assign.Execute(context.Background(), AssignSystemCommand{
		SystemID:   created.ID,
		EmployeeID: e.SID(),
	}); err != nil {
		t.Fatalf("assign: %v", err)
	}
	return created.ID, e.SID()
}

func TestUnassignSystem_ClearsAssigneeKeepsParts(t *testing.T) {
	f := newLifecycleFixture()
	systemSID, _ := f.buildAssignedSystem(t)

	result, err := f.unassign.Execute(context.Background(), UnassignSystemCommand{SystemID: systemSID})
	if err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if result.Status != "unassigned" {
		t.Errorf("status = %v, want unassigned", result.Status)
	}
	if result.Employee != nil {
		t.Errorf("employee = %+v, want nil", result.Employee)
	}
	if result.PartCount != 1 {
		t.Errorf("part count = %v, want 1 (parts must stay claimed)", result.PartCount)
	}
}

func TestUnassignSystem_Idempotent(t *testing.T) {
	f := newLifecycleFixture()
	systemSID, _ := f.buildAssignedSystem(t)

	cmd := UnassignSystemCommand{SystemID: systemSID}
	if _, err := f.unassign.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("first unassign: %v", err)
	}
	result, err := f.unassign.Execute(context.Background(), cmd)
	if err != nil {
		t.Fatalf("second unassign should be a no-op, got %v", err)
	}
	if result.Status != "unassigned" {
		t.Errorf("status = %v, want unassigned", result.Status)
	}
}

func TestUnassignSystem_NotFound(t *testing.T) {
	f := newLifecycleFixture()

	_, err := f.unassign.Execute(context.Background(), UnassignSystemCommand{SystemID: "sys_missing"})
	if !apperrors.IsNotFoundError(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestDeallocateSystem_RetiresSystem(t *testing.T) {
	f := newLifecycleFixture()
	systemSID, employeeSID := f.buildAssignedSystem(t)

	result, err := f.deallocate.Execute(context.Background(), DeallocateSystemCommand{SystemID: systemSID})
	if err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if result.Status != "deallocated" {
		t.Errorf("status = %v, want deallocated", result.Status)
	}
	if result.Employee != nil {
		t.Errorf("employee = %+v, want nil after deallocation", result.Employee)
	}
	if result.PartCount != 1 {
		t.Errorf("part count = %v, want 1 (composition stays on record)", result.PartCount)
	}

	// The former assignee is free to receive another system.
	p2 := seedPart(t, f.partRepo, "BC-002", "SN-002")
	created, err := f.create.Execute(context.Background(), CreateSystemCommand{
		Name:    "ws-02",
		PartIDs: []string{p2.SID()},
	})
	if err != nil {
		t.Fatalf("create second system: %v", err)
	}
	if _, err := f.assign.Execute(context.Background(), AssignSystemCommand{
		SystemID:   created.ID,
		EmployeeID: employeeSID,
	}); err != nil {
		t.Fatalf("assigning freed employee should succeed, got %v", err)
	}
}

func TestDeallocateSystem_NotFound(t *testing.T) {
	f := newLifecycleFixture()

	_, err := f.deallocate.Execute(context.Background(), DeallocateSystemCommand{SystemID: "sys_missing"})
	if !apperrors.IsNotFoundError(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestGetSystem_ExpandsPartsAndEmployee(t *testing.T) {
	f := newLifecycleFixture()
	systemSID, employeeSID := f.buildAssignedSystem(t)

	result, err := f.get.Execute(context.Background(), GetSystemQuery{SID: systemSID})
	if err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if result.Employee == nil || result.Employee.ID != employeeSID {
		t.Errorf("employee = %+v, want %s", result.Employee, employeeSID)
	}
	if len(result.Parts) != 1 {
		t.Fatalf("parts = %d, want 1", len(result.Parts))
	}
	if !result.Parts[0].Assigned {
		t.Error("expanded part should report assigned")
	}
}

func TestGetSystem_DanglingAssigneeExpandsToNull(t *testing.T) {
	f := newLifecycleFixture()
	systemSID, employeeSID := f.buildAssignedSystem(t)

	emp, err := f.employeeRepo.GetBySID(context.Background(), employeeSID)
	if err != nil || emp == nil {
		t.Fatalf("get employee: %v", err)
	}
	if err := f.employeeRepo.Delete(context.Background(), emp.ID()); err != nil {
		t.Fatalf("delete employee: %v", err)
	}

	result, err := f.get.Execute(context.Background(), GetSystemQuery{SID: systemSID})
	if err != nil {
		t.Fatalf("read after assignee deletion should succeed, got %v", err)
	}
	if result.Employee != nil {
		t.Errorf("employee = %+v, want nil for dangling reference", result.Employee)
	}
}

func TestListSystems_Empty(t *testing.T) {
	f := newLifecycleFixture()

	result, err := f.list.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if result.Total != 0 {
		t.Errorf("total = %d, want 0", result.Total)
	}
}

func TestGetDashboardStats_CountsAndCaches(t *testing.T) {
	f := newLifecycleFixture()
	cache := testutil.NewMockStatsCache()
	stats := NewGetDashboardStatsUseCase(f.systemRepo, f.partRepo, f.employeeRepo, cache, testutil.NewMockLogger())

	f.buildAssignedSystem(t)

	result, err := stats.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if result.Systems != 1 || result.Parts != 1 || result.Employees != 1 {
		t.Errorf("counts = %+v, want 1/1/1", result)
	}

	// The computed result must now be served from cache.
	payload, found, err := cache.Get(context.Background(), "dashboard")
	if err != nil || !found {
		t.Fatalf("cache entry missing after compute: found=%v err=%v", found, err)
	}
	var cached DashboardStatsResult
	if err := json.Unmarshal(payload, &cached); err != nil {
		t.Fatalf("unmarshal cached stats: %v", err)
	}
	if cached != *result {
		t.Errorf("cached = %+v, want %+v", cached, *result)
	}
}

func TestGetDashboardStats_ServesFromCache(t *testing.T) {
	f := newLifecycleFixture()
	cache := testutil.NewMockStatsCache()
	stats := NewGetDashboardStatsUseCase(f.systemRepo, f.partRepo, f.employeeRepo, cache, testutil.NewMockLogger())

	seeded, _ := json.Marshal(DashboardStatsResult{Systems: 7, Parts: 42, Employees: 9})
	cache.Seed("dashboard", seeded)

	result, err := stats.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if result.Systems != 7 || result.Parts != 42 || result.Employees != 9 {
		t.Errorf("result = %+v, want cached values", result)
	}
}

func TestGetDashboardStats_CorruptCacheEntryFallsThrough(t *testing.T) {
	f := newLifecycleFixture()
	cache := testutil.NewMockStatsCache()
	stats := NewGetDashboardStatsUseCase(f.systemRepo, f.partRepo, f.employeeRepo, cache, testutil.NewMockLogger())

	cache.Seed("dashboard", []byte("not json"))
	f.buildAssignedSystem(t)

	result, err := stats.Execute(context.Background())
	if err != nil {
		t.Fatalf("corrupt cache entry must not fail the read, got %v", err)
	}
	if result.Systems != 1 {
		t.Errorf("systems = %d, want 1 from direct counts", result.Systems)
	}
}

func TestGetDashboardStats_CacheOutageFallsThrough(t *testing.T) {
	f := newLifecycleFixture()
	cache := testutil.NewMockStatsCache()
	cache.SetGetError(apperrors.NewInternalError("redis down"))
	cache.SetSetError(apperrors.NewInternalError("redis down"))
	stats := NewGetDashboardStatsUseCase(f.systemRepo, f.partRepo, f.employeeRepo, cache, testutil.NewMockLogger())

	f.buildAssignedSystem(t)

	result, err := stats.Execute(context.Background())
	if err != nil {
		t.Fatalf("cache outage must not fail the read, got %v", err)
	}
	if result.Systems != 1 {
		t.Errorf("systems = %d, want 1", result.Systems)
	}
}

func TestGetDashboardStats_NilCache(t *testing.T) {
	f := newLifecycleFixture()
	stats := NewGetDashboardStatsUseCase(f.systemRepo, f.partRepo, f.employeeRepo, nil, testutil.NewMockLogger())

	result, err := stats.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if result.Systems != 0 || result.Parts != 0 || result.Employees != 0 {
		t.Errorf("counts = %+v, want zeros", result)
	}
}
