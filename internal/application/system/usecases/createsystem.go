package usecases

import (
	"context"
	"fmt"
	"strings"

	"quartermaster/internal/application/system/dto"
	"quartermaster/internal/domain/employee"
	"quartermaster/internal/domain/part"
	"quartermaster/internal/domain/system"
	vo "quartermaster/internal/domain/system/valueobjects"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/id"
	"quartermaster/internal/shared/logger"
)

// TransactionManager runs a function inside a database transaction carried
// through the context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CreateSystemCommand represents the input for assembling a system.
type CreateSystemCommand struct {
	Name       string   `json:"name"`
	PartIDs    []string `json:"parts"`
	EmployeeID *string  `json:"assigned_to"`
	Status     string   `json:"status"`
}

// CreateSystemUseCase assembles a system from unclaimed parts, optionally
// assigning it to an employee in the same step.
type CreateSystemUseCase struct {
	systemRepo   system.Repository
	partRepo     part.Repository
	employeeRepo employee.Repository
	txManager    TransactionManager
	logger       logger.Interface
}

// NewCreateSystemUseCase creates a new CreateSystemUseCase.
func NewCreateSystemUseCase(
	systemRepo system.Repository,
	partRepo part.Repository,
	employeeRepo employee.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateSystemUseCase {
	return &CreateSystemUseCase{
		systemRepo:   systemRepo,
		partRepo:     partRepo,
		employeeRepo: employeeRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute validates the build, then inserts the system and claims every
// part in one transaction. The claim is a conditional update that only
// matches unclaimed parts, so two concurrent builds over overlapping part
// sets cannot both succeed; the loser rolls back and no half-built system
// survives.
func (uc *CreateSystemUseCase) Execute(ctx context.Context, cmd CreateSystemCommand) (*dto.SystemDTO, error) {
	uc.logger.Infow("executing create system use case", "name", cmd.Name, "part_count", len(cmd.PartIDs))

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create system command", "error", err)
		return nil, err
	}

	parts, err := uc.resolveParts(ctx, cmd.PartIDs)
	if err != nil {
		return nil, err
	}

	assignee, err := uc.resolveEmployee(ctx, cmd.EmployeeID)
	if err != nil {
		return nil, err
	}

	partIDs := make([]uint, len(parts))
	for i, p := range parts {
		partIDs[i] = p.ID()
	}

	var employeeID *uint
	if assignee != nil {
		eid := assignee.ID()
		employeeID = &eid
	}

	newSystem, err := system.NewSystem(
		cmd.Name,
		partIDs,
		employeeID,
		vo.SystemStatus(cmd.Status),
		id.NewSystemID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create system entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.systemRepo.Create(txCtx, newSystem); err != nil {
			return err
		}
		return uc.partRepo.ClaimForSystem(txCtx, partIDs, newSystem.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to persist system", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("system created successfully",
		"id", newSystem.ID(),
		"sid", newSystem.SID(),
		"parts", len(partIDs),
	)
	return dto.ToSystemDTO(newSystem, parts, assignee), nil
}

func (uc *CreateSystemUseCase) validateCommand(cmd CreateSystemCommand) error {
	fields := make(map[string]string)

	if cmd.Name == "" {
		fields["name"] = "name is required"
	}
	if len(cmd.PartIDs) == 0 {
		fields["parts"] = "at least one part is required"
	}
	status := vo.SystemStatus(cmd.Status)
	switch {
	case cmd.Status != "" && !status.IsValid():
		fields["status"] = fmt.Sprintf("invalid status: %s", cmd.Status)
	case status == vo.SystemStatusAssigned && cmd.EmployeeID == nil:
		fields["status"] = "status cannot be assigned without an employee"
	case status != vo.SystemStatusAssigned && cmd.EmployeeID != nil:
		fields["status"] = "status must be assigned when an employee is given"
	}

	if len(fields) > 0 {
		return errors.NewFieldValidationError(fields)
	}
	return nil
}

// resolveParts loads every requested part and rejects the build when any
// part is missing or already claimed. Conflicts name barcodes so the
// operator can see which physical components are taken.
func (uc *CreateSystemUseCase) resolveParts(ctx context.Context, sids []string) ([]*part.Part, error) {
	parts, err := uc.partRepo.GetBySIDs(ctx, sids)
	if err != nil {
		uc.logger.Errorw("failed to resolve parts", "error", err)
		return nil, err
	}

	bySID := make(map[string]*part.Part, len(parts))
	for _, p := range parts {
		bySID[p.SID()] = p
	}

	var missing []string
	var claimed []string
	ordered := make([]*part.Part, 0, len(sids))
	for _, sid := range sids {
		p, ok := bySID[sid]
		if !ok {
			missing = append(missing, sid)
			continue
		}
		if p.IsAssigned() {
			claimed = append(claimed, p.Barcode())
		}
		ordered = append(ordered, p)
	}

	if len(missing) > 0 {
		return nil, errors.NewFieldValidationError(map[string]string{
			"parts": fmt.Sprintf("parts not found: %s", strings.Join(missing, ", ")),
		})
	}
	if len(claimed) > 0 {
		return nil, errors.NewFieldConflictError(
			"parts",
			fmt.Sprintf("parts already assigned to a system: %s", strings.Join(claimed, ", ")),
		)
	}

	return ordered, nil
}

func (uc *CreateSystemUseCase) resolveEmployee(ctx context.Context, employeeSID *string) (*employee.Employee, error) {
	if employeeSID == nil {
		return nil, nil
	}

	assignee, err := uc.employeeRepo.GetBySID(ctx, *employeeSID)
	if err != nil {
		uc.logger.Errorw("failed to resolve employee", "sid", *employeeSID, "error", err)
		return nil, err
	}
	if assignee == nil {
		return nil, errors.NewFieldValidationError(map[string]string{
			"assigned_to": "employee not found",
		})
	}

	held, err := uc.systemRepo.FindByAssignedEmployee(ctx, assignee.ID())
	if err != nil {
		uc.logger.Errorw("failed to check employee allocation", "sid", *employeeSID, "error", err)
		return nil, err
	}
	if held != nil {
		return nil, errors.NewFieldConflictError("assigned_to", "employee already has an allocated system")
	}

	return assignee, nil
}
