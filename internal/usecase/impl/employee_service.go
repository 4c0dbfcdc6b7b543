package impl

import (
	"context"
	"log/slog"

	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
	domainerrors "github.com/ir-khan/inventory-management-system/internal/domain/errors"
	"github.com/ir-khan/inventory-management-system/internal/domain/repository"
	"github.com/ir-khan/inventory-management-system/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// employeeService implements the EmployeeUsecase interface.
type employeeService struct {
	employees repository.EmployeeRepository
	profiles  usecase.ProfileUsecase
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewEmployeeService is the constructor for employeeService.
func NewEmployeeService(
	employees repository.EmployeeRepository,
	profiles usecase.ProfileUsecase,
	logger *slog.Logger,
) usecase.EmployeeUsecase {
	return &employeeService{
		employees: employees,
		profiles:  profiles,
		validate:  validator.New(),
		logger:    logger,
	}
}

// Add creates an employee record and links it to the employer's profile.
// Creation is two-phase: the id is allocated first, then the record is
// written under it, so a failed write leaves nothing half-initialized.
func (srv *employeeService) Add(ctx context.Context, employerUID string, input *usecase.AddEmployeeInput) (*entity.Employee, error) {
	if input == nil {
		return nil, domainerrors.ErrValidation.WrapMessage("missing employee payload")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidation.WrapMessage(err.Error())
	}

	eid, err := srv.employees.AllocateID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate employee id")
	}

	employee := &entity.Employee{
		EID:         eid,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		EmployerID:  employerUID,
		Department:  input.Department,
		JoiningDate: input.JoiningDate,
		Password:    input.Password,
	}

	if err := srv.employees.Create(ctx, employee); err != nil {
		return nil, errors.Wrap(err, "failed to create employee")
	}

	refs := entity.ProfileRefs{Employees: []string{eid}}
	if err := srv.profiles.AppendProfileRefs(ctx, employerUID, refs); err != nil {
		srv.logger.Warn("Employee created but profile append failed",
			slog.String("employerId", employerUID),
			slog.String("eid", eid),
			slog.Any("error", err),
		)
	}

	srv.logger.Info("Employee added",
		slog.String("employerId", employerUID),
		slog.String("eid", eid),
	)

	return employee, nil
}

// List returns the employer's employees from the employee collection.
// The profile's reference list may contain ids of deleted employees; those
// simply never show up here because the query hits the collection directly.
func (srv *employeeService) List(ctx context.Context, employerUID string) ([]*entity.Employee, error) {
	employees, err := srv.employees.FindByEmployer(ctx, employerUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	return employees, nil
}

// Remove deletes an employee record after checking it belongs to the caller.
// The employer profile's reference list is left as-is.
func (srv *employeeService) Remove(ctx context.Context, employerUID, employeeID string) error {
	employees, err := srv.employees.FindByEmployer(ctx, employerUID)
	if err != nil {
		return errors.Wrap(err, "failed to verify employee ownership")
	}

	owned := false
	for _, e := range employees {
		if e.EID == employeeID {
			owned = true

			break
		}
	}
	if !owned {
		return domainerrors.ErrEmployeeNotFound.WrapMessage("employee not found: " + employeeID)
	}

	if err := srv.employees.Delete(ctx, employeeID); err != nil {
		return errors.Wrap(err, "failed to delete employee")
	}

	srv.logger.Info("Employee removed",
		slog.String("employerId", employerUID),
		slog.String("eid", employeeID),
	)

	return nil
}
