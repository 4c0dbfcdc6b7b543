package repository

import (
	"context"

	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
)

// EmployeeRepository defines the standard operations for employee
// persistence. Creation is two-phase: AllocateID first, then Create with the
// allocated id, so a failed write leaves no half-initialized record.
type EmployeeRepository interface {
	// AllocateID reserves a fresh document id without writing anything.
	AllocateID(ctx context.Context) (string, error)

	// Create writes the employee document under its pre-allocated id.
	Create(ctx context.Context, employee *entity.Employee) error

	// FindByEmployer lists all employees belonging to the given employer.
	FindByEmployer(ctx context.Context, employerUID string) ([]*entity.Employee, error)

	// Delete removes the employee document. The employer profile's reference
	// list is not retracted here; readers drop ids that no longer resolve.
	Delete(ctx context.Context, eid string) error
}
