package usecase

import (
	"context"
	"time"

	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
)

// EmployeeUsecase defines the interface for employee directory operations.
type EmployeeUsecase interface {
	// Add creates an employee record and links it to the employer's profile.
	Add(ctx context.Context, employerUID string, input *AddEmployeeInput) (*entity.Employee, error)

	// List returns the employer's employees. References that no longer
	// resolve to a document are skipped.
	List(ctx context.Context, employerUID string) ([]*entity.Employee, error)

	// Remove deletes an employee record. The employer profile's reference
	// list is not rewritten; stale references are filtered on read.
	Remove(ctx context.Context, employerUID, employeeID string) error
}

// AddEmployeeInput defines the data required to register an employee.
type AddEmployeeInput struct {
	FirstName   string    `json:"firstName" validate:"required,min=1"`
	LastName    string    `json:"lastName" validate:"required,min=1"`
	Email       string    `json:"email" validate:"required,email"`
	Department  string    `json:"department" validate:"required,min=1"`
	JoiningDate time.Time `json:"joiningDate" validate:"required"`
	Password    string    `json:"password" validate:"required,min=6"`
}
