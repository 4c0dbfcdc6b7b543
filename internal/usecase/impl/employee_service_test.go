package impl

import (
	"context"
	"testing"
	"time"

	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
	domainerrors "github.com/ir-khan/inventory-management-system/internal/domain/errors"
	mockRepo "github.com/ir-khan/inventory-management-system/internal/mocks/repository"
	mockUC "github.com/ir-khan/inventory-management-system/internal/mocks/usecase"
	"github.com/ir-khan/inventory-management-system/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEmployeeService(t *testing.T) (
	usecase.EmployeeUsecase,
	*mockRepo.MockEmployeeRepository,
	*mockUC.MockProfileUsecase,
) {
	employees := mockRepo.NewMockEmployeeRepository(t)
	profiles := mockUC.NewMockProfileUsecase(t)

	service := NewEmployeeService(employees, profiles, newDiscardLogger())

	return service, employees, profiles
}

func addEmployeeInput() *usecase.AddEmployeeInput {
	return &usecase.AddEmployeeInput{
		FirstName:   "Noor",
		LastName:    "Khan",
		Email:       "noor@example.com",
		Department:  "Sales",
		JoiningDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Password:    "secret-pass",
	}
}

func TestEmployeeService_Add_Success(t *testing.T) {
	service, employees, profiles := createTestEmployeeService(t)
	ctx := context.Background()

	employees.EXPECT().AllocateID(ctx).Return("e1", nil).Once()

	var created *entity.Employee
	employees.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, employee *entity.Employee) { created = employee }).
		Return(nil).Once()

	profiles.EXPECT().
		AppendProfileRefs(ctx, "u1", entity.ProfileRefs{Employees: []string{"e1"}}).
		Return(nil).Once()

	employee, err := service.Add(ctx, "u1", addEmployeeInput())

	require.NoError(t, err)
	assert.Equal(t, "e1", employee.EID)
	assert.Equal(t, "u1", employee.EmployerID)

	require.NotNil(t, created)
	assert.Equal(t, "e1", created.EID)
	assert.Equal(t, "noor@example.com", created.Email)
}

func TestEmployeeService_Add_ProfileAppendFailure_StillSucceeds(t *testing.T) {
	service, employees, profiles := createTestEmployeeService(t)
	ctx := context.Background()

	employees.EXPECT().AllocateID(ctx).Return("e1", nil)
	employees.EXPECT().Create(ctx, mock.Anything).Return(nil)
	profiles.EXPECT().AppendProfileRefs(ctx, "u1", mock.Anything).
		Return(domainerrors.NewWriteError("users.appendRefs", assert.AnError))

	employee, err := service.Add(ctx, "u1", addEmployeeInput())

	require.NoError(t, err)
	assert.Equal(t, "e1", employee.EID)
}

func TestEmployeeService_Add_Validation(t *testing.T) {
	service, _, _ := createTestEmployeeService(t)
	ctx := context.Background()

	_, err := service.Add(ctx, "u1", nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	input := addEmployeeInput()
	input.Email = "not-an-email"
	_, err = service.Add(ctx, "u1", input)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	input = addEmployeeInput()
	input.Password = "tiny"
	_, err = service.Add(ctx, "u1", input)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestEmployeeService_List(t *testing.T) {
	service, employees, _ := createTestEmployeeService(t)
	ctx := context.Background()

	expected := []*entity.Employee{{EID: "e1"}, {EID: "e2"}}
	employees.EXPECT().FindByEmployer(ctx, "u1").Return(expected, nil)

	got, err := service.List(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestEmployeeService_Remove_Success(t *testing.T) {
	service, employees, _ := createTestEmployeeService(t)
	ctx := context.Background()

	employees.EXPECT().FindByEmployer(ctx, "u1").
		Return([]*entity.Employee{{EID: "e1", EmployerID: "u1"}}, nil)
	employees.EXPECT().Delete(ctx, "e1").Return(nil)

	require.NoError(t, service.Remove(ctx, "u1", "e1"))
}

func TestEmployeeService_Remove_NotOwned(t *testing.T) {
	service, employees, _ := createTestEmployeeService(t)
	ctx := context.Background()

	employees.EXPECT().FindByEmployer(ctx, "u1").
		Return([]*entity.Employee{{EID: "e1", EmployerID: "u1"}}, nil)

	// No Delete expectation: removing someone else's employee never reaches
	// the store.
	err := service.Remove(ctx, "u1", "e-other")

	assert.ErrorIs(t, err, domainerrors.ErrEmployeeNotFound)
}
