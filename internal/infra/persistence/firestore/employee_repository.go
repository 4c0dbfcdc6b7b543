package firestore

import (
	"context"
	"log/slog"

	"github.com/ir-khan/inventory-management-system/config"
	"github.com/ir-khan/inventory-management-system/internal/domain/constants"
	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
	"github.com/ir-khan/inventory-management-system/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type employeeRepository struct {
	store
}

var _ repository.EmployeeRepository = (*employeeRepository)(nil)

// NewEmployeeRepository creates the Firestore-backed employee repository.
func NewEmployeeRepository(client *firestore.Client, cfg *config.Config, logger *slog.Logger) repository.EmployeeRepository {
	return &employeeRepository{store: newStore(client, cfg, logger)}
}

func (r *employeeRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionEmployees)
}

func (r *employeeRepository) AllocateID(ctx context.Context) (string, error) {
	return r.collection().NewDoc().ID, nil
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	if _, err := r.collection().Doc(employee.EID).Set(ctx, employee); err != nil {
		return classify("create employee", err)
	}

	return nil
}

func (r *employeeRepository) FindByEmployer(ctx context.Context, employerUID string) ([]*entity.Employee, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	iter := r.collection().Where("employerId", "==", employerUID).Documents(ctx)
	defer iter.Stop()

	var employees []*entity.Employee
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, classify("query employees", err)
		}

		var employee entity.Employee
		if err := doc.DataTo(&employee); err != nil {
			return nil, errors.Wrap(err, "failed to decode employee")
		}
		employees = append(employees, &employee)
	}

	return employees, nil
}

func (r *employeeRepository) Delete(ctx context.Context, eid string) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	if _, err := r.collection().Doc(eid).Delete(ctx); err != nil {
		return classify("delete employee", err)
	}

	return nil
}
