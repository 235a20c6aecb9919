package autoassign

import (
	"context"

	"github.com/jhoicas/Capacitaciones-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que cada reconciliación de atribuciones sea atómica:
// o se aplican todas las altas/bajas calculadas, o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		assignmentRepo repository.AssignmentRepository,
		courseRepo repository.CourseRepository,
		employeeRepo repository.EmployeeRepository,
		storeRepo repository.StoreRepository,
	) error) error
}
