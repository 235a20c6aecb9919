package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Capacitaciones-api/internal/application/autoassign"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/repository"
)

// Ensure TxRunner implements autoassign.TxRunner.
var _ autoassign.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	assignmentRepo repository.AssignmentRepository,
	courseRepo repository.CourseRepository,
	employeeRepo repository.EmployeeRepository,
	storeRepo repository.StoreRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	assignmentRepo := NewAssignmentRepository(tx)
	courseRepo := NewCourseRepository(tx)
	employeeRepo := NewEmployeeRepository(tx)
	storeRepo := NewStoreRepository(tx)

	if err := fn(assignmentRepo, courseRepo, employeeRepo, storeRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
