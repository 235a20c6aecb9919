package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Capacitaciones-api/internal/domain"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/entity"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación del puerto AssignmentRepository sobre PostgreSQL (usable con pool o tx).
// La tabla lleva UNIQUE (employee_id, course_id): el insert de un par repetido
// devuelve domain.ErrDuplicate y el motor lo trata como "ya asignado".
type AssignmentRepo struct {
	q Querier
}

// NewAssignmentRepository construye el adaptador de persistencia para atribuciones. Pasar pool o tx (Querier).
func NewAssignmentRepository(q Querier) *AssignmentRepo {
	return &AssignmentRepo{q: q}
}

// Create persiste una nueva atribución.
func (r *AssignmentRepo) Create(assignment *entity.Assignment) error {
	query := `
		INSERT INTO assignments (id, store_id, employee_id, course_id, status, assigned_at, completed_at, certificate_url, certificate_key, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		assignment.ID, assignment.StoreID, assignment.EmployeeID, assignment.CourseID,
		assignment.Status, assignment.AssignedAt, assignment.CompletedAt,
		assignment.CertificateURL, assignment.CertificateKey, assignment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// GetByID obtiene una atribución por ID.
func (r *AssignmentRepo) GetByID(id string) (*entity.Assignment, error) {
	query := `
		SELECT id, store_id, employee_id, course_id, status, assigned_at, completed_at, certificate_url, certificate_key, updated_at
		FROM assignments WHERE id = $1`
	var a entity.Assignment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.StoreID, &a.EmployeeID, &a.CourseID, &a.Status, &a.AssignedAt,
		&a.CompletedAt, &a.CertificateURL, &a.CertificateKey, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return &a, nil
}

// Update actualiza una atribución existente (estado, fecha de conclusión, certificado).
func (r *AssignmentRepo) Update(assignment *entity.Assignment) error {
	query := `
		UPDATE assignments SET status = $2, completed_at = $3, certificate_url = $4, certificate_key = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		assignment.ID, assignment.Status, assignment.CompletedAt,
		assignment.CertificateURL, assignment.CertificateKey, assignment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}
	return nil
}

// List lista atribuciones con paginación.
func (r *AssignmentRepo) List(limit, offset int) ([]*entity.Assignment, error) {
	query := `
		SELECT id, store_id, employee_id, course_id, status, assigned_at, completed_at, certificate_url, certificate_key, updated_at
		FROM assignments ORDER BY assigned_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()
	return scanAssignments(rows)
}

// ListByEmployee lista todas las atribuciones del empleado, sin filtrar por tienda.
func (r *AssignmentRepo) ListByEmployee(employeeID string) ([]*entity.Assignment, error) {
	query := `
		SELECT id, store_id, employee_id, course_id, status, assigned_at, completed_at, certificate_url, certificate_key, updated_at
		FROM assignments WHERE employee_id = $1 ORDER BY assigned_at DESC`
	rows, err := r.q.Query(context.Background(), query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list assignments by employee: %w", err)
	}
	defer rows.Close()
	return scanAssignments(rows)
}

// ListByStore lista todas las atribuciones de una tienda.
func (r *AssignmentRepo) ListByStore(storeID string) ([]*entity.Assignment, error) {
	query := `
		SELECT id, store_id, employee_id, course_id, status, assigned_at, completed_at, certificate_url, certificate_key, updated_at
		FROM assignments WHERE store_id = $1 ORDER BY assigned_at DESC`
	rows, err := r.q.Query(context.Background(), query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list assignments by store: %w", err)
	}
	defer rows.Close()
	return scanAssignments(rows)
}

// Delete elimina una atribución por ID.
func (r *AssignmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

func scanAssignments(rows pgx.Rows) ([]*entity.Assignment, error) {
	var list []*entity.Assignment
	for rows.Next() {
		var a entity.Assignment
		if err := rows.Scan(&a.ID, &a.StoreID, &a.EmployeeID, &a.CourseID, &a.Status, &a.AssignedAt,
			&a.CompletedAt, &a.CertificateURL, &a.CertificateKey, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
