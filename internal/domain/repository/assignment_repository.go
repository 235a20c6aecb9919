package repository

import "github.com/jhoicas/Capacitaciones-api/internal/domain/entity"

// AssignmentRepository define el puerto de persistencia para Assignment (DIP).
//
// Create debe devolver domain.ErrDuplicate si ya existe una atribución para el
// par (EmployeeID, CourseID); el motor de asignación automática lo interpreta
// como "ya asignado" y continúa sin error.
type AssignmentRepository interface {
	Create(assignment *entity.Assignment) error
	GetByID(id string) (*entity.Assignment, error)
	Update(assignment *entity.Assignment) error
	List(limit, offset int) ([]*entity.Assignment, error)
	// ListByEmployee devuelve todas las atribuciones del empleado, sin filtrar
	// por tienda: el chequeo "ya asignado" se hace por empleado+curso para no
	// duplicar si el empleado cambia de tienda.
	ListByEmployee(employeeID string) ([]*entity.Assignment, error)
	ListByStore(storeID string) ([]*entity.Assignment, error)
	Delete(id string) error
}
