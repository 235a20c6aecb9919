package repository

import "github.com/jhoicas/Capacitaciones-api/internal/domain/entity"

// CourseRepository define el puerto de persistencia para Course (DIP).
// GetByID, List y ListByStore devuelven los cursos con RequiredFunctions cargado.
type CourseRepository interface {
	Create(course *entity.Course) error
	GetByID(id string) (*entity.Course, error)
	Update(course *entity.Course) error
	List(limit, offset int) ([]*entity.Course, error)
	ListByStore(storeID string) ([]*entity.Course, error)
	// ReplaceRequiredFunctions reemplaza el conjunto completo de cargos
	// obligatorios del curso.
	ReplaceRequiredFunctions(courseID string, functions []string) error
	Delete(id string) error
}
