package repository

import "github.com/jhoicas/Capacitaciones-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	List(limit, offset int) ([]*entity.Employee, error)
	ListByStore(storeID string) ([]*entity.Employee, error)
	Delete(id string) error
}
