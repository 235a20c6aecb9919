package repository

import "github.com/jhoicas/Capacitaciones-api/internal/domain/entity"

// StoreRepository define el puerto de persistencia para Store (DIP).
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	Update(store *entity.Store) error
	List() ([]*entity.Store, error)
	// ListByBrand devuelve las tiendas compatibles con una marca concreta
	// (las de esa marca más las que comercializan ambas).
	ListByBrand(brand string) ([]*entity.Store, error)
	Delete(id string) error
}
