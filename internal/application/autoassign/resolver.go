package autoassign

import (
	"github.com/jhoicas/Capacitaciones-api/internal/domain/entity"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/repository"
)

// storesForBrand resuelve las tiendas elegibles para la marca de un curso.
// La marca AMBOS resuelve a todas las tiendas; FORD/GWM resuelven a las tiendas
// de esa marca más las que comercializan ambas. La elegibilidad se deriva del
// atributo Brand de cada tienda, no de una tabla fija de IDs.
//
// Una marca desconocida es un error de captura de datos, no debe tumbar la
// creación del curso: se registra un warn y se resuelve a conjunto vacío.
func (uc *ReconcileUseCase) storesForBrand(storeRepo repository.StoreRepository, brand string) ([]*entity.Store, error) {
	switch brand {
	case entity.BrandAmbos:
		return storeRepo.List()
	case entity.BrandFord, entity.BrandGWM:
		return storeRepo.ListByBrand(brand)
	default:
		uc.log.Warn().Str("brand", brand).Msg("marca desconocida, se resuelve a cero tiendas")
		return nil, nil
	}
}

// brandMatches indica si un curso de marca courseBrand aplica a una tienda de
// marca storeBrand. AMBOS en cualquiera de los dos lados es compatible con todo.
func brandMatches(courseBrand, storeBrand string) bool {
	switch courseBrand {
	case entity.BrandAmbos:
		return true
	case entity.BrandFord, entity.BrandGWM:
		return storeBrand == courseBrand || storeBrand == entity.BrandAmbos
	default:
		return false
	}
}
