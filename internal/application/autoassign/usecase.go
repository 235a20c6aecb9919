// Package autoassign implementa el motor de asignación automática de cursos:
// dada la marca o los cargos obligatorios de un curso y la plantilla de una
// tienda, calcula qué atribuciones (empleado, curso) deben existir y concilia
// ese conjunto contra lo persistido, creando y retirando registros.
//
// Reglas que el motor garantiza:
//   - Idempotencia: repetir una conciliación sin cambios de estado no crea nada.
//   - A lo sumo una atribución por par (empleado, curso); una violación del
//     constraint único se trata como "ya asignado" y no como error.
//   - Las atribuciones concluidas nunca se eliminan por cambio de marca.
//   - Un curso con AutoAssign en false queda fuera de toda conciliación.
package autoassign

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Capacitaciones-api/internal/domain"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/entity"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/repository"
	"github.com/jhoicas/Capacitaciones-api/pkg/logger"
)

// ReconcileUseCase concilia el conjunto de atribuciones de cursos de forma
// transaccional. Cada punto de entrada corre completo dentro de una transacción
// (TxRunner) con Commit/Rollback.
type ReconcileUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewReconcileUseCase construye el motor de conciliación.
func NewReconcileUseCase(txRunner TxRunner, log *logger.Logger) *ReconcileUseCase {
	return &ReconcileUseCase{txRunner: txRunner, log: log}
}

// AutoAssignCourseToStores atribuye un curso recién creado a todos los empleados
// de las tiendas compatibles con su marca. Devuelve cuántas atribuciones creó.
// Si el curso no existe o tiene AutoAssign en false, es un no-op (0, nil).
func (uc *ReconcileUseCase) AutoAssignCourseToStores(ctx context.Context, courseID string) (int, error) {
	created := 0
	err := uc.txRunner.Run(ctx, func(
		assignmentRepo repository.AssignmentRepository,
		courseRepo repository.CourseRepository,
		employeeRepo repository.EmployeeRepository,
		storeRepo repository.StoreRepository,
	) error {
		course, err := courseRepo.GetByID(courseID)
		if err != nil {
			return err
		}
		if course == nil || !course.AutoAssign {
			return nil
		}
		stores, err := uc.storesForBrand(storeRepo, course.Brand)
		if err != nil {
			return err
		}
		for _, store := range stores {
			employees, err := employeeRepo.ListByStore(store.ID)
			if err != nil {
				return err
			}
			for _, emp := range employees {
				ok, err := createIfMissing(assignmentRepo, store.ID, emp.ID, courseID)
				if err != nil {
					return err
				}
				if ok {
					created++
				}
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("course_id", courseID).Msg("auto-asignación de curso falló")
		return 0, err
	}
	return created, nil
}

// ReassignCourseByBrand concilia las atribuciones cuando cambia la marca de un
// curso: retira las atribuciones pendientes de las tiendas que dejan de ser
// elegibles (las concluidas se conservan siempre) y crea atribuciones en las
// tiendas que pasan a serlo. Las tiendas elegibles bajo ambas marcas no se tocan.
func (uc *ReconcileUseCase) ReassignCourseByBrand(ctx context.Context, courseID, oldBrand, newBrand string) error {
	err := uc.txRunner.Run(ctx, func(
		assignmentRepo repository.AssignmentRepository,
		courseRepo repository.CourseRepository,
		employeeRepo repository.EmployeeRepository,
		storeRepo repository.StoreRepository,
	) error {
		course, err := courseRepo.GetByID(courseID)
		if err != nil {
			return err
		}
		if course == nil || !course.AutoAssign {
			return nil
		}

		oldStores, err := uc.storesForBrand(storeRepo, oldBrand)
		if err != nil {
			return err
		}
		newStores, err := uc.storesForBrand(storeRepo, newBrand)
		if err != nil {
			return err
		}
		newSet := make(map[string]bool, len(newStores))
		for _, s := range newStores {
			newSet[s.ID] = true
		}
		oldSet := make(map[string]bool, len(oldStores))
		for _, s := range oldStores {
			oldSet[s.ID] = true
		}

		// Retirar atribuciones pendientes de tiendas que ya no son elegibles.
		for _, store := range oldStores {
			if newSet[store.ID] {
				continue
			}
			assignments, err := assignmentRepo.ListByStore(store.ID)
			if err != nil {
				return err
			}
			for _, a := range assignments {
				if a.CourseID != courseID || a.Status != entity.AssignmentStatusPendiente {
					continue
				}
				if err := assignmentRepo.Delete(a.ID); err != nil {
					return err
				}
			}
		}

		// Crear atribuciones en tiendas que pasan a ser elegibles.
		for _, store := range newStores {
			if oldSet[store.ID] {
				continue
			}
			employees, err := employeeRepo.ListByStore(store.ID)
			if err != nil {
				return err
			}
			for _, emp := range employees {
				if _, err := createIfMissing(assignmentRepo, store.ID, emp.ID, courseID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).
			Str("course_id", courseID).
			Str("old_brand", oldBrand).
			Str("new_brand", newBrand).
			Msg("reasignación por cambio de marca falló")
	}
	return err
}

// AssignPendingCoursesToEmployee atribuye a un empleado recién creado (o
// transferido) los cursos auto-asignables de su tienda. Devuelve cuántas
// atribuciones creó. Cursos con cargos obligatorios se evalúan por cargo;
// el resto por compatibilidad de marca entre curso y tienda.
func (uc *ReconcileUseCase) AssignPendingCoursesToEmployee(ctx context.Context, employeeID, storeID string) (int, error) {
	created := 0
	err := uc.txRunner.Run(ctx, func(
		assignmentRepo repository.AssignmentRepository,
		courseRepo repository.CourseRepository,
		employeeRepo repository.EmployeeRepository,
		storeRepo repository.StoreRepository,
	) error {
		employee, err := employeeRepo.GetByID(employeeID)
		if err != nil {
			return err
		}
		store, err := storeRepo.GetByID(storeID)
		if err != nil {
			return err
		}
		if employee == nil || store == nil {
			return nil
		}
		courses, err := courseRepo.ListByStore(storeID)
		if err != nil {
			return err
		}
		for _, course := range courses {
			if !course.AutoAssign {
				continue
			}
			if course.HasRequiredFunctions() {
				if !containsFunction(course.RequiredFunctions, employee.Function) {
					continue
				}
			} else if !brandMatches(course.Brand, store.Brand) {
				// Los cursos se cargan por tienda, pero la marca sigue siendo
				// la puerta de elegibilidad autoritativa.
				continue
			}
			ok, err := createIfMissing(assignmentRepo, storeID, employeeID, course.ID)
			if err != nil {
				return err
			}
			if ok {
				created++
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("employee_id", employeeID).Msg("asignación de cursos al empleado falló")
		return 0, err
	}
	return created, nil
}

// AssignCourseToEmployeesByFunction atribuye un curso a los empleados de la
// tienda cuyo cargo pertenece al conjunto de cargos obligatorios. La comparación
// de cargos es exacta (sensible a mayúsculas). Este camino nunca retira
// atribuciones: quitar un cargo obligatorio no revierte lo ya asignado.
func (uc *ReconcileUseCase) AssignCourseToEmployeesByFunction(ctx context.Context, storeID, courseID string, functions []string) error {
	if len(functions) == 0 {
		return nil
	}
	err := uc.txRunner.Run(ctx, func(
		assignmentRepo repository.AssignmentRepository,
		courseRepo repository.CourseRepository,
		employeeRepo repository.EmployeeRepository,
		_ repository.StoreRepository,
	) error {
		course, err := courseRepo.GetByID(courseID)
		if err != nil {
			return err
		}
		if course == nil || !course.AutoAssign {
			return nil
		}
		employees, err := employeeRepo.ListByStore(storeID)
		if err != nil {
			return err
		}
		for _, emp := range employees {
			if !containsFunction(functions, emp.Function) {
				continue
			}
			if _, err := createIfMissing(assignmentRepo, storeID, emp.ID, courseID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).
			Str("course_id", courseID).
			Str("store_id", storeID).
			Msg("asignación por cargo falló")
	}
	return err
}

// createIfMissing crea la atribución pendiente si el empleado aún no tiene el
// curso. El chequeo es por empleado+curso (sin tienda); si pese a eso el insert
// choca con el constraint único, se trata como ya-asignado y no como error.
func createIfMissing(assignmentRepo repository.AssignmentRepository, storeID, employeeID, courseID string) (bool, error) {
	existing, err := assignmentRepo.ListByEmployee(employeeID)
	if err != nil {
		return false, err
	}
	for _, a := range existing {
		if a.CourseID == courseID {
			return false, nil
		}
	}
	now := time.Now()
	assignment := &entity.Assignment{
		ID:         uuid.New().String(),
		StoreID:    storeID,
		EmployeeID: employeeID,
		CourseID:   courseID,
		Status:     entity.AssignmentStatusPendiente,
		AssignedAt: now,
		UpdatedAt:  now,
	}
	if err := assignmentRepo.Create(assignment); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func containsFunction(functions []string, function string) bool {
	for _, f := range functions {
		if f == function {
			return true
		}
	}
	return false
}
