package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Capacitaciones-api/internal/application/autoassign"
	"github.com/jhoicas/Capacitaciones-api/internal/application/dto"
	"github.com/jhoicas/Capacitaciones-api/internal/domain"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/entity"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/repository"
	"github.com/jhoicas/Capacitaciones-api/pkg/logger"
)

// EmployeeUseCase casos de uso CRUD para empleados. El alta dispara la
// asignación automática de cursos de la tienda.
type EmployeeUseCase struct {
	repo      repository.EmployeeRepository
	storeRepo repository.StoreRepository
	engine    *autoassign.ReconcileUseCase
	log       *logger.Logger
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(
	repo repository.EmployeeRepository,
	storeRepo repository.StoreRepository,
	engine *autoassign.ReconcileUseCase,
	log *logger.Logger,
) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, storeRepo: storeRepo, engine: engine, log: log}
}

// Create crea un empleado y le asigna los cursos auto-asignables de su tienda.
// Si la asignación automática falla, el empleado queda creado igualmente (efecto
// secundario best-effort) y el fallo se registra.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.CreateEmployeeResponse, error) {
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		StoreID:   in.StoreID,
		Name:      in.Name,
		Email:     in.Email,
		Function:  in.Function,
		Area:      in.Area,
		Status:    entity.EmployeeStatusActivo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}

	assigned, err := uc.engine.AssignPendingCoursesToEmployee(ctx, employee.ID, employee.StoreID)
	if err != nil {
		uc.log.Warn().Err(err).
			Str("employee_id", employee.ID).
			Msg("empleado creado, pero la asignación automática de cursos falló")
	}
	return &dto.CreateEmployeeResponse{
		Employee:        *toEmployeeResponse(employee),
		CoursesAssigned: assigned,
	}, nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	return toEmployeeResponse(employee), nil
}

// Update actualiza un empleado. El cambio de cargo no reconcilia atribuciones
// existentes (mismo criterio que quitar un cargo obligatorio de un curso).
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	if in.Name != nil {
		employee.Name = *in.Name
	}
	if in.Email != nil {
		employee.Email = *in.Email
	}
	if in.Function != nil {
		employee.Function = *in.Function
	}
	if in.Area != nil {
		employee.Area = *in.Area
	}
	if in.Status != nil {
		employee.Status = *in.Status
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List lista empleados con paginación, opcionalmente filtrados por tienda.
func (uc *EmployeeUseCase) List(storeID string, limit, offset int) (*dto.EmployeeListResponse, error) {
	var list []*entity.Employee
	var err error
	if storeID != "" {
		list, err = uc.repo.ListByStore(storeID)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un empleado por ID.
func (uc *EmployeeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:        e.ID,
		StoreID:   e.StoreID,
		Name:      e.Name,
		Email:     e.Email,
		Function:  e.Function,
		Area:      e.Area,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
