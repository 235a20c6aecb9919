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

// CourseUseCase casos de uso CRUD para cursos. Las mutaciones disparan el motor
// de asignación automática como efecto secundario best-effort: si la
// conciliación falla, el curso queda creado/actualizado igualmente y el fallo
// se registra.
type CourseUseCase struct {
	repo      repository.CourseRepository
	storeRepo repository.StoreRepository
	engine    *autoassign.ReconcileUseCase
	log       *logger.Logger
}

// NewCourseUseCase construye el caso de uso.
func NewCourseUseCase(
	repo repository.CourseRepository,
	storeRepo repository.StoreRepository,
	engine *autoassign.ReconcileUseCase,
	log *logger.Logger,
) *CourseUseCase {
	return &CourseUseCase{repo: repo, storeRepo: storeRepo, engine: engine, log: log}
}

// Create crea un curso y dispara la asignación automática. Con cargos
// obligatorios la elegibilidad inicial se rige por cargo y la marca no se
// aplica; sin cargos se asigna por marca a las tiendas compatibles. Ambos
// mecanismos son mutuamente excluyentes en la creación.
func (uc *CourseUseCase) Create(ctx context.Context, in dto.CreateCourseRequest) (*dto.CreateCourseResponse, error) {
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}

	autoAssign := true
	if in.AutoAssign != nil {
		autoAssign = *in.AutoAssign
	}
	now := time.Now()
	course := &entity.Course{
		ID:                uuid.New().String(),
		StoreID:           in.StoreID,
		Title:             in.Title,
		Description:       in.Description,
		Area:              in.Area,
		Brand:             in.Brand,
		Modality:          in.Modality,
		AutoAssign:        autoAssign,
		RequiredFunctions: in.RequiredFunctions,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(course); err != nil {
		return nil, err
	}

	created := 0
	if course.AutoAssign {
		if course.HasRequiredFunctions() {
			err = uc.engine.AssignCourseToEmployeesByFunction(ctx, course.StoreID, course.ID, course.RequiredFunctions)
		} else {
			created, err = uc.engine.AutoAssignCourseToStores(ctx, course.ID)
		}
		if err != nil {
			uc.log.Warn().Err(err).
				Str("course_id", course.ID).
				Msg("curso creado, pero la asignación automática falló")
		}
	}
	return &dto.CreateCourseResponse{
		Course:             *toCourseResponse(course),
		AssignmentsCreated: created,
	}, nil
}

// GetByID obtiene un curso por ID (con sus cargos obligatorios).
func (uc *CourseUseCase) GetByID(id string) (*dto.CourseResponse, error) {
	course, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, nil
	}
	return toCourseResponse(course), nil
}

// Update actualiza un curso y reconcilia atribuciones según qué cambió:
//   - marca: retira pendientes de tiendas que dejan de ser elegibles y asigna
//     en las nuevas;
//   - cargos obligatorios: asigna a los empleados que ahora coinciden, sin
//     retirar nada de lo ya asignado.
func (uc *CourseUseCase) Update(ctx context.Context, id string, in dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, nil
	}
	oldBrand := course.Brand

	if in.Title != nil {
		course.Title = *in.Title
	}
	if in.Description != nil {
		course.Description = *in.Description
	}
	if in.Area != nil {
		course.Area = *in.Area
	}
	if in.Brand != nil {
		course.Brand = *in.Brand
	}
	if in.Modality != nil {
		course.Modality = *in.Modality
	}
	if in.AutoAssign != nil {
		course.AutoAssign = *in.AutoAssign
	}
	course.UpdatedAt = time.Now()
	if err := uc.repo.Update(course); err != nil {
		return nil, err
	}

	functionsChanged := in.RequiredFunctions != nil
	if functionsChanged {
		if err := uc.repo.ReplaceRequiredFunctions(course.ID, in.RequiredFunctions); err != nil {
			return nil, err
		}
		course.RequiredFunctions = in.RequiredFunctions
	}

	if course.Brand != oldBrand {
		if err := uc.engine.ReassignCourseByBrand(ctx, course.ID, oldBrand, course.Brand); err != nil {
			uc.log.Warn().Err(err).
				Str("course_id", course.ID).
				Msg("curso actualizado, pero la reasignación por marca falló")
		}
	}
	if functionsChanged && len(course.RequiredFunctions) > 0 {
		if err := uc.engine.AssignCourseToEmployeesByFunction(ctx, course.StoreID, course.ID, course.RequiredFunctions); err != nil {
			uc.log.Warn().Err(err).
				Str("course_id", course.ID).
				Msg("curso actualizado, pero la asignación por cargo falló")
		}
	}
	return toCourseResponse(course), nil
}

// List lista cursos con paginación, opcionalmente filtrados por tienda.
func (uc *CourseUseCase) List(storeID string, limit, offset int) (*dto.CourseListResponse, error) {
	var list []*entity.Course
	var err error
	if storeID != "" {
		list, err = uc.repo.ListByStore(storeID)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.CourseResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCourseResponse(c))
	}
	return &dto.CourseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un curso por ID.
func (uc *CourseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCourseResponse(c *entity.Course) *dto.CourseResponse {
	if c == nil {
		return nil
	}
	return &dto.CourseResponse{
		ID:                c.ID,
		StoreID:           c.StoreID,
		Title:             c.Title,
		Description:       c.Description,
		Area:              c.Area,
		Brand:             c.Brand,
		Modality:          c.Modality,
		AutoAssign:        c.AutoAssign,
		RequiredFunctions: c.RequiredFunctions,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
