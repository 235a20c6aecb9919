package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Capacitaciones-api/internal/application/autoassign"
	"github.com/jhoicas/Capacitaciones-api/internal/application/dto"
	"github.com/jhoicas/Capacitaciones-api/internal/application/usecase"
	"github.com/jhoicas/Capacitaciones-api/internal/domain"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/entity"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/repository"
	"github.com/jhoicas/Capacitaciones-api/pkg/logger"
)

// Fakes mínimos compartidos entre los repos y el TxRunner del motor.

type world struct {
	stores      map[string]*entity.Store
	employees   map[string]*entity.Employee
	courses     map[string]*entity.Course
	assignments map[string]*entity.Assignment
	txFails     error
}

func newWorld() *world {
	return &world{
		stores:      map[string]*entity.Store{},
		employees:   map[string]*entity.Employee{},
		courses:     map[string]*entity.Course{},
		assignments: map[string]*entity.Assignment{},
	}
}

type wStoreRepo struct{ w *world }

func (r *wStoreRepo) Create(s *entity.Store) error            { r.w.stores[s.ID] = s; return nil }
func (r *wStoreRepo) GetByID(id string) (*entity.Store, error) { return r.w.stores[id], nil }
func (r *wStoreRepo) Update(s *entity.Store) error            { r.w.stores[s.ID] = s; return nil }
func (r *wStoreRepo) Delete(id string) error                  { delete(r.w.stores, id); return nil }
func (r *wStoreRepo) List() ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range r.w.stores {
		out = append(out, s)
	}
	return out, nil
}
func (r *wStoreRepo) ListByBrand(brand string) ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range r.w.stores {
		if s.Brand == brand || s.Brand == entity.BrandAmbos {
			out = append(out, s)
		}
	}
	return out, nil
}

type wEmployeeRepo struct{ w *world }

func (r *wEmployeeRepo) Create(e *entity.Employee) error { r.w.employees[e.ID] = e; return nil }
func (r *wEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.w.employees[id], nil
}
func (r *wEmployeeRepo) Update(e *entity.Employee) error                    { return nil }
func (r *wEmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) { return nil, nil }
func (r *wEmployeeRepo) Delete(id string) error                             { return nil }
func (r *wEmployeeRepo) ListByStore(storeID string) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.w.employees {
		if e.StoreID == storeID {
			out = append(out, e)
		}
	}
	return out, nil
}

type wCourseRepo struct{ w *world }

func (r *wCourseRepo) Create(c *entity.Course) error             { r.w.courses[c.ID] = c; return nil }
func (r *wCourseRepo) GetByID(id string) (*entity.Course, error) { return r.w.courses[id], nil }
func (r *wCourseRepo) Update(c *entity.Course) error             { r.w.courses[c.ID] = c; return nil }
func (r *wCourseRepo) List(limit, offset int) ([]*entity.Course, error) { return nil, nil }
func (r *wCourseRepo) Delete(id string) error                    { return nil }
func (r *wCourseRepo) ListByStore(storeID string) ([]*entity.Course, error) {
	var out []*entity.Course
	for _, c := range r.w.courses {
		if c.StoreID == storeID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *wCourseRepo) ReplaceRequiredFunctions(courseID string, functions []string) error {
	if c, ok := r.w.courses[courseID]; ok {
		c.RequiredFunctions = functions
	}
	return nil
}

type wAssignmentRepo struct{ w *world }

func (r *wAssignmentRepo) Create(a *entity.Assignment) error {
	for _, ex := range r.w.assignments {
		if ex.EmployeeID == a.EmployeeID && ex.CourseID == a.CourseID {
			return domain.ErrDuplicate
		}
	}
	r.w.assignments[a.ID] = a
	return nil
}
func (r *wAssignmentRepo) GetByID(id string) (*entity.Assignment, error) {
	return r.w.assignments[id], nil
}
func (r *wAssignmentRepo) Update(a *entity.Assignment) error { r.w.assignments[a.ID] = a; return nil }
func (r *wAssignmentRepo) List(limit, offset int) ([]*entity.Assignment, error) { return nil, nil }
func (r *wAssignmentRepo) Delete(id string) error { delete(r.w.assignments, id); return nil }
func (r *wAssignmentRepo) ListByEmployee(employeeID string) ([]*entity.Assignment, error) {
	var out []*entity.Assignment
	for _, a := range r.w.assignments {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *wAssignmentRepo) ListByStore(storeID string) ([]*entity.Assignment, error) {
	var out []*entity.Assignment
	for _, a := range r.w.assignments {
		if a.StoreID == storeID {
			out = append(out, a)
		}
	}
	return out, nil
}

type wTxRunner struct{ w *world }

func (t *wTxRunner) Run(ctx context.Context, fn func(
	assignmentRepo repository.AssignmentRepository,
	courseRepo repository.CourseRepository,
	employeeRepo repository.EmployeeRepository,
	storeRepo repository.StoreRepository,
) error) error {
	if t.w.txFails != nil {
		return t.w.txFails
	}
	return fn(&wAssignmentRepo{t.w}, &wCourseRepo{t.w}, &wEmployeeRepo{t.w}, &wStoreRepo{t.w})
}

func newCourseUC(w *world) *usecase.CourseUseCase {
	engine := autoassign.NewReconcileUseCase(&wTxRunner{w}, logger.Nop())
	return usecase.NewCourseUseCase(&wCourseRepo{w}, &wStoreRepo{w}, engine, logger.Nop())
}

func addEmployee(w *world, id, storeID, function string) {
	w.employees[id] = &entity.Employee{
		ID: id, StoreID: storeID, Name: id, Function: function,
		Area: entity.AreaVentas, Status: entity.EmployeeStatusActivo,
	}
}

func TestCourseCreate_SinCargosAsignaPorMarca(t *testing.T) {
	w := newWorld()
	w.stores["s1"] = &entity.Store{ID: "s1", Brand: entity.BrandFord, Status: entity.StoreStatusActivo}
	addEmployee(w, "e1", "s1", "Vendedor")
	addEmployee(w, "e2", "s1", "Vendedor")

	out, err := newCourseUC(w).Create(context.Background(), dto.CreateCourseRequest{
		StoreID: "s1", Title: "Atención al cliente", Area: entity.AreaVentas,
		Brand: entity.BrandFord, Modality: entity.ModalityOnline,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.AssignmentsCreated)
	assert.Len(t, w.assignments, 2)
}

func TestCourseCreate_ConCargosIgnoraLaMarca(t *testing.T) {
	w := newWorld()
	w.stores["s1"] = &entity.Store{ID: "s1", Brand: entity.BrandGWM, Status: entity.StoreStatusActivo}
	addEmployee(w, "e1", "s1", "Mecánico")
	addEmployee(w, "e2", "s1", "Mecánico")
	addEmployee(w, "e3", "s1", "Vendedor")

	out, err := newCourseUC(w).Create(context.Background(), dto.CreateCourseRequest{
		StoreID: "s1", Title: "Frenos GWM", Area: entity.AreaPosVentas,
		Brand: entity.BrandFord, Modality: entity.ModalityPresencial,
		RequiredFunctions: []string{"Mecánico"},
	})
	require.NoError(t, err)
	assert.Len(t, w.assignments, 2, "solo los mecánicos reciben el curso; la marca no gobierna")
	_ = out
}

func TestCourseCreate_FalloDelMotorNoImpideCrearElCurso(t *testing.T) {
	w := newWorld()
	w.stores["s1"] = &entity.Store{ID: "s1", Brand: entity.BrandFord, Status: entity.StoreStatusActivo}
	w.txFails = fmt.Errorf("begin transaction: conexión rechazada")

	out, err := newCourseUC(w).Create(context.Background(), dto.CreateCourseRequest{
		StoreID: "s1", Title: "Onboarding", Area: entity.AreaVentas,
		Brand: entity.BrandFord, Modality: entity.ModalityOnline,
	})
	require.NoError(t, err, "la conciliación es un efecto secundario best-effort")
	assert.NotEmpty(t, out.Course.ID)
	assert.Equal(t, 0, out.AssignmentsCreated)
	assert.Len(t, w.courses, 1)
}

func TestCourseUpdate_CambioDeMarcaReconcilia(t *testing.T) {
	w := newWorld()
	w.stores["s1"] = &entity.Store{ID: "s1", Brand: entity.BrandFord, Status: entity.StoreStatusActivo}
	w.stores["s2"] = &entity.Store{ID: "s2", Brand: entity.BrandGWM, Status: entity.StoreStatusActivo}
	addEmployee(w, "e1", "s1", "Vendedor")
	addEmployee(w, "e2", "s2", "Vendedor")
	uc := newCourseUC(w)

	out, err := uc.Create(context.Background(), dto.CreateCourseRequest{
		StoreID: "s1", Title: "Seguridad", Area: entity.AreaVentas,
		Brand: entity.BrandFord, Modality: entity.ModalityOnline,
	})
	require.NoError(t, err)
	require.Equal(t, 1, out.AssignmentsCreated)

	newBrand := entity.BrandGWM
	_, err = uc.Update(context.Background(), out.Course.ID, dto.UpdateCourseRequest{Brand: &newBrand})
	require.NoError(t, err)

	for _, a := range w.assignments {
		assert.Equal(t, "s2", a.StoreID, "las pendientes de la tienda FORD se retiran y la GWM gana la suya")
	}
	assert.Len(t, w.assignments, 1)
}

func TestCourseCreate_TiendaInexistente(t *testing.T) {
	w := newWorld()
	_, err := newCourseUC(w).Create(context.Background(), dto.CreateCourseRequest{
		StoreID: "no-existe", Title: "X", Area: entity.AreaVentas,
		Brand: entity.BrandFord, Modality: entity.ModalityOnline,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
