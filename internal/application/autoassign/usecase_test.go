package autoassign_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Capacitaciones-api/internal/application/autoassign"
	"github.com/jhoicas/Capacitaciones-api/internal/domain"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/entity"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/repository"
	"github.com/jhoicas/Capacitaciones-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos del motor. El estado es compartido entre
// repositorios, como lo sería en la base real; el TxRunner toma una copia del
// conjunto de atribuciones antes de ejecutar fn y la restaura si fn falla,
// imitando el Rollback.
// ──────────────────────────────────────────────────────────────────────────────

type state struct {
	stores      map[string]*entity.Store
	employees   map[string]*entity.Employee
	courses     map[string]*entity.Course
	assignments map[string]*entity.Assignment

	failCreateAssignment error // si no es nil, Create de atribuciones falla con este error
	hidePairOnList       bool  // simula la carrera: ListByEmployee no ve la fila ya insertada
}

func newState() *state {
	return &state{
		stores:      map[string]*entity.Store{},
		employees:   map[string]*entity.Employee{},
		courses:     map[string]*entity.Course{},
		assignments: map[string]*entity.Assignment{},
	}
}

func (st *state) addStore(id, brand string) {
	st.stores[id] = &entity.Store{ID: id, Code: id, Name: "Tienda " + id, Brand: brand, Status: entity.StoreStatusActivo}
}

func (st *state) addEmployees(storeID string, n int, function string) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("emp-%s-%s-%d", storeID, function, i)
		st.employees[id] = &entity.Employee{
			ID: id, StoreID: storeID, Name: id, Function: function,
			Area: entity.AreaVentas, Status: entity.EmployeeStatusActivo,
		}
		ids = append(ids, id)
	}
	return ids
}

func (st *state) addCourse(id, storeID, brand string, autoAssign bool, functions ...string) {
	st.courses[id] = &entity.Course{
		ID: id, StoreID: storeID, Title: "Curso " + id, Area: entity.AreaVentas,
		Brand: brand, Modality: entity.ModalityOnline,
		AutoAssign: autoAssign, RequiredFunctions: functions,
	}
}

func (st *state) addAssignment(id, storeID, employeeID, courseID, status string) {
	st.assignments[id] = &entity.Assignment{
		ID: id, StoreID: storeID, EmployeeID: employeeID, CourseID: courseID, Status: status,
	}
}

func (st *state) assignmentsFor(courseID string) []*entity.Assignment {
	var out []*entity.Assignment
	for _, a := range st.assignments {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	return out
}

type fakeStoreRepo struct{ st *state }

func (r *fakeStoreRepo) Create(s *entity.Store) error { r.st.stores[s.ID] = s; return nil }
func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	return r.st.stores[id], nil
}
func (r *fakeStoreRepo) Update(s *entity.Store) error { r.st.stores[s.ID] = s; return nil }
func (r *fakeStoreRepo) List() ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range r.st.stores {
		out = append(out, s)
	}
	return out, nil
}
func (r *fakeStoreRepo) ListByBrand(brand string) ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range r.st.stores {
		if s.Brand == brand || s.Brand == entity.BrandAmbos {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeStoreRepo) Delete(id string) error { delete(r.st.stores, id); return nil }

type fakeEmployeeRepo struct{ st *state }

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error { r.st.employees[e.ID] = e; return nil }
func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.st.employees[id], nil
}
func (r *fakeEmployeeRepo) Update(e *entity.Employee) error { r.st.employees[e.ID] = e; return nil }
func (r *fakeEmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) { return nil, nil }
func (r *fakeEmployeeRepo) ListByStore(storeID string) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.st.employees {
		if e.StoreID == storeID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *fakeEmployeeRepo) Delete(id string) error { delete(r.st.employees, id); return nil }

type fakeCourseRepo struct{ st *state }

func (r *fakeCourseRepo) Create(c *entity.Course) error { r.st.courses[c.ID] = c; return nil }
func (r *fakeCourseRepo) GetByID(id string) (*entity.Course, error) {
	return r.st.courses[id], nil
}
func (r *fakeCourseRepo) Update(c *entity.Course) error { r.st.courses[c.ID] = c; return nil }
func (r *fakeCourseRepo) List(limit, offset int) ([]*entity.Course, error) { return nil, nil }
func (r *fakeCourseRepo) ListByStore(storeID string) ([]*entity.Course, error) {
	var out []*entity.Course
	for _, c := range r.st.courses {
		if c.StoreID == storeID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *fakeCourseRepo) ReplaceRequiredFunctions(courseID string, functions []string) error {
	if c, ok := r.st.courses[courseID]; ok {
		c.RequiredFunctions = functions
	}
	return nil
}
func (r *fakeCourseRepo) Delete(id string) error { delete(r.st.courses, id); return nil }

type fakeAssignmentRepo struct{ st *state }

func (r *fakeAssignmentRepo) Create(a *entity.Assignment) error {
	if r.st.failCreateAssignment != nil {
		return r.st.failCreateAssignment
	}
	for _, ex := range r.st.assignments {
		if ex.EmployeeID == a.EmployeeID && ex.CourseID == a.CourseID {
			return domain.ErrDuplicate // constraint único (employee_id, course_id)
		}
	}
	r.st.assignments[a.ID] = a
	return nil
}
func (r *fakeAssignmentRepo) GetByID(id string) (*entity.Assignment, error) {
	return r.st.assignments[id], nil
}
func (r *fakeAssignmentRepo) Update(a *entity.Assignment) error {
	r.st.assignments[a.ID] = a
	return nil
}
func (r *fakeAssignmentRepo) List(limit, offset int) ([]*entity.Assignment, error) { return nil, nil }
func (r *fakeAssignmentRepo) ListByEmployee(employeeID string) ([]*entity.Assignment, error) {
	if r.st.hidePairOnList {
		return nil, nil
	}
	var out []*entity.Assignment
	for _, a := range r.st.assignments {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAssignmentRepo) ListByStore(storeID string) ([]*entity.Assignment, error) {
	var out []*entity.Assignment
	for _, a := range r.st.assignments {
		if a.StoreID == storeID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAssignmentRepo) Delete(id string) error { delete(r.st.assignments, id); return nil }

type fakeTxRunner struct{ st *state }

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	assignmentRepo repository.AssignmentRepository,
	courseRepo repository.CourseRepository,
	employeeRepo repository.EmployeeRepository,
	storeRepo repository.StoreRepository,
) error) error {
	// Copia previa para restaurar si fn falla (equivalente al Rollback).
	snapshot := make(map[string]*entity.Assignment, len(t.st.assignments))
	for k, v := range t.st.assignments {
		copied := *v
		snapshot[k] = &copied
	}
	err := fn(&fakeAssignmentRepo{t.st}, &fakeCourseRepo{t.st}, &fakeEmployeeRepo{t.st}, &fakeStoreRepo{t.st})
	if err != nil {
		t.st.assignments = snapshot
	}
	return err
}

func newEngine(st *state) *autoassign.ReconcileUseCase {
	return autoassign.NewReconcileUseCase(&fakeTxRunner{st}, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// AutoAssignCourseToStores
// ──────────────────────────────────────────────────────────────────────────────

func TestAutoAssignCourseToStores_AsignaPorMarca(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandFord)
	st.addStore("s2", entity.BrandFord)
	st.addStore("s3", entity.BrandGWM)
	st.addEmployees("s1", 3, "Vendedor")
	st.addEmployees("s2", 3, "Vendedor")
	st.addEmployees("s3", 2, "Vendedor")
	st.addCourse("c1", "s1", entity.BrandFord, true)

	created, err := newEngine(st).AutoAssignCourseToStores(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 6, created, "solo los empleados de las tiendas FORD deben recibir el curso")
	assert.Len(t, st.assignmentsFor("c1"), 6)
	for _, a := range st.assignmentsFor("c1") {
		assert.Equal(t, entity.AssignmentStatusPendiente, a.Status)
	}
}

func TestAutoAssignCourseToStores_Idempotente(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandFord)
	st.addEmployees("s1", 3, "Vendedor")
	st.addCourse("c1", "s1", entity.BrandFord, true)
	engine := newEngine(st)

	first, err := engine.AutoAssignCourseToStores(context.Background(), "c1")
	require.NoError(t, err)
	require.Equal(t, 3, first)

	second, err := engine.AutoAssignCourseToStores(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, second, "la segunda conciliación sin cambios no debe crear nada")
	assert.Len(t, st.assignmentsFor("c1"), 3)
}

func TestAutoAssignCourseToStores_MarcaAmbosCubreTodasLasTiendas(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandFord)
	st.addStore("s2", entity.BrandGWM)
	st.addStore("s3", entity.BrandAmbos)
	st.addEmployees("s1", 1, "Vendedor")
	st.addEmployees("s2", 1, "Vendedor")
	st.addEmployees("s3", 1, "Vendedor")
	st.addCourse("c1", "s1", entity.BrandAmbos, true)

	created, err := newEngine(st).AutoAssignCourseToStores(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 3, created, "AMBOS debe resolver a la unión de tiendas FORD y GWM sin duplicar")
}

func TestAutoAssignCourseToStores_GateAutoAssign(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandFord)
	st.addEmployees("s1", 3, "Vendedor")
	st.addCourse("c1", "s1", entity.BrandFord, false)

	created, err := newEngine(st).AutoAssignCourseToStores(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Empty(t, st.assignmentsFor("c1"), "un curso con autoAssign en false no participa en conciliación")
}

func TestAutoAssignCourseToStores_CursoInexistenteEsNoOp(t *testing.T) {
	st := newState()
	created, err := newEngine(st).AutoAssignCourseToStores(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestAutoAssignCourseToStores_ConflictoDeInsertEsNoOp(t *testing.T) {
	// Simula la carrera chequeo-luego-insert: el listado no ve la fila que otro
	// proceso acaba de insertar, y el constraint único rechaza el insert. El
	// motor debe tratarlo como ya-asignado, no como fallo.
	st := newState()
	st.addStore("s1", entity.BrandFord)
	ids := st.addEmployees("s1", 1, "Vendedor")
	st.addCourse("c1", "s1", entity.BrandFord, true)
	st.addAssignment("a1", "s1", ids[0], "c1", entity.AssignmentStatusPendiente)
	st.hidePairOnList = true

	created, err := newEngine(st).AutoAssignCourseToStores(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Len(t, st.assignmentsFor("c1"), 1)
}

func TestAutoAssignCourseToStores_ErrorDePersistenciaRevierteTodo(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandFord)
	st.addEmployees("s1", 3, "Vendedor")
	st.addCourse("c1", "s1", entity.BrandFord, true)
	st.failCreateAssignment = fmt.Errorf("insert assignment: conexión perdida")

	_, err := newEngine(st).AutoAssignCourseToStores(context.Background(), "c1")
	require.Error(t, err)
	assert.Empty(t, st.assignmentsFor("c1"), "la transacción debe revertir las atribuciones parciales")
}

// ──────────────────────────────────────────────────────────────────────────────
// ReassignCourseByBrand
// ──────────────────────────────────────────────────────────────────────────────

func TestReassignCourseByBrand_RetiraYCrea(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandFord)
	st.addStore("s2", entity.BrandFord)
	st.addStore("s3", entity.BrandGWM)
	fordEmps := append(st.addEmployees("s1", 3, "Vendedor"), st.addEmployees("s2", 3, "Vendedor")...)
	st.addEmployees("s3", 2, "Vendedor")
	st.addCourse("c1", "s1", entity.BrandGWM, true)
	engine := newEngine(st)

	// Estado previo: el curso era FORD y estaba asignado en s1/s2; un empleado
	// ya lo concluyó antes del cambio de marca.
	for i, empID := range fordEmps {
		storeID := st.employees[empID].StoreID
		status := entity.AssignmentStatusPendiente
		if i == 0 {
			status = entity.AssignmentStatusConcluido
		}
		st.addAssignment(fmt.Sprintf("a%d", i), storeID, empID, "c1", status)
	}

	err := engine.ReassignCourseByBrand(context.Background(), "c1", entity.BrandFord, entity.BrandGWM)
	require.NoError(t, err)

	remaining := st.assignmentsFor("c1")
	completed := 0
	gwmPending := 0
	for _, a := range remaining {
		switch {
		case a.Status == entity.AssignmentStatusConcluido:
			completed++
		case a.StoreID == "s3":
			gwmPending++
		default:
			t.Errorf("atribución pendiente inesperada en tienda %s", a.StoreID)
		}
	}
	assert.Equal(t, 1, completed, "las atribuciones concluidas sobreviven al cambio de marca")
	assert.Equal(t, 2, gwmPending, "los empleados de la tienda GWM reciben el curso")
}

func TestReassignCourseByBrand_TiendasComunesNoSeTocan(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandFord)
	st.addStore("s2", entity.BrandGWM)
	ids := st.addEmployees("s1", 2, "Vendedor")
	st.addEmployees("s2", 1, "Vendedor")
	st.addCourse("c1", "s1", entity.BrandAmbos, true)
	st.addAssignment("a0", "s1", ids[0], "c1", entity.AssignmentStatusPendiente)
	st.addAssignment("a1", "s1", ids[1], "c1", entity.AssignmentStatusPendiente)

	// FORD -> AMBOS: s1 es elegible bajo ambas marcas, sus atribuciones quedan intactas.
	err := newEngine(st).ReassignCourseByBrand(context.Background(), "c1", entity.BrandFord, entity.BrandAmbos)
	require.NoError(t, err)

	assert.NotNil(t, st.assignments["a0"], "atribución existente no debe recrearse ni eliminarse")
	assert.NotNil(t, st.assignments["a1"])
	assert.Len(t, st.assignmentsFor("c1"), 3, "solo la tienda GWM gana atribuciones nuevas")
}

func TestReassignCourseByBrand_GateAutoAssign(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandFord)
	ids := st.addEmployees("s1", 1, "Vendedor")
	st.addCourse("c1", "s1", entity.BrandGWM, false)
	st.addAssignment("a0", "s1", ids[0], "c1", entity.AssignmentStatusPendiente)

	err := newEngine(st).ReassignCourseByBrand(context.Background(), "c1", entity.BrandFord, entity.BrandGWM)
	require.NoError(t, err)
	assert.NotNil(t, st.assignments["a0"], "con autoAssign en false no se retira nada")
}

// ──────────────────────────────────────────────────────────────────────────────
// AssignPendingCoursesToEmployee
// ──────────────────────────────────────────────────────────────────────────────

func TestAssignPendingCoursesToEmployee_SaltaYaAsignados(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandFord)
	ids := st.addEmployees("s1", 1, "Vendedor")
	st.addCourse("c1", "s1", entity.BrandFord, true)
	st.addCourse("c2", "s1", entity.BrandFord, true)
	st.addAssignment("a0", "s1", ids[0], "c1", entity.AssignmentStatusPendiente)

	created, err := newEngine(st).AssignPendingCoursesToEmployee(context.Background(), ids[0], "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, created, "el curso ya asignado no cuenta")
}

func TestAssignPendingCoursesToEmployee_RespetaMarcaYCargo(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandGWM)
	ids := st.addEmployees("s1", 1, "Vendedor")
	st.addCourse("c-gwm", "s1", entity.BrandGWM, true)             // elegible por marca
	st.addCourse("c-ford", "s1", entity.BrandFord, true)           // marca incompatible
	st.addCourse("c-manual", "s1", entity.BrandGWM, false)         // fuera de conciliación
	st.addCourse("c-mec", "s1", entity.BrandGWM, true, "Mecánico") // cargo distinto

	created, err := newEngine(st).AssignPendingCoursesToEmployee(context.Background(), ids[0], "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Len(t, st.assignmentsFor("c-gwm"), 1)
	assert.Empty(t, st.assignmentsFor("c-ford"))
	assert.Empty(t, st.assignmentsFor("c-manual"))
	assert.Empty(t, st.assignmentsFor("c-mec"))
}

func TestAssignPendingCoursesToEmployee_CursoConCargoCompatible(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandGWM)
	ids := st.addEmployees("s1", 1, "Mecánico")
	// La marca FORD no coincide con la tienda, pero el cargo gobierna cuando hay
	// cargos obligatorios.
	st.addCourse("c-mec", "s1", entity.BrandFord, true, "Mecánico")

	created, err := newEngine(st).AssignPendingCoursesToEmployee(context.Background(), ids[0], "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestAssignPendingCoursesToEmployee_EmpleadoInexistenteEsNoOp(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandFord)
	st.addCourse("c1", "s1", entity.BrandFord, true)

	created, err := newEngine(st).AssignPendingCoursesToEmployee(context.Background(), "no-existe", "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

// ──────────────────────────────────────────────────────────────────────────────
// AssignCourseToEmployeesByFunction
// ──────────────────────────────────────────────────────────────────────────────

func TestAssignCourseToEmployeesByFunction_FiltraPorCargoExacto(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandGWM)
	st.addEmployees("s1", 2, "Mecánico")
	st.addEmployees("s1", 1, "Vendedor")
	st.addEmployees("s1", 1, "mecánico") // la comparación es sensible a mayúsculas
	// La marca del curso se ignora cuando hay cargos obligatorios.
	st.addCourse("c1", "s1", entity.BrandFord, true, "Mecánico")

	err := newEngine(st).AssignCourseToEmployeesByFunction(context.Background(), "s1", "c1", []string{"Mecánico"})
	require.NoError(t, err)
	assert.Len(t, st.assignmentsFor("c1"), 2, "solo los cargos con coincidencia exacta reciben el curso")
}

func TestAssignCourseToEmployeesByFunction_NoRetiraAtribuciones(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandGWM)
	mecanicos := st.addEmployees("s1", 2, "Mecánico")
	st.addEmployees("s1", 1, "Electricista")
	st.addCourse("c1", "s1", entity.BrandGWM, true, "Mecánico")
	st.addAssignment("a0", "s1", mecanicos[0], "c1", entity.AssignmentStatusPendiente)
	st.addAssignment("a1", "s1", mecanicos[1], "c1", entity.AssignmentStatusPendiente)

	// El conjunto de cargos cambió de Mecánico a Electricista: se asigna al
	// electricista, pero las atribuciones de los mecánicos no se revierten.
	err := newEngine(st).AssignCourseToEmployeesByFunction(context.Background(), "s1", "c1", []string{"Electricista"})
	require.NoError(t, err)
	assert.NotNil(t, st.assignments["a0"])
	assert.NotNil(t, st.assignments["a1"])
	assert.Len(t, st.assignmentsFor("c1"), 3)
}

func TestAssignCourseToEmployeesByFunction_GateAutoAssign(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandGWM)
	st.addEmployees("s1", 2, "Mecánico")
	st.addCourse("c1", "s1", entity.BrandGWM, false, "Mecánico")

	err := newEngine(st).AssignCourseToEmployeesByFunction(context.Background(), "s1", "c1", []string{"Mecánico"})
	require.NoError(t, err)
	assert.Empty(t, st.assignmentsFor("c1"))
}

func TestAssignCourseToEmployeesByFunction_SinCargosEsNoOp(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandGWM)
	st.addEmployees("s1", 2, "Mecánico")
	st.addCourse("c1", "s1", entity.BrandGWM, true)

	err := newEngine(st).AssignCourseToEmployeesByFunction(context.Background(), "s1", "c1", nil)
	require.NoError(t, err)
	assert.Empty(t, st.assignmentsFor("c1"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad global: a lo sumo una atribución por (empleado, curso) tras una
// secuencia de conciliaciones.
// ──────────────────────────────────────────────────────────────────────────────

func TestSecuenciaDeConciliaciones_SinDuplicados(t *testing.T) {
	st := newState()
	st.addStore("s1", entity.BrandFord)
	st.addStore("s2", entity.BrandAmbos)
	ids := st.addEmployees("s1", 2, "Mecánico")
	st.addEmployees("s2", 2, "Vendedor")
	st.addCourse("c1", "s1", entity.BrandFord, true)
	engine := newEngine(st)
	ctx := context.Background()

	_, err := engine.AutoAssignCourseToStores(ctx, "c1")
	require.NoError(t, err)
	require.NoError(t, engine.ReassignCourseByBrand(ctx, "c1", entity.BrandFord, entity.BrandAmbos))
	require.NoError(t, engine.AssignCourseToEmployeesByFunction(ctx, "s1", "c1", []string{"Mecánico"}))
	_, err = engine.AssignPendingCoursesToEmployee(ctx, ids[0], "s1")
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, a := range st.assignments {
		key := a.EmployeeID + "/" + a.CourseID
		assert.False(t, seen[key], "par duplicado: %s", key)
		seen[key] = true
	}
}
