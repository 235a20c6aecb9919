package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Capacitaciones-api/internal/application/dto"
	"github.com/jhoicas/Capacitaciones-api/internal/domain"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/entity"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/repository"
)

// CertificateData datos que van impresos en el certificado de conclusión.
type CertificateData struct {
	EmployeeName string
	CourseTitle  string
	CourseArea   string
	Modality     string
	StoreName    string
	CompletedAt  time.Time
}

// CertificateGenerator puerto para generar el PDF del certificado.
type CertificateGenerator interface {
	GenerateCertificatePDF(ctx context.Context, data CertificateData) ([]byte, error)
}

// AssignmentUseCase casos de uso para atribuciones: atribución manual, consulta,
// conclusión con certificado y descarga del certificado en PDF.
type AssignmentUseCase struct {
	repo         repository.AssignmentRepository
	employeeRepo repository.EmployeeRepository
	courseRepo   repository.CourseRepository
	storeRepo    repository.StoreRepository
	pdfGenerator CertificateGenerator
}

// NewAssignmentUseCase construye el caso de uso.
func NewAssignmentUseCase(
	repo repository.AssignmentRepository,
	employeeRepo repository.EmployeeRepository,
	courseRepo repository.CourseRepository,
	storeRepo repository.StoreRepository,
	pdfGenerator CertificateGenerator,
) *AssignmentUseCase {
	return &AssignmentUseCase{
		repo:         repo,
		employeeRepo: employeeRepo,
		courseRepo:   courseRepo,
		storeRepo:    storeRepo,
		pdfGenerator: pdfGenerator,
	}
}

// Create registra una atribución manual (decisión del administrador, fuera del
// motor automático). Devuelve domain.ErrDuplicate si el empleado ya tiene el curso.
func (uc *AssignmentUseCase) Create(in dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	employee, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	course, err := uc.courseRepo.GetByID(in.CourseID)
	if err != nil {
		return nil, err
	}
	if employee == nil || course == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	assignment := &entity.Assignment{
		ID:         uuid.New().String(),
		StoreID:    employee.StoreID,
		EmployeeID: employee.ID,
		CourseID:   course.ID,
		Status:     entity.AssignmentStatusPendiente,
		AssignedAt: now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(assignment); err != nil {
		return nil, err
	}
	return toAssignmentResponse(assignment), nil
}

// GetByID obtiene una atribución por ID.
func (uc *AssignmentUseCase) GetByID(id string) (*dto.AssignmentResponse, error) {
	assignment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, nil
	}
	return toAssignmentResponse(assignment), nil
}

// Complete marca la atribución como concluida y guarda la referencia del
// certificado. Concluir dos veces es domain.ErrConflict: el registro de
// conclusión es inmutable una vez creado.
func (uc *AssignmentUseCase) Complete(id string, in dto.CompleteAssignmentRequest) (*dto.AssignmentResponse, error) {
	assignment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, domain.ErrNotFound
	}
	if assignment.IsCompleted() {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	assignment.Status = entity.AssignmentStatusConcluido
	assignment.CompletedAt = &now
	assignment.CertificateURL = in.CertificateURL
	assignment.CertificateKey = in.CertificateKey
	assignment.UpdatedAt = now
	if err := uc.repo.Update(assignment); err != nil {
		return nil, err
	}
	return toAssignmentResponse(assignment), nil
}

// List lista atribuciones filtradas por empleado o tienda (o todas, paginadas).
func (uc *AssignmentUseCase) List(employeeID, storeID string, limit, offset int) (*dto.AssignmentListResponse, error) {
	var list []*entity.Assignment
	var err error
	switch {
	case employeeID != "":
		list, err = uc.repo.ListByEmployee(employeeID)
	case storeID != "":
		list, err = uc.repo.ListByStore(storeID)
	default:
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssignmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssignmentResponse(a))
	}
	return &dto.AssignmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una atribución por ID (retiro manual del administrador).
func (uc *AssignmentUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// CertificatePDF genera el certificado imprimible de una atribución concluida.
// Para atribuciones pendientes devuelve domain.ErrConflict.
func (uc *AssignmentUseCase) CertificatePDF(ctx context.Context, id string) ([]byte, error) {
	assignment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, domain.ErrNotFound
	}
	if !assignment.IsCompleted() {
		return nil, domain.ErrConflict
	}
	employee, err := uc.employeeRepo.GetByID(assignment.EmployeeID)
	if err != nil {
		return nil, err
	}
	course, err := uc.courseRepo.GetByID(assignment.CourseID)
	if err != nil {
		return nil, err
	}
	if employee == nil || course == nil {
		return nil, domain.ErrNotFound
	}
	storeName := ""
	if store, err := uc.storeRepo.GetByID(assignment.StoreID); err == nil && store != nil {
		storeName = store.Name
	}
	completedAt := time.Now()
	if assignment.CompletedAt != nil {
		completedAt = *assignment.CompletedAt
	}
	return uc.pdfGenerator.GenerateCertificatePDF(ctx, CertificateData{
		EmployeeName: employee.Name,
		CourseTitle:  course.Title,
		CourseArea:   course.Area,
		Modality:     course.Modality,
		StoreName:    storeName,
		CompletedAt:  completedAt,
	})
}

func toAssignmentResponse(a *entity.Assignment) *dto.AssignmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AssignmentResponse{
		ID:             a.ID,
		StoreID:        a.StoreID,
		EmployeeID:     a.EmployeeID,
		CourseID:       a.CourseID,
		Status:         a.Status,
		AssignedAt:     a.AssignedAt,
		CompletedAt:    a.CompletedAt,
		CertificateURL: a.CertificateURL,
		UpdatedAt:      a.UpdatedAt,
	}
}
