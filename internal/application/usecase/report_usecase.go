package usecase

import (
	"context"
	"math"

	"github.com/jhoicas/Capacitaciones-api/internal/application/dto"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/entity"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/repository"
)

// ReportUseCase reportes de progreso de capacitación (solo lectura).
type ReportUseCase struct {
	repo         repository.ReportRepository
	employeeRepo repository.EmployeeRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository, employeeRepo repository.EmployeeRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo, employeeRepo: employeeRepo}
}

// FunctionProgress progreso agregado por cargo.
func (uc *ReportUseCase) FunctionProgress(ctx context.Context) ([]dto.FunctionProgressResponse, error) {
	rows, err := uc.repo.FunctionProgress(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FunctionProgressResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FunctionProgressResponse{
			Function:             r.Function,
			Area:                 r.Area,
			TotalEmployees:       r.TotalEmployees,
			TotalCourses:         r.TotalCourses,
			CompletedCourses:     r.Completed,
			PendingCourses:       r.Pending,
			CompletionPercentage: percentage(r.Completed, r.Completed+r.Pending),
		})
	}
	return out, nil
}

// AreaProgress progreso agregado por área de negocio.
func (uc *ReportUseCase) AreaProgress(ctx context.Context) ([]dto.AreaProgressResponse, error) {
	rows, err := uc.repo.AreaProgress(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AreaProgressResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AreaProgressResponse{
			Area:                 r.Area,
			TotalEmployees:       r.TotalEmployees,
			TotalCourses:         r.TotalCourses,
			CompletedCourses:     r.Completed,
			PendingCourses:       r.Pending,
			CompletionPercentage: percentage(r.Completed, r.Completed+r.Pending),
		})
	}
	return out, nil
}

// EmployeeProgress progreso individual de un empleado con el detalle de cursos.
// Devuelve nil si el empleado no existe.
func (uc *ReportUseCase) EmployeeProgress(ctx context.Context, employeeID string) (*dto.EmployeeProgressResponse, error) {
	employee, err := uc.employeeRepo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	rows, err := uc.repo.EmployeeCourses(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	courses := make([]dto.EmployeeCourseProgress, 0, len(rows))
	completed := 0
	for _, r := range rows {
		if r.Status == entity.AssignmentStatusConcluido {
			completed++
		}
		courses = append(courses, dto.EmployeeCourseProgress{
			AssignmentID:   r.AssignmentID,
			CourseID:       r.CourseID,
			CourseTitle:    r.CourseTitle,
			CourseArea:     r.CourseArea,
			Status:         r.Status,
			CertificateURL: r.CertificateURL,
		})
	}
	return &dto.EmployeeProgressResponse{
		Employee:             *toEmployeeResponse(employee),
		Courses:              courses,
		TotalCourses:         len(rows),
		CompletedCourses:     completed,
		PendingCourses:       len(rows) - completed,
		CompletionPercentage: percentage(completed, len(rows)),
	}, nil
}

// percentage redondea completado/total a porcentaje entero; 0 si no hay cursos.
func percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
