package repository

import "context"

// FunctionProgressRow progreso agregado de capacitación por cargo.
type FunctionProgressRow struct {
	Function       string
	Area           string
	TotalEmployees int
	TotalCourses   int
	Completed      int
	Pending        int
}

// AreaProgressRow progreso agregado de capacitación por área de negocio.
type AreaProgressRow struct {
	Area           string
	TotalEmployees int
	TotalCourses   int
	Completed      int
	Pending        int
}

// EmployeeCourseRow una atribución enriquecida con datos del curso (para el
// reporte de progreso individual).
type EmployeeCourseRow struct {
	AssignmentID   string
	CourseID       string
	CourseTitle    string
	CourseArea     string
	Status         string
	CertificateURL string
}

// ReportRepository consultas de solo lectura para reportes de progreso.
type ReportRepository interface {
	FunctionProgress(ctx context.Context) ([]FunctionProgressRow, error)
	AreaProgress(ctx context.Context) ([]AreaProgressRow, error)
	EmployeeCourses(ctx context.Context, employeeID string) ([]EmployeeCourseRow, error)
}
