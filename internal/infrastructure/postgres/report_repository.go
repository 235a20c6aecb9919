package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes de progreso de capacitación.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// FunctionProgress agrupa las atribuciones por cargo: cuántos empleados lo
// ocupan, cuántos cursos distintos tienen asignados y el desglose
// concluido/pendiente.
func (r *ReportRepo) FunctionProgress(ctx context.Context) ([]repository.FunctionProgressRow, error) {
	const query = `
	SELECT
	    e.function                                                   AS function,
	    e.area                                                       AS area,
	    COUNT(DISTINCT e.id)                                         AS total_employees,
	    COUNT(DISTINCT a.course_id)                                  AS total_courses,
	    COUNT(*) FILTER (WHERE a.status = 'concluido')               AS completed,
	    COUNT(*) FILTER (WHERE a.status = 'pendiente')               AS pending
	FROM employees e
	JOIN assignments a ON a.employee_id = e.id
	GROUP BY e.function, e.area
	ORDER BY e.function`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.FunctionProgress: %w", err)
	}
	defer rows.Close()

	var results []repository.FunctionProgressRow
	for rows.Next() {
		var row repository.FunctionProgressRow
		if err := rows.Scan(
			&row.Function,
			&row.Area,
			&row.TotalEmployees,
			&row.TotalCourses,
			&row.Completed,
			&row.Pending,
		); err != nil {
			return nil, fmt.Errorf("reports.FunctionProgress scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// AreaProgress agrupa las atribuciones por área de negocio (ventas / pos_ventas).
func (r *ReportRepo) AreaProgress(ctx context.Context) ([]repository.AreaProgressRow, error) {
	const query = `
	SELECT
	    e.area                                                       AS area,
	    COUNT(DISTINCT e.id)                                         AS total_employees,
	    COUNT(DISTINCT a.course_id)                                  AS total_courses,
	    COUNT(*) FILTER (WHERE a.status = 'concluido')               AS completed,
	    COUNT(*) FILTER (WHERE a.status = 'pendiente')               AS pending
	FROM employees e
	JOIN assignments a ON a.employee_id = e.id
	GROUP BY e.area
	ORDER BY e.area`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.AreaProgress: %w", err)
	}
	defer rows.Close()

	var results []repository.AreaProgressRow
	for rows.Next() {
		var row repository.AreaProgressRow
		if err := rows.Scan(
			&row.Area,
			&row.TotalEmployees,
			&row.TotalCourses,
			&row.Completed,
			&row.Pending,
		); err != nil {
			return nil, fmt.Errorf("reports.AreaProgress scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// EmployeeCourses devuelve las atribuciones de un empleado enriquecidas con los
// datos del curso, para el reporte de progreso individual.
func (r *ReportRepo) EmployeeCourses(ctx context.Context, employeeID string) ([]repository.EmployeeCourseRow, error) {
	const query = `
	SELECT
	    a.id              AS assignment_id,
	    c.id              AS course_id,
	    c.title           AS course_title,
	    c.area            AS course_area,
	    a.status          AS status,
	    a.certificate_url AS certificate_url
	FROM assignments a
	JOIN courses c ON c.id = a.course_id
	WHERE a.employee_id = $1
	ORDER BY a.assigned_at DESC`

	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("reports.EmployeeCourses: %w", err)
	}
	defer rows.Close()

	var results []repository.EmployeeCourseRow
	for rows.Next() {
		var row repository.EmployeeCourseRow
		if err := rows.Scan(
			&row.AssignmentID,
			&row.CourseID,
			&row.CourseTitle,
			&row.CourseArea,
			&row.Status,
			&row.CertificateURL,
		); err != nil {
			return nil, fmt.Errorf("reports.EmployeeCourses scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
