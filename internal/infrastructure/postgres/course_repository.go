package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Capacitaciones-api/internal/domain"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/entity"
	"github.com/jhoicas/Capacitaciones-api/internal/domain/repository"
)

var _ repository.CourseRepository = (*CourseRepo)(nil)

// CourseRepo implementación del puerto CourseRepository sobre PostgreSQL (usable con pool o tx).
// Los cargos obligatorios viven en la tabla hija course_required_functions y se
// agregan como array en las lecturas.
type CourseRepo struct {
	q Querier
}

// NewCourseRepository construye el adaptador de persistencia para cursos. Pasar pool o tx (Querier).
func NewCourseRepository(q Querier) *CourseRepo {
	return &CourseRepo{q: q}
}

const courseSelect = `
	SELECT c.id, c.store_id, c.title, c.description, c.area, c.brand, c.modality, c.auto_assign,
	       COALESCE(array_agg(f.function ORDER BY f.function) FILTER (WHERE f.function IS NOT NULL), '{}'),
	       c.created_at, c.updated_at
	FROM courses c
	LEFT JOIN course_required_functions f ON f.course_id = c.id`

// Create persiste un nuevo curso junto con sus cargos obligatorios.
func (r *CourseRepo) Create(course *entity.Course) error {
	query := `
		INSERT INTO courses (id, store_id, title, description, area, brand, modality, auto_assign, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		course.ID, course.StoreID, course.Title, course.Description, course.Area,
		course.Brand, course.Modality, course.AutoAssign, course.CreatedAt, course.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert course: %w", err)
	}
	return r.insertRequiredFunctions(course.ID, course.RequiredFunctions)
}

// GetByID obtiene un curso por ID con sus cargos obligatorios.
func (r *CourseRepo) GetByID(id string) (*entity.Course, error) {
	query := courseSelect + ` WHERE c.id = $1 GROUP BY c.id`
	var c entity.Course
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.StoreID, &c.Title, &c.Description, &c.Area, &c.Brand, &c.Modality,
		&c.AutoAssign, &c.RequiredFunctions, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return &c, nil
}

// Update actualiza un curso existente. Los cargos obligatorios se reemplazan
// aparte con ReplaceRequiredFunctions.
func (r *CourseRepo) Update(course *entity.Course) error {
	query := `
		UPDATE courses SET title = $2, description = $3, area = $4, brand = $5, modality = $6, auto_assign = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		course.ID, course.Title, course.Description, course.Area, course.Brand,
		course.Modality, course.AutoAssign, course.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

// List lista cursos con paginación.
func (r *CourseRepo) List(limit, offset int) ([]*entity.Course, error) {
	query := courseSelect + ` GROUP BY c.id ORDER BY c.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()
	return scanCourses(rows)
}

// ListByStore lista todos los cursos de una tienda.
func (r *CourseRepo) ListByStore(storeID string) ([]*entity.Course, error) {
	query := courseSelect + ` WHERE c.store_id = $1 GROUP BY c.id ORDER BY c.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list courses by store: %w", err)
	}
	defer rows.Close()
	return scanCourses(rows)
}

// ReplaceRequiredFunctions reemplaza el conjunto completo de cargos obligatorios del curso.
func (r *CourseRepo) ReplaceRequiredFunctions(courseID string, functions []string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM course_required_functions WHERE course_id = $1`, courseID)
	if err != nil {
		return fmt.Errorf("delete required functions: %w", err)
	}
	return r.insertRequiredFunctions(courseID, functions)
}

// Delete elimina un curso por ID (los cargos obligatorios caen por ON DELETE CASCADE).
func (r *CourseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

func (r *CourseRepo) insertRequiredFunctions(courseID string, functions []string) error {
	for _, fn := range functions {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO course_required_functions (course_id, function) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			courseID, fn,
		)
		if err != nil {
			return fmt.Errorf("insert required function: %w", err)
		}
	}
	return nil
}

func scanCourses(rows pgx.Rows) ([]*entity.Course, error) {
	var list []*entity.Course
	for rows.Next() {
		var c entity.Course
		if err := rows.Scan(&c.ID, &c.StoreID, &c.Title, &c.Description, &c.Area, &c.Brand,
			&c.Modality, &c.AutoAssign, &c.RequiredFunctions, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
