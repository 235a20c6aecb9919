package dto

import "time"

// CreateCourseRequest alta de curso. Si AutoAssign es true, la creación dispara
// la asignación automática: por cargos obligatorios si RequiredFunctions no está
// vacío, por marca en caso contrario.
type CreateCourseRequest struct {
	StoreID           string   `json:"store_id" validate:"required,uuid4"`
	Title             string   `json:"title" validate:"required,max=255"`
	Description       string   `json:"description"`
	Area              string   `json:"area" validate:"required,oneof=ventas pos_ventas"`
	Brand             string   `json:"brand" validate:"required,oneof=FORD GWM AMBOS"`
	Modality          string   `json:"modality" validate:"required,oneof=online presencial mixta"`
	AutoAssign        *bool    `json:"auto_assign"` // nil = true (por defecto se auto-asigna)
	RequiredFunctions []string `json:"required_functions" validate:"omitempty,dive,required,max=255"`
}

// UpdateCourseRequest edición parcial de curso. Un cambio de Brand dispara la
// reconciliación por marca; un cambio de RequiredFunctions dispara la asignación
// por cargo (sin retirar lo ya asignado).
type UpdateCourseRequest struct {
	Title             *string  `json:"title" validate:"omitempty,max=255"`
	Description       *string  `json:"description"`
	Area              *string  `json:"area" validate:"omitempty,oneof=ventas pos_ventas"`
	Brand             *string  `json:"brand" validate:"omitempty,oneof=FORD GWM AMBOS"`
	Modality          *string  `json:"modality" validate:"omitempty,oneof=online presencial mixta"`
	AutoAssign        *bool    `json:"auto_assign"`
	RequiredFunctions []string `json:"required_functions" validate:"omitempty,dive,required,max=255"`
}

// CourseResponse representación de curso en respuestas.
type CourseResponse struct {
	ID                string    `json:"id"`
	StoreID           string    `json:"store_id"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	Area              string    `json:"area"`
	Brand             string    `json:"brand"`
	Modality          string    `json:"modality"`
	AutoAssign        bool      `json:"auto_assign"`
	RequiredFunctions []string  `json:"required_functions,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CreateCourseResponse alta de curso + cuántas atribuciones generó.
type CreateCourseResponse struct {
	Course             CourseResponse `json:"course"`
	AssignmentsCreated int            `json:"assignments_created"`
}

// CourseListResponse listado paginado de cursos.
type CourseListResponse struct {
	Items []CourseResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
