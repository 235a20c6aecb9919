package dto

import "time"

// CreateEmployeeRequest alta de empleado. El alta dispara la asignación
// automática de los cursos pendientes de su tienda.
type CreateEmployeeRequest struct {
	StoreID  string `json:"store_id" validate:"required,uuid4"`
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Function string `json:"function" validate:"required,max=255"`
	Area     string `json:"area" validate:"required,oneof=ventas pos_ventas"`
}

// UpdateEmployeeRequest edición parcial de empleado.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Function *string `json:"function" validate:"omitempty,max=255"`
	Area     *string `json:"area" validate:"omitempty,oneof=ventas pos_ventas"`
	Status   *string `json:"status" validate:"omitempty,oneof=activo inactivo"`
}

// EmployeeResponse representación de empleado en respuestas.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Function  string    `json:"function"`
	Area      string    `json:"area"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateEmployeeResponse alta de empleado + cuántos cursos se le asignaron.
type CreateEmployeeResponse struct {
	Employee        EmployeeResponse `json:"employee"`
	CoursesAssigned int              `json:"courses_assigned"`
}

// EmployeeListResponse listado paginado de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
