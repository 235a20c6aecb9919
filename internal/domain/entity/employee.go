package entity

import "time"

// Áreas de negocio a las que pertenece un empleado o curso.
const (
	AreaVentas    = "ventas"
	AreaPosVentas = "pos_ventas"
)

// Estados de empleado.
const (
	EmployeeStatusActivo   = "activo"
	EmployeeStatusInactivo = "inactivo"
)

// Employee representa un empleado de una tienda que realiza capacitaciones.
// Function es el cargo en texto libre (ej: "Mecánico", "Vendedor"); junto con
// Area determina la elegibilidad para asignación automática de cursos.
type Employee struct {
	ID        string
	StoreID   string
	Name      string
	Email     string
	Function  string
	Area      string // ventas | pos_ventas
	Status    string // activo | inactivo
	CreatedAt time.Time
	UpdatedAt time.Time
}
