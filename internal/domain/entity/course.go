package entity

import "time"

// Modalidades de curso.
const (
	ModalityOnline     = "online"
	ModalityPresencial = "presencial"
	ModalityMixta      = "mixta"
)

// Course representa un curso de capacitación ofrecido en una tienda.
//
// Dos mecanismos alternativos de elegibilidad para asignación automática:
//   - Brand: el curso se asigna a los empleados de las tiendas compatibles con la marca.
//   - RequiredFunctions: si no está vacío, el curso se asigna solo a empleados cuyo
//     cargo pertenece al conjunto; en ese caso la marca no gobierna la asignación inicial.
//
// AutoAssign en false excluye el curso de toda reconciliación automática.
type Course struct {
	ID                string
	StoreID           string
	Title             string
	Description       string
	Area              string // ventas | pos_ventas
	Brand             string // FORD | GWM | AMBOS
	Modality          string // online | presencial | mixta
	AutoAssign        bool
	RequiredFunctions []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasRequiredFunctions indica si la elegibilidad del curso se rige por cargos.
func (c *Course) HasRequiredFunctions() bool {
	return len(c.RequiredFunctions) > 0
}
