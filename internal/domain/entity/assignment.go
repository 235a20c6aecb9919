package entity

import "time"

// Estados de atribución de curso.
const (
	AssignmentStatusPendiente = "pendiente"
	AssignmentStatusConcluido = "concluido"
)

// Assignment vincula un empleado con un curso que debe realizar.
//
// Invariante: existe a lo sumo una atribución por par (EmployeeID, CourseID),
// sin importar la tienda; la base lo garantiza con un constraint único y la
// aplicación lo verifica antes de insertar.
type Assignment struct {
	ID             string
	StoreID        string
	EmployeeID     string
	CourseID       string
	Status         string // pendiente | concluido
	AssignedAt     time.Time
	CompletedAt    *time.Time
	CertificateURL string // referencia externa al certificado (vacío si no hay)
	CertificateKey string // clave del archivo en el backend de almacenamiento
	UpdatedAt      time.Time
}

// IsCompleted indica si el curso ya fue concluido por el empleado.
func (a *Assignment) IsCompleted() bool {
	return a.Status == AssignmentStatusConcluido
}
