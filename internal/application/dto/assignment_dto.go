package dto

import "time"

// CreateAssignmentRequest atribución manual de un curso a un empleado.
type CreateAssignmentRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid4"`
	CourseID   string `json:"course_id" validate:"required,uuid4"`
}

// CompleteAssignmentRequest marca una atribución como concluida y registra la
// referencia del certificado (URL y clave en el backend de archivos, opcionales).
type CompleteAssignmentRequest struct {
	CertificateURL string `json:"certificate_url" validate:"omitempty,url"`
	CertificateKey string `json:"certificate_key" validate:"omitempty,max=512"`
}

// AssignmentResponse representación de atribución en respuestas.
type AssignmentResponse struct {
	ID             string     `json:"id"`
	StoreID        string     `json:"store_id"`
	EmployeeID     string     `json:"employee_id"`
	CourseID       string     `json:"course_id"`
	Status         string     `json:"status"`
	AssignedAt     time.Time  `json:"assigned_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CertificateURL string     `json:"certificate_url,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// AssignmentListResponse listado paginado de atribuciones.
type AssignmentListResponse struct {
	Items []AssignmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
