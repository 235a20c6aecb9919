package dto

import "time"

// CreateStoreRequest alta de tienda.
type CreateStoreRequest struct {
	Code  string `json:"code" validate:"required,max=50"`
	Name  string `json:"name" validate:"required,max=255"`
	City  string `json:"city" validate:"omitempty,max=255"`
	Brand string `json:"brand" validate:"required,oneof=FORD GWM AMBOS"`
}

// UpdateStoreRequest edición parcial de tienda.
type UpdateStoreRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=255"`
	City   *string `json:"city" validate:"omitempty,max=255"`
	Brand  *string `json:"brand" validate:"omitempty,oneof=FORD GWM AMBOS"`
	Status *string `json:"status" validate:"omitempty,oneof=activo inactivo"`
}

// StoreResponse representación de tienda en respuestas.
type StoreResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	City      string    `json:"city,omitempty"`
	Brand     string    `json:"brand"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreListResponse listado de tiendas.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
}
