package entity

import "time"

// Marcas de vehículo que determinan qué tiendas reciben un curso automáticamente.
// Una tienda con BrandAmbos comercializa ambas marcas y recibe cursos de cualquiera.
const (
	BrandFord  = "FORD"
	BrandGWM   = "GWM"
	BrandAmbos = "AMBOS"
)

// Estados de tienda.
const (
	StoreStatusActivo   = "activo"
	StoreStatusInactivo = "inactivo"
)

// Store representa una tienda/sucursal del grupo (tenant del sistema).
// Brand reemplaza la antigua tabla fija marca->tiendas: la elegibilidad
// se deriva de este atributo, no de IDs codificados.
type Store struct {
	ID        string
	Code      string
	Name      string
	City      string
	Brand     string // FORD | GWM | AMBOS
	Status    string // activo | inactivo
	CreatedAt time.Time
	UpdatedAt time.Time
}
