package dto

// PageResponse refleja los parámetros de página aplicados en un listado.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse es el cuerpo uniforme de los errores HTTP de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
