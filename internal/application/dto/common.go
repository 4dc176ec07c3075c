package dto

// Response sobre JSON de todas las respuestas de la API.
// Data es null en errores; Code solo se rellena en errores (VALIDATION, NOT_FOUND, ...).
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data"`
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ReorderItem nueva posición de un registro (FAQ o foto de galería).
type ReorderItem struct {
	ID         string `json:"id" validate:"required"`
	OrderIndex int    `json:"order_index" validate:"min=0"`
}

// ReorderRequest lote de posiciones. Cada par se aplica por separado, sin rollback.
type ReorderRequest struct {
	Items []ReorderItem `json:"items" validate:"required,min=1,unique=ID,dive"`
}

// ReorderResult resultado de un reordenamiento.
type ReorderResult struct {
	Updated int      `json:"updated"`
	Failed  []string `json:"failed"`
}
