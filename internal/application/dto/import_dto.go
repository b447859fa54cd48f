package dto

// ImportRowError detalle de una fila descartada durante el import.
type ImportRowError struct {
	Line   int    `json:"line"` // línea del archivo (1 = cabecera)
	Reason string `json:"reason"`
}

// ImportResult resultado del import masivo de staff por CSV.
type ImportResult struct {
	BatchID string           `json:"batch_id"`
	Success int              `json:"success"`
	Failed  int              `json:"failed"`
	Errors  []ImportRowError `json:"errors,omitempty"`
}
