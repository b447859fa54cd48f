package dto

// ReportFilter parámetros del reporte de transacciones. Fechas en
// YYYY-MM-DD; vacías equivalen al día actual. Department y Status vacíos
// significan "todos".
type ReportFilter struct {
	FromDate   string `query:"from"`
	ToDate     string `query:"to"`
	Department string `query:"department"`
	Status     string `query:"status"` // "", SUCCESS, FAILURE
}

// ReportRowResponse fila de la vista unida del reporte.
type ReportRowResponse struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	StaffName  string `json:"staff_name"`
	Department string `json:"department"`
	MenuName   string `json:"menu"`
	Price      int64  `json:"price"`
	Status     string `json:"status"`
}

// ReportSummaryResponse bloque de estadísticas sobre la tabla.
type ReportSummaryResponse struct {
	SuccessCount int64  `json:"success_count"`
	FailureCount int64  `json:"failure_count"`
	TotalSpend   string `json:"total_spend"` // decimal serializado como string
}

// ReportResponse reporte completo: resumen + detalle.
type ReportResponse struct {
	Summary ReportSummaryResponse `json:"summary"`
	Items   []ReportRowResponse   `json:"items"`
}

// ExportFile archivo exportado listo para descargar.
type ExportFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}
