package dto

// ScanRequest barcode leído por el operador (texto libre).
type ScanRequest struct {
	BarcodeID string `json:"barcode_id"`
}

// Motivos de rechazo de un escaneo. Todos quedan registrados como
// transacción FAILURE; no son errores del sistema.
const (
	ScanReasonUnregistered   = "UNREGISTERED_BARCODE"
	ScanReasonAdminBarcode   = "ADMIN_BARCODE"
	ScanReasonQuotaExhausted = "QUOTA_EXHAUSTED"
)

// ScanResult resultado de un intento de canje. RemainingQuota y DailyQuota
// solo vienen en el caso SUCCESS (releídos post-decremento).
type ScanResult struct {
	Status         string `json:"status"` // SUCCESS | FAILURE
	Reason         string `json:"reason,omitempty"`
	StaffName      string `json:"staff_name,omitempty"`
	Department     string `json:"department,omitempty"`
	MenuName       string `json:"menu_name"`
	Price          int64  `json:"price"`
	RemainingQuota *int   `json:"remaining_quota,omitempty"`
	DailyQuota     *int   `json:"daily_quota,omitempty"`
}
