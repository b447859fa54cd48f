package dto

// CreateStaffRequest alta manual de staff.
type CreateStaffRequest struct {
	BarcodeID  string `json:"barcode_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	DailyQuota int    `json:"daily_quota"`
}

// UpdateStaffRequest edición de staff (el barcode no se puede cambiar).
type UpdateStaffRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	DailyQuota int    `json:"daily_quota"`
}

// StaffResponse staff serializado hacia la UI.
type StaffResponse struct {
	BarcodeID      string `json:"barcode_id"`
	Name           string `json:"name"`
	Department     string `json:"department"`
	DailyQuota     int    `json:"daily_quota"`
	RemainingQuota int    `json:"remaining_quota"`
}

// StaffListResponse listado completo (sin el registro admin).
type StaffListResponse struct {
	Items []StaffResponse `json:"items"`
	Total int             `json:"total"`
}
