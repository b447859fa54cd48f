package dto

// LoginRequest código de acceso del panel admin (el barcode reservado).
type LoginRequest struct {
	AccessCode string `json:"access_code"`
}

// LoginResponse token de sesión.
type LoginResponse struct {
	Token string `json:"token"`
}
