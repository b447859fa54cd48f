package dto

// SetMenuRequest configura el menú del día actual (upsert por fecha).
type SetMenuRequest struct {
	MenuName string `json:"menu_name"`
	Price    int64  `json:"price"`
}

// MenuResponse menú vigente de una fecha.
type MenuResponse struct {
	Date     string `json:"date"`
	MenuName string `json:"menu_name"`
	Price    int64  `json:"price"`
}
