package entity

// Identidad reservada del administrador. Se siembra una sola vez al primer
// arranque y queda excluida de listados, ediciones y canjes.
const (
	AdminBarcodeID      = "9999"
	AdminDepartmentName = "ADMIN"
	AdminDailyQuota     = 999
)

// Staff representa a un empleado con derecho a comidas en la cantina.
// Invariante: 0 <= RemainingQuota; normalmente RemainingQuota <= DailyQuota
// (reset/edición re-sincronizan RemainingQuota = DailyQuota).
type Staff struct {
	ID             int64
	BarcodeID      string // clave única, valor leído del carnet
	Name           string
	DepartmentName string // referencia por nombre a Department (sin FK dura)
	DailyQuota     int
	RemainingQuota int
}

// IsAdmin indica si el registro corresponde a la identidad reservada.
func (s *Staff) IsAdmin() bool {
	return s.BarcodeID == AdminBarcodeID
}
