package repository

import "github.com/jhoicas/kantin-api/internal/domain/entity"

// StaffRepository define el puerto de persistencia para Staff (DIP).
// GetByBarcode devuelve (nil, nil) si no existe.
type StaffRepository interface {
	Create(staff *entity.Staff) error
	GetByBarcode(barcodeID string) (*entity.Staff, error)
	// List devuelve todo el staff ordinario; el registro admin reservado
	// queda excluido.
	List() ([]entity.Staff, error)
	// Update modifica nombre, departamento y cuota por barcode. Re-sincroniza
	// RemainingQuota = DailyQuota (editar re-otorga la cuota completa).
	Update(staff *entity.Staff) error
	Delete(barcodeID string) error
	// Upsert inserta o reemplaza por barcode con cuota restante completa
	// (semántica del import masivo).
	Upsert(staff *entity.Staff) error
	// ResetAllQuotas pone RemainingQuota = DailyQuota en una sola sentencia bulk.
	ResetAllQuotas() error
	// ConditionalDecrement descuenta 1 de RemainingQuota solo si sigue > 0 a
	// nivel de fila. Devuelve false si el guard no aplicó (cuota ya agotada).
	ConditionalDecrement(barcodeID string) (bool, error)
}
