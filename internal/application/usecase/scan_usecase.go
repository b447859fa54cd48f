package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/kantin-api/internal/application/dto"
	"github.com/jhoicas/kantin-api/internal/application/ports"
	"github.com/jhoicas/kantin-api/internal/domain"
	"github.com/jhoicas/kantin-api/internal/domain/entity"
	"github.com/jhoicas/kantin-api/internal/domain/repository"
)

// ScanTxRunner ejecuta el par de escrituras del canje (insert de transacción
// + decremento condicionado) dentro de una misma transacción de base de datos.
type ScanTxRunner interface {
	Run(ctx context.Context, fn func(
		staffRepo repository.StaffRepository,
		trxRepo repository.TransactionRepository,
	) error) error
}

// ScanUseCase motor de canje: convierte (barcode, menú de hoy) en una
// transacción registrada y, si aplica, un decremento de cuota. Cada intento
// de escaneo escribe exactamente una transacción; solo la rama SUCCESS
// descuenta cuota.
type ScanUseCase struct {
	staffRepo repository.StaffRepository
	menuRepo  repository.DailyMenuRepository
	txRunner  ScanTxRunner
	cache     ports.Invalidator
	now       func() time.Time
}

// NewScanUseCase construye el motor de canje. staffRepo y menuRepo deben ser
// las vistas cacheadas; las escrituras pasan por txRunner con repos desnudos
// y por eso el caso de uso invalida la caché explícitamente tras cada commit.
func NewScanUseCase(
	staffRepo repository.StaffRepository,
	menuRepo repository.DailyMenuRepository,
	txRunner ScanTxRunner,
	cache ports.Invalidator,
) *ScanUseCase {
	return &ScanUseCase{
		staffRepo: staffRepo,
		menuRepo:  menuRepo,
		txRunner:  txRunner,
		cache:     cache,
		now:       time.Now,
	}
}

// WithClock fija el reloj (tests).
func (uc *ScanUseCase) WithClock(now func() time.Time) *ScanUseCase {
	uc.now = now
	return uc
}

// Scan procesa un intento de canje para el barcode dado contra el menú de hoy.
//
// Precondición dura: sin menú configurado no se escribe NINGUNA transacción
// y se devuelve domain.ErrMenuNotConfigured. Con menú, toda rama (barcode
// desconocido, barcode admin, cuota agotada, éxito) registra exactamente una
// transacción; la rama de éxito además decrementa la cuota con guard de fila
// (remaining_quota > 0) y relee el staff para reportar la cuota restante
// post-decremento.
func (uc *ScanUseCase) Scan(ctx context.Context, barcodeID string) (*dto.ScanResult, error) {
	barcodeID = strings.TrimSpace(barcodeID)
	if barcodeID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	today := now.Format("2006-01-02")

	menu, err := uc.menuRepo.GetByDate(today)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, domain.ErrMenuNotConfigured
	}

	staff, err := uc.staffRepo.GetByBarcode(barcodeID)
	if err != nil {
		return nil, err
	}

	status := entity.ScanSuccess
	reason := ""
	snapshot := entity.UnknownStaffName
	switch {
	case staff == nil:
		status = entity.ScanFailure
		reason = dto.ScanReasonUnregistered
	case staff.IsAdmin():
		status = entity.ScanFailure
		reason = dto.ScanReasonAdminBarcode
		snapshot = staff.Name
	case staff.RemainingQuota <= 0:
		status = entity.ScanFailure
		reason = dto.ScanReasonQuotaExhausted
		snapshot = staff.Name
	default:
		snapshot = staff.Name
	}

	trx := &entity.Transaction{
		BarcodeID:         barcodeID,
		Date:              today,
		Time:              now.Format("15:04:05"),
		MenuName:          menu.MenuName,
		Price:             menu.Price,
		StaffNameSnapshot: snapshot,
		Status:            status,
	}

	err = uc.txRunner.Run(ctx, func(staffRepo repository.StaffRepository, trxRepo repository.TransactionRepository) error {
		if err := trxRepo.Insert(trx); err != nil {
			return err
		}
		if status == entity.ScanSuccess {
			// El guard de fila puede perder la carrera contra otro escritor;
			// en ese caso la fila simplemente no baja de cero.
			if _, err := staffRepo.ConditionalDecrement(barcodeID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Invalidación total y síncrona: la relectura de abajo ya ve lo escrito.
	uc.cache.Flush()

	result := &dto.ScanResult{
		Status:     string(status),
		Reason:     reason,
		MenuName:   menu.MenuName,
		Price:      menu.Price,
		StaffName:  "",
		Department: "",
	}
	if staff != nil {
		result.StaffName = staff.Name
		result.Department = staff.DepartmentName
	}
	if status == entity.ScanSuccess {
		after, err := uc.staffRepo.GetByBarcode(barcodeID)
		if err != nil {
			return nil, err
		}
		if after != nil {
			result.StaffName = after.Name
			result.Department = after.DepartmentName
			result.RemainingQuota = &after.RemainingQuota
			result.DailyQuota = &after.DailyQuota
		}
	}
	return result, nil
}
