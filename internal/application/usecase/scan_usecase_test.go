package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kantin-api/internal/application/dto"
	"github.com/jhoicas/kantin-api/internal/application/usecase"
	"github.com/jhoicas/kantin-api/internal/domain"
	"github.com/jhoicas/kantin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del motor de canje. Invariante central: con menú configurado, cada
// intento de escaneo escribe exactamente UNA transacción, sea cual sea la
// rama; solo la rama SUCCESS descuenta cuota.
// ──────────────────────────────────────────────────────────────────────────────

var testClock = func() time.Time {
	return time.Date(2026, 9, 1, 12, 30, 45, 0, time.UTC)
}

const testToday = "2026-09-01"

type scanFixture struct {
	staff *fakeStaffRepo
	menu  *fakeMenuRepo
	trx   *fakeTransactionRepo
	cache *fakeCache
	uc    *usecase.ScanUseCase
}

// buildScanFixture arma el caso de uso con menú de hoy ya configurado
// (salvo que withMenu sea false) y el staff recibido.
func buildScanFixture(t *testing.T, withMenu bool, seed ...entity.Staff) *scanFixture {
	t.Helper()
	staff := newFakeStaffRepo(seed...)
	menu := newFakeMenuRepo()
	if withMenu {
		require.NoError(t, menu.Upsert(&entity.DailyMenu{Date: testToday, MenuName: "Nasi Goreng", Price: 15000}))
	}
	trx := &fakeTransactionRepo{}
	cache := &fakeCache{}
	runner := &fakeTxRunner{staff: staff, trx: trx}
	uc := usecase.NewScanUseCase(staff, menu, runner, cache).WithClock(testClock)
	return &scanFixture{staff: staff, menu: menu, trx: trx, cache: cache, uc: uc}
}

func TestScan_ExitoDescuentaCuotaYRegistraTransaccion(t *testing.T) {
	fx := buildScanFixture(t, true, entity.Staff{
		BarcodeID: "1001", Name: "Budi Santoso", DepartmentName: "Produksi",
		DailyQuota: 2, RemainingQuota: 2,
	})

	out, err := fx.uc.Scan(context.Background(), "1001")
	require.NoError(t, err)

	assert.Equal(t, string(entity.ScanSuccess), out.Status)
	assert.Empty(t, out.Reason)
	assert.Equal(t, "Budi Santoso", out.StaffName)
	assert.Equal(t, "Produksi", out.Department)
	assert.Equal(t, "Nasi Goreng", out.MenuName)
	assert.Equal(t, int64(15000), out.Price)
	require.NotNil(t, out.RemainingQuota, "la rama de éxito debe reportar la cuota post-decremento")
	assert.Equal(t, 1, *out.RemainingQuota)
	require.NotNil(t, out.DailyQuota)
	assert.Equal(t, 2, *out.DailyQuota)

	require.Len(t, fx.trx.inserted, 1, "exactamente una transacción por intento")
	trx := fx.trx.inserted[0]
	assert.Equal(t, entity.ScanSuccess, trx.Status)
	assert.Equal(t, "Budi Santoso", trx.StaffNameSnapshot)
	assert.Equal(t, testToday, trx.Date)
	assert.Equal(t, "12:30:45", trx.Time)

	assert.Equal(t, []string{"1001"}, fx.staff.decrements)
	assert.GreaterOrEqual(t, fx.cache.flushCount(), 1, "toda escritura invalida la caché completa")
}

func TestScan_CuotaAgotadaRegistraFalloSinDescontar(t *testing.T) {
	fx := buildScanFixture(t, true, entity.Staff{
		BarcodeID: "1002", Name: "Siti Rahma", DepartmentName: "HRD",
		DailyQuota: 1, RemainingQuota: 0,
	})

	out, err := fx.uc.Scan(context.Background(), "1002")
	require.NoError(t, err)

	assert.Equal(t, string(entity.ScanFailure), out.Status)
	assert.Equal(t, dto.ScanReasonQuotaExhausted, out.Reason)
	assert.Equal(t, "Siti Rahma", out.StaffName)
	assert.Nil(t, out.RemainingQuota)

	require.Len(t, fx.trx.inserted, 1)
	assert.Equal(t, entity.ScanFailure, fx.trx.inserted[0].Status)
	assert.Equal(t, "Siti Rahma", fx.trx.inserted[0].StaffNameSnapshot)
	assert.Empty(t, fx.staff.decrements, "la rama de fallo no debe tocar la cuota")
}

func TestScan_BarcodeDesconocidoRegistraFalloConSnapshotNA(t *testing.T) {
	fx := buildScanFixture(t, true)

	out, err := fx.uc.Scan(context.Background(), "9090")
	require.NoError(t, err)

	assert.Equal(t, string(entity.ScanFailure), out.Status)
	assert.Equal(t, dto.ScanReasonUnregistered, out.Reason)
	assert.Empty(t, out.StaffName)

	require.Len(t, fx.trx.inserted, 1,
		"el barcode desconocido también deja rastro en el log")
	assert.Equal(t, entity.UnknownStaffName, fx.trx.inserted[0].StaffNameSnapshot)
	assert.Equal(t, "9090", fx.trx.inserted[0].BarcodeID)
}

func TestScan_BarcodeAdminNuncaCanjea(t *testing.T) {
	fx := buildScanFixture(t, true, entity.Staff{
		BarcodeID: entity.AdminBarcodeID, Name: "Administrator",
		DepartmentName: entity.AdminDepartmentName,
		DailyQuota:     entity.AdminDailyQuota, RemainingQuota: entity.AdminDailyQuota,
	})

	out, err := fx.uc.Scan(context.Background(), entity.AdminBarcodeID)
	require.NoError(t, err)

	assert.Equal(t, string(entity.ScanFailure), out.Status)
	assert.Equal(t, dto.ScanReasonAdminBarcode, out.Reason)
	require.Len(t, fx.trx.inserted, 1)
	assert.Empty(t, fx.staff.decrements,
		"el barcode admin jamás descuenta cuota, aunque tenga cupo")
}

func TestScan_SinMenuNoEscribeNada(t *testing.T) {
	fx := buildScanFixture(t, false, entity.Staff{
		BarcodeID: "1001", Name: "Budi Santoso", DepartmentName: "Produksi",
		DailyQuota: 2, RemainingQuota: 2,
	})

	out, err := fx.uc.Scan(context.Background(), "1001")
	assert.ErrorIs(t, err, domain.ErrMenuNotConfigured)
	assert.Nil(t, out)

	assert.Empty(t, fx.trx.inserted, "sin menú no debe registrarse ninguna transacción")
	assert.Empty(t, fx.staff.decrements)
	assert.Zero(t, fx.cache.flushCount())
}

func TestScan_BarcodeVacioEsInvalido(t *testing.T) {
	fx := buildScanFixture(t, true)

	_, err := fx.uc.Scan(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, fx.trx.inserted)
}

func TestScan_UltimoCupoDejaCuotaEnCero(t *testing.T) {
	fx := buildScanFixture(t, true, entity.Staff{
		BarcodeID: "1003", Name: "Joko Susilo", DepartmentName: "Gudang",
		DailyQuota: 1, RemainingQuota: 1,
	})

	out, err := fx.uc.Scan(context.Background(), "1003")
	require.NoError(t, err)
	assert.Equal(t, string(entity.ScanSuccess), out.Status)
	require.NotNil(t, out.RemainingQuota)
	assert.Equal(t, 0, *out.RemainingQuota)

	// El segundo intento del día ya encuentra la cuota agotada.
	out2, err := fx.uc.Scan(context.Background(), "1003")
	require.NoError(t, err)
	assert.Equal(t, string(entity.ScanFailure), out2.Status)
	assert.Equal(t, dto.ScanReasonQuotaExhausted, out2.Reason)
	assert.Len(t, fx.trx.inserted, 2)
}
