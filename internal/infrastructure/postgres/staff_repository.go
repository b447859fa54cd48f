package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/kantin-api/internal/domain"
	"github.com/jhoicas/kantin-api/internal/domain/entity"
	"github.com/jhoicas/kantin-api/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación del puerto StaffRepository sobre PostgreSQL (usable con pool o tx).
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador de persistencia para staff. Pasar pool o tx (Querier).
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

// Create persiste un staff nuevo. Barcode duplicado -> domain.ErrDuplicate.
func (r *StaffRepo) Create(staff *entity.Staff) error {
	query := `
		INSERT INTO staff (barcode_id, name, department_name, daily_quota, remaining_quota)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		staff.BarcodeID, staff.Name, staff.DepartmentName, staff.DailyQuota, staff.RemainingQuota,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

// GetByBarcode obtiene un staff por barcode. Devuelve (nil, nil) si no existe.
func (r *StaffRepo) GetByBarcode(barcodeID string) (*entity.Staff, error) {
	query := `
		SELECT id, barcode_id, name, department_name, daily_quota, remaining_quota
		FROM staff WHERE barcode_id = $1`
	var s entity.Staff
	err := r.q.QueryRow(context.Background(), query, barcodeID).Scan(
		&s.ID, &s.BarcodeID, &s.Name, &s.DepartmentName, &s.DailyQuota, &s.RemainingQuota,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return &s, nil
}

// List lista el staff ordinario ordenado por barcode; excluye la identidad admin.
func (r *StaffRepo) List() ([]entity.Staff, error) {
	query := `
		SELECT id, barcode_id, name, department_name, daily_quota, remaining_quota
		FROM staff WHERE barcode_id <> $1 ORDER BY barcode_id`
	rows, err := r.q.Query(context.Background(), query, entity.AdminBarcodeID)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()
	var list []entity.Staff
	for rows.Next() {
		var s entity.Staff
		if err := rows.Scan(&s.ID, &s.BarcodeID, &s.Name, &s.DepartmentName, &s.DailyQuota, &s.RemainingQuota); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update modifica nombre, departamento y cuota por barcode. Re-sincroniza
// remaining_quota = daily_quota en la misma sentencia.
func (r *StaffRepo) Update(staff *entity.Staff) error {
	query := `
		UPDATE staff SET name = $2, department_name = $3, daily_quota = $4, remaining_quota = $4
		WHERE barcode_id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		staff.BarcodeID, staff.Name, staff.DepartmentName, staff.DailyQuota,
	)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un staff por barcode. Sus transacciones no se tocan.
func (r *StaffRepo) Delete(barcodeID string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM staff WHERE barcode_id = $1`, barcodeID)
	if err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Upsert inserta o reemplaza por barcode (import masivo). La fila importada
// siempre llega con remaining_quota = daily_quota.
func (r *StaffRepo) Upsert(staff *entity.Staff) error {
	query := `
		INSERT INTO staff (barcode_id, name, department_name, daily_quota, remaining_quota)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (barcode_id) DO UPDATE SET
			name = EXCLUDED.name,
			department_name = EXCLUDED.department_name,
			daily_quota = EXCLUDED.daily_quota,
			remaining_quota = EXCLUDED.remaining_quota`
	_, err := r.q.Exec(context.Background(), query,
		staff.BarcodeID, staff.Name, staff.DepartmentName, staff.DailyQuota, staff.RemainingQuota,
	)
	if err != nil {
		return fmt.Errorf("upsert staff: %w", err)
	}
	return nil
}

// ResetAllQuotas repone la cuota de todas las filas en una sola sentencia bulk.
func (r *StaffRepo) ResetAllQuotas() error {
	_, err := r.q.Exec(context.Background(), `UPDATE staff SET remaining_quota = daily_quota`)
	if err != nil {
		return fmt.Errorf("reset cuotas: %w", err)
	}
	return nil
}

// ConditionalDecrement descuenta 1 solo si remaining_quota > 0 a nivel de
// fila (check-and-update en una sentencia; la fila nunca baja de cero).
func (r *StaffRepo) ConditionalDecrement(barcodeID string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE staff SET remaining_quota = remaining_quota - 1
		 WHERE barcode_id = $1 AND remaining_quota > 0`,
		barcodeID,
	)
	if err != nil {
		return false, fmt.Errorf("decrementar cuota: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
