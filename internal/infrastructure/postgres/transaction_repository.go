package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/kantin-api/internal/domain/entity"
	"github.com/jhoicas/kantin-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre
// PostgreSQL. Solo inserta y lee: el log es append-only.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Insert registra un intento de escaneo.
func (r *TransactionRepo) Insert(trx *entity.Transaction) error {
	query := `
		INSERT INTO transaction (barcode_id, date, time, menu_name, price, staff_name_snapshot, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		trx.BarcodeID, trx.Date, trx.Time, trx.MenuName, trx.Price, trx.StaffNameSnapshot, string(trx.Status),
	)
	if err != nil {
		return fmt.Errorf("insert transacción: %w", err)
	}
	return nil
}

// filterClause arma el WHERE dinámico a partir de la tupla completa del
// filtro. El orden de los args acompaña a los placeholders generados.
func filterClause(filter entity.TransactionFilter) (string, []any) {
	conditions := []string{"t.date BETWEEN $1 AND $2"}
	args := []any{filter.FromDate, filter.ToDate}
	if filter.Department != "" {
		args = append(args, filter.Department)
		conditions = append(conditions, fmt.Sprintf("s.department_name = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", len(args)))
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// ListByFilter devuelve la vista unida del reporte. LEFT JOIN con staff: el
// snapshot del nombre sobrevive al borrado del staff, el departamento vivo
// queda vacío en ese caso.
func (r *TransactionRepo) ListByFilter(filter entity.TransactionFilter) ([]entity.ReportRow, error) {
	where, args := filterClause(filter)
	query := `
		SELECT t.date, t.time, t.barcode_id, t.staff_name_snapshot,
		       COALESCE(s.department_name, ''), t.menu_name, t.price, t.status
		FROM transaction t
		LEFT JOIN staff s ON s.barcode_id = t.barcode_id` +
		where + ` ORDER BY t.date DESC, t.time DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transacciones: %w", err)
	}
	defer rows.Close()
	var list []entity.ReportRow
	for rows.Next() {
		var row entity.ReportRow
		var status string
		if err := rows.Scan(&row.Date, &row.Time, &row.BarcodeID, &row.StaffName,
			&row.Department, &row.MenuName, &row.Price, &status); err != nil {
			return nil, fmt.Errorf("scan transacción: %w", err)
		}
		row.Status = entity.ScanStatus(status)
		list = append(list, row)
	}
	return list, rows.Err()
}

// Summary agregados del mismo filtro: conteos por status y gasto total de
// los SUCCESS (SUM(bigint) llega como NUMERIC, de ahí el decimal).
func (r *TransactionRepo) Summary(filter entity.TransactionFilter) (*entity.ReportSummary, error) {
	where, args := filterClause(filter)
	query := `
		SELECT
			COUNT(*) FILTER (WHERE t.status = 'SUCCESS'),
			COUNT(*) FILTER (WHERE t.status = 'FAILURE'),
			COALESCE(SUM(t.price) FILTER (WHERE t.status = 'SUCCESS'), 0)
		FROM transaction t
		LEFT JOIN staff s ON s.barcode_id = t.barcode_id` + where

	var summary entity.ReportSummary
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&summary.SuccessCount, &summary.FailureCount, &summary.TotalSpend,
	)
	if err != nil {
		return nil, fmt.Errorf("resumen de transacciones: %w", err)
	}
	return &summary, nil
}
