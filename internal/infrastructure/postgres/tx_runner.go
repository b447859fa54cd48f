package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/kantin-api/internal/application/usecase"
	"github.com/jhoicas/kantin-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.ScanTxRunner and usecase.ImportTxRunner.
var _ usecase.ScanTxRunner = (*TxRunner)(nil)
var _ usecase.ImportTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción para el par de escrituras del canje (insert del
// log + decremento condicionado) y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	staffRepo repository.StaffRepository,
	trxRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStaffRepository(tx), NewTransactionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunImport inicia una transacción para las dos escrituras de una fila del
// import masivo (upsert de staff + alta de departamento si falta).
func (r *TxRunner) RunImport(ctx context.Context, fn func(
	staffRepo repository.StaffRepository,
	deptRepo repository.DepartmentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStaffRepository(tx), NewDepartmentRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
