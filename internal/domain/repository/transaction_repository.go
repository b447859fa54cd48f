package repository

import "github.com/jhoicas/kantin-api/internal/domain/entity"

// TransactionRepository puerto del log de escaneos. Solo inserta y lee:
// las transacciones son inmutables y ningún camino las borra.
type TransactionRepository interface {
	Insert(trx *entity.Transaction) error
	ListByFilter(filter entity.TransactionFilter) ([]entity.ReportRow, error)
	Summary(filter entity.TransactionFilter) (*entity.ReportSummary, error)
}
