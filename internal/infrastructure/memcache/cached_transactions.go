package memcache

import (
	"fmt"

	"github.com/jhoicas/kantin-api/internal/application/ports"
	"github.com/jhoicas/kantin-api/internal/domain/entity"
	"github.com/jhoicas/kantin-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*CachedTransactionRepo)(nil)

// CachedTransactionRepo decorador read-through del log de transacciones.
// Cada tupla completa de filtro es una entrada de caché distinta.
type CachedTransactionRepo struct {
	base  repository.TransactionRepository
	store ports.Store
}

// NewCachedTransactionRepository construye el decorador sobre el repo base.
func NewCachedTransactionRepository(base repository.TransactionRepository, store ports.Store) *CachedTransactionRepo {
	return &CachedTransactionRepo{base: base, store: store}
}

func filterKey(prefix string, f entity.TransactionFilter) string {
	return fmt.Sprintf("%s:%s|%s|%s|%s", prefix, f.FromDate, f.ToDate, f.Department, f.Status)
}

func (r *CachedTransactionRepo) ListByFilter(filter entity.TransactionFilter) ([]entity.ReportRow, error) {
	cached, err := ports.Through(r.store, filterKey("trx:list", filter), TTLTransactions, func() ([]entity.ReportRow, error) {
		return r.base.ListByFilter(filter)
	})
	if err != nil {
		return nil, err
	}
	out := make([]entity.ReportRow, len(cached))
	copy(out, cached)
	return out, nil
}

func (r *CachedTransactionRepo) Summary(filter entity.TransactionFilter) (*entity.ReportSummary, error) {
	cached, err := ports.Through(r.store, filterKey("trx:summary", filter), TTLTransactions, func() (entity.ReportSummary, error) {
		summary, err := r.base.Summary(filter)
		if err != nil {
			return entity.ReportSummary{}, err
		}
		return *summary, nil
	})
	if err != nil {
		return nil, err
	}
	s := cached
	return &s, nil
}

func (r *CachedTransactionRepo) Insert(trx *entity.Transaction) error {
	if err := r.base.Insert(trx); err != nil {
		return err
	}
	r.store.Flush()
	return nil
}
