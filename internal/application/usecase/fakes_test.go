package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/kantin-api/internal/domain"
	"github.com/jhoicas/kantin-api/internal/domain/entity"
	"github.com/jhoicas/kantin-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia, compartidos por los tests
// del paquete. Reproducen los contratos documentados en internal/domain:
// GetByBarcode (nil, nil) si no existe, ConditionalDecrement con guard > 0,
// Upsert re-otorga cuota completa.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStaffRepo struct {
	mu    sync.Mutex
	byBar map[string]entity.Staff

	decrements []string
	upserts    []string
}

func newFakeStaffRepo(seed ...entity.Staff) *fakeStaffRepo {
	r := &fakeStaffRepo{byBar: make(map[string]entity.Staff)}
	for _, s := range seed {
		r.byBar[s.BarcodeID] = s
	}
	return r
}

func (r *fakeStaffRepo) Create(staff *entity.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byBar[staff.BarcodeID]; ok {
		return domain.ErrDuplicate
	}
	r.byBar[staff.BarcodeID] = *staff
	return nil
}

func (r *fakeStaffRepo) GetByBarcode(barcodeID string) (*entity.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byBar[barcodeID]
	if !ok {
		return nil, nil
	}
	copia := s
	return &copia, nil
}

func (r *fakeStaffRepo) List() ([]entity.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Staff, 0, len(r.byBar))
	for _, s := range r.byBar {
		if s.BarcodeID == entity.AdminBarcodeID {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BarcodeID < out[j].BarcodeID })
	return out, nil
}

func (r *fakeStaffRepo) Update(staff *entity.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byBar[staff.BarcodeID]; !ok {
		return domain.ErrNotFound
	}
	r.byBar[staff.BarcodeID] = *staff
	return nil
}

func (r *fakeStaffRepo) Delete(barcodeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byBar[barcodeID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byBar, barcodeID)
	return nil
}

func (r *fakeStaffRepo) Upsert(staff *entity.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byBar[staff.BarcodeID] = *staff
	r.upserts = append(r.upserts, staff.BarcodeID)
	return nil
}

func (r *fakeStaffRepo) ResetAllQuotas() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, s := range r.byBar {
		s.RemainingQuota = s.DailyQuota
		r.byBar[k] = s
	}
	return nil
}

func (r *fakeStaffRepo) ConditionalDecrement(barcodeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byBar[barcodeID]
	if !ok || s.RemainingQuota <= 0 {
		return false, nil
	}
	s.RemainingQuota--
	r.byBar[barcodeID] = s
	r.decrements = append(r.decrements, barcodeID)
	return true, nil
}

var _ repository.StaffRepository = (*fakeStaffRepo)(nil)

type fakeDepartmentRepo struct {
	mu    sync.Mutex
	names map[string]bool
}

func newFakeDepartmentRepo(seed ...string) *fakeDepartmentRepo {
	r := &fakeDepartmentRepo{names: make(map[string]bool)}
	for _, n := range seed {
		r.names[n] = true
	}
	return r
}

func (r *fakeDepartmentRepo) Create(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.names[name] {
		return domain.ErrDuplicate
	}
	r.names[name] = true
	return nil
}

func (r *fakeDepartmentRepo) CreateIfAbsent(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[name] = true
	return nil
}

func (r *fakeDepartmentRepo) List() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.names))
	for n := range r.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeDepartmentRepo) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.names[name] {
		return domain.ErrNotFound
	}
	delete(r.names, name)
	return nil
}

var _ repository.DepartmentRepository = (*fakeDepartmentRepo)(nil)

type fakeMenuRepo struct {
	mu     sync.Mutex
	byDate map[string]entity.DailyMenu
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{byDate: make(map[string]entity.DailyMenu)}
}

func (r *fakeMenuRepo) Upsert(menu *entity.DailyMenu) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byDate[menu.Date] = *menu
	return nil
}

func (r *fakeMenuRepo) GetByDate(date string) (*entity.DailyMenu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byDate[date]
	if !ok {
		return nil, nil
	}
	copia := m
	return &copia, nil
}

var _ repository.DailyMenuRepository = (*fakeMenuRepo)(nil)

type fakeTransactionRepo struct {
	mu       sync.Mutex
	inserted []entity.Transaction

	rows    []entity.ReportRow
	summary entity.ReportSummary
}

func (r *fakeTransactionRepo) Insert(trx *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserted = append(r.inserted, *trx)
	return nil
}

func (r *fakeTransactionRepo) ListByFilter(filter entity.TransactionFilter) ([]entity.ReportRow, error) {
	return r.rows, nil
}

func (r *fakeTransactionRepo) Summary(filter entity.TransactionFilter) (*entity.ReportSummary, error) {
	s := r.summary
	return &s, nil
}

var _ repository.TransactionRepository = (*fakeTransactionRepo)(nil)

// fakeTxRunner delega en los fakes directamente; sirve como ScanTxRunner e
// ImportTxRunner a la vez y cuenta las transacciones ejecutadas.
type fakeTxRunner struct {
	staff *fakeStaffRepo
	dept  *fakeDepartmentRepo
	trx   *fakeTransactionRepo

	runs int
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(repository.StaffRepository, repository.TransactionRepository) error) error {
	tx.runs++
	return fn(tx.staff, tx.trx)
}

func (tx *fakeTxRunner) RunImport(ctx context.Context, fn func(repository.StaffRepository, repository.DepartmentRepository) error) error {
	tx.runs++
	return fn(tx.staff, tx.dept)
}

type fakeCache struct {
	mu      sync.Mutex
	flushes int
}

func (c *fakeCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushes++
}

func (c *fakeCache) flushCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flushes
}
