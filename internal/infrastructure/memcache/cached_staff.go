package memcache

import (
	"github.com/jhoicas/kantin-api/internal/application/ports"
	"github.com/jhoicas/kantin-api/internal/domain/entity"
	"github.com/jhoicas/kantin-api/internal/domain/repository"
)

var _ repository.StaffRepository = (*CachedStaffRepo)(nil)

// cachedStaff valor cacheado de una búsqueda por barcode. found=false
// memoriza también el "no existe" (un barcode desconocido se escanea
// repetido sin golpear la base cada vez).
type cachedStaff struct {
	staff entity.Staff
	found bool
}

// CachedStaffRepo decorador read-through del repositorio de staff. El
// listado completo y cada barcode son entradas de caché separadas; toda
// escritura delega y barre el store completo antes de devolver.
type CachedStaffRepo struct {
	base  repository.StaffRepository
	store ports.Store
}

// NewCachedStaffRepository construye el decorador sobre el repo base.
func NewCachedStaffRepository(base repository.StaffRepository, store ports.Store) *CachedStaffRepo {
	return &CachedStaffRepo{base: base, store: store}
}

func (r *CachedStaffRepo) GetByBarcode(barcodeID string) (*entity.Staff, error) {
	cached, err := ports.Through(r.store, "staff:barcode:"+barcodeID, TTLStaff, func() (cachedStaff, error) {
		staff, err := r.base.GetByBarcode(barcodeID)
		if err != nil {
			return cachedStaff{}, err
		}
		if staff == nil {
			return cachedStaff{}, nil
		}
		return cachedStaff{staff: *staff, found: true}, nil
	})
	if err != nil {
		return nil, err
	}
	if !cached.found {
		return nil, nil
	}
	s := cached.staff
	return &s, nil
}

func (r *CachedStaffRepo) List() ([]entity.Staff, error) {
	cached, err := ports.Through(r.store, "staff:all", TTLStaff, r.base.List)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Staff, len(cached))
	copy(out, cached)
	return out, nil
}

func (r *CachedStaffRepo) Create(staff *entity.Staff) error {
	if err := r.base.Create(staff); err != nil {
		return err
	}
	r.store.Flush()
	return nil
}

func (r *CachedStaffRepo) Update(staff *entity.Staff) error {
	if err := r.base.Update(staff); err != nil {
		return err
	}
	r.store.Flush()
	return nil
}

func (r *CachedStaffRepo) Delete(barcodeID string) error {
	if err := r.base.Delete(barcodeID); err != nil {
		return err
	}
	r.store.Flush()
	return nil
}

func (r *CachedStaffRepo) Upsert(staff *entity.Staff) error {
	if err := r.base.Upsert(staff); err != nil {
		return err
	}
	r.store.Flush()
	return nil
}

func (r *CachedStaffRepo) ResetAllQuotas() error {
	if err := r.base.ResetAllQuotas(); err != nil {
		return err
	}
	r.store.Flush()
	return nil
}

func (r *CachedStaffRepo) ConditionalDecrement(barcodeID string) (bool, error) {
	applied, err := r.base.ConditionalDecrement(barcodeID)
	if err != nil {
		return false, err
	}
	r.store.Flush()
	return applied, nil
}
