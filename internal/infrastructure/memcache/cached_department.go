package memcache

import (
	"github.com/jhoicas/kantin-api/internal/application/ports"
	"github.com/jhoicas/kantin-api/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*CachedDepartmentRepo)(nil)

// CachedDepartmentRepo decorador read-through del repositorio de
// departamentos (cambian poco: TTL de una hora).
type CachedDepartmentRepo struct {
	base  repository.DepartmentRepository
	store ports.Store
}

// NewCachedDepartmentRepository construye el decorador sobre el repo base.
func NewCachedDepartmentRepository(base repository.DepartmentRepository, store ports.Store) *CachedDepartmentRepo {
	return &CachedDepartmentRepo{base: base, store: store}
}

func (r *CachedDepartmentRepo) List() ([]string, error) {
	cached, err := ports.Through(r.store, "department:all", TTLDepartments, r.base.List)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(cached))
	copy(out, cached)
	return out, nil
}

func (r *CachedDepartmentRepo) Create(name string) error {
	if err := r.base.Create(name); err != nil {
		return err
	}
	r.store.Flush()
	return nil
}

func (r *CachedDepartmentRepo) CreateIfAbsent(name string) error {
	if err := r.base.CreateIfAbsent(name); err != nil {
		return err
	}
	r.store.Flush()
	return nil
}

func (r *CachedDepartmentRepo) Delete(name string) error {
	if err := r.base.Delete(name); err != nil {
		return err
	}
	r.store.Flush()
	return nil
}
