package memcache

import (
	"github.com/jhoicas/kantin-api/internal/application/ports"
	"github.com/jhoicas/kantin-api/internal/domain/entity"
	"github.com/jhoicas/kantin-api/internal/domain/repository"
)

var _ repository.DailyMenuRepository = (*CachedDailyMenuRepo)(nil)

// cachedMenu memoriza también la ausencia de menú: la página de escaneo
// consulta el menú de hoy en cada intento.
type cachedMenu struct {
	menu  entity.DailyMenu
	found bool
}

// CachedDailyMenuRepo decorador read-through del menú diario. TTL corto:
// el admin puede corregir el menú en caliente.
type CachedDailyMenuRepo struct {
	base  repository.DailyMenuRepository
	store ports.Store
}

// NewCachedDailyMenuRepository construye el decorador sobre el repo base.
func NewCachedDailyMenuRepository(base repository.DailyMenuRepository, store ports.Store) *CachedDailyMenuRepo {
	return &CachedDailyMenuRepo{base: base, store: store}
}

func (r *CachedDailyMenuRepo) GetByDate(date string) (*entity.DailyMenu, error) {
	cached, err := ports.Through(r.store, "menu:"+date, TTLMenu, func() (cachedMenu, error) {
		menu, err := r.base.GetByDate(date)
		if err != nil {
			return cachedMenu{}, err
		}
		if menu == nil {
			return cachedMenu{}, nil
		}
		return cachedMenu{menu: *menu, found: true}, nil
	})
	if err != nil {
		return nil, err
	}
	if !cached.found {
		return nil, nil
	}
	m := cached.menu
	return &m, nil
}

func (r *CachedDailyMenuRepo) Upsert(menu *entity.DailyMenu) error {
	if err := r.base.Upsert(menu); err != nil {
		return err
	}
	r.store.Flush()
	return nil
}
