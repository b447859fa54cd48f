package repository

import "github.com/jhoicas/kantin-api/internal/domain/entity"

// DailyMenuRepository puerto de persistencia para DailyMenu.
type DailyMenuRepository interface {
	// Upsert reemplaza por fecha (una entrada por día calendario).
	Upsert(menu *entity.DailyMenu) error
	// GetByDate devuelve (nil, nil) si el día no tiene menú configurado.
	GetByDate(date string) (*entity.DailyMenu, error)
}
