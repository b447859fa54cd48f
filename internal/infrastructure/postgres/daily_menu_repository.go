package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/kantin-api/internal/domain/entity"
	"github.com/jhoicas/kantin-api/internal/domain/repository"
)

var _ repository.DailyMenuRepository = (*DailyMenuRepo)(nil)

// menuPayload forma serializada de la columna menu_json.
type menuPayload struct {
	MenuName string `json:"menu_name"`
	Price    int64  `json:"price"`
}

// DailyMenuRepo implementación del puerto DailyMenuRepository sobre PostgreSQL.
type DailyMenuRepo struct {
	q Querier
}

// NewDailyMenuRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDailyMenuRepository(q Querier) *DailyMenuRepo {
	return &DailyMenuRepo{q: q}
}

// Upsert guarda el menú del día con reemplazo por fecha; no se conserva
// historial de sobrescrituras del mismo día.
func (r *DailyMenuRepo) Upsert(menu *entity.DailyMenu) error {
	payload, err := json.Marshal(menuPayload{MenuName: menu.MenuName, Price: menu.Price})
	if err != nil {
		return fmt.Errorf("serializar menú: %w", err)
	}
	_, err = r.q.Exec(context.Background(), `
		INSERT INTO daily_menu (date, menu_json) VALUES ($1, $2)
		ON CONFLICT (date) DO UPDATE SET menu_json = EXCLUDED.menu_json`,
		menu.Date, payload,
	)
	if err != nil {
		return fmt.Errorf("upsert menú: %w", err)
	}
	return nil
}

// GetByDate obtiene el menú de una fecha. Devuelve (nil, nil) si no hay.
func (r *DailyMenuRepo) GetByDate(date string) (*entity.DailyMenu, error) {
	var raw []byte
	err := r.q.QueryRow(context.Background(),
		`SELECT menu_json FROM daily_menu WHERE date = $1`, date,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menú: %w", err)
	}
	var payload menuPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("deserializar menú: %w", err)
	}
	return &entity.DailyMenu{Date: date, MenuName: payload.MenuName, Price: payload.Price}, nil
}
