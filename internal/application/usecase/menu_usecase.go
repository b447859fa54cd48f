package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/kantin-api/internal/application/dto"
	"github.com/jhoicas/kantin-api/internal/domain"
	"github.com/jhoicas/kantin-api/internal/domain/entity"
	"github.com/jhoicas/kantin-api/internal/domain/repository"
)

// MenuUseCase configura y consulta el menú del día actual.
type MenuUseCase struct {
	repo repository.DailyMenuRepository
	now  func() time.Time
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(repo repository.DailyMenuRepository) *MenuUseCase {
	return &MenuUseCase{repo: repo, now: time.Now}
}

// WithClock fija el reloj (tests).
func (uc *MenuUseCase) WithClock(now func() time.Time) *MenuUseCase {
	uc.now = now
	return uc
}

// SetToday guarda el menú de hoy con semántica de reemplazo por fecha.
func (uc *MenuUseCase) SetToday(in dto.SetMenuRequest) (*dto.MenuResponse, error) {
	name := strings.TrimSpace(in.MenuName)
	if name == "" || in.Price <= 0 {
		return nil, domain.ErrInvalidInput
	}
	menu := &entity.DailyMenu{
		Date:     uc.now().Format("2006-01-02"),
		MenuName: name,
		Price:    in.Price,
	}
	if err := uc.repo.Upsert(menu); err != nil {
		return nil, err
	}
	return toMenuResponse(menu), nil
}

// GetToday devuelve el menú vigente de hoy, o domain.ErrNotFound si el día
// aún no tiene menú configurado.
func (uc *MenuUseCase) GetToday() (*dto.MenuResponse, error) {
	menu, err := uc.repo.GetByDate(uc.now().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, domain.ErrNotFound
	}
	return toMenuResponse(menu), nil
}

func toMenuResponse(m *entity.DailyMenu) *dto.MenuResponse {
	return &dto.MenuResponse{Date: m.Date, MenuName: m.MenuName, Price: m.Price}
}
