package usecase

import (
	"strings"

	"github.com/jhoicas/kantin-api/internal/application/dto"
	"github.com/jhoicas/kantin-api/internal/domain"
	"github.com/jhoicas/kantin-api/internal/domain/entity"
	"github.com/jhoicas/kantin-api/internal/domain/repository"
)

// StaffUseCase CRUD de staff y reset de cuota diaria. El registro admin
// reservado queda fuera de todas las operaciones ordinarias.
type StaffUseCase struct {
	repo repository.StaffRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(repo repository.StaffRepository) *StaffUseCase {
	return &StaffUseCase{repo: repo}
}

// Create da de alta un staff con la cuota restante completa.
// Barcode duplicado -> domain.ErrDuplicate (se rechaza, nunca se pisa).
func (uc *StaffUseCase) Create(in dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	barcode := strings.TrimSpace(in.BarcodeID)
	name := strings.TrimSpace(in.Name)
	dept := strings.TrimSpace(in.Department)
	if barcode == "" || name == "" || dept == "" || in.DailyQuota < 1 {
		return nil, domain.ErrInvalidInput
	}
	if barcode == entity.AdminBarcodeID {
		return nil, domain.ErrReservedBarcode
	}
	staff := &entity.Staff{
		BarcodeID:      barcode,
		Name:           name,
		DepartmentName: dept,
		DailyQuota:     in.DailyQuota,
		RemainingQuota: in.DailyQuota,
	}
	if err := uc.repo.Create(staff); err != nil {
		return nil, err
	}
	return toStaffResponse(staff), nil
}

// GetByBarcode obtiene un staff. El barcode admin se reporta como no encontrado.
func (uc *StaffUseCase) GetByBarcode(barcodeID string) (*dto.StaffResponse, error) {
	if barcodeID == entity.AdminBarcodeID {
		return nil, domain.ErrNotFound
	}
	staff, err := uc.repo.GetByBarcode(barcodeID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrNotFound
	}
	return toStaffResponse(staff), nil
}

// List lista todo el staff ordinario.
func (uc *StaffUseCase) List() (*dto.StaffListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StaffResponse, 0, len(list))
	for i := range list {
		items = append(items, *toStaffResponse(&list[i]))
	}
	return &dto.StaffListResponse{Items: items, Total: len(items)}, nil
}

// Update edita nombre, departamento y cuota. Editar la cuota re-otorga la
// cuota completa de inmediato (RemainingQuota = DailyQuota nuevo).
func (uc *StaffUseCase) Update(barcodeID string, in dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	name := strings.TrimSpace(in.Name)
	dept := strings.TrimSpace(in.Department)
	if name == "" || dept == "" || in.DailyQuota < 1 {
		return nil, domain.ErrInvalidInput
	}
	if barcodeID == entity.AdminBarcodeID {
		return nil, domain.ErrReservedBarcode
	}
	staff := &entity.Staff{
		BarcodeID:      barcodeID,
		Name:           name,
		DepartmentName: dept,
		DailyQuota:     in.DailyQuota,
		RemainingQuota: in.DailyQuota,
	}
	if err := uc.repo.Update(staff); err != nil {
		return nil, err
	}
	return toStaffResponse(staff), nil
}

// Delete borra un staff por barcode. Sus transacciones quedan: el reporte
// conserva el nombre por snapshot.
func (uc *StaffUseCase) Delete(barcodeID string) error {
	if barcodeID == entity.AdminBarcodeID {
		return domain.ErrReservedBarcode
	}
	return uc.repo.Delete(barcodeID)
}

// ResetQuotas repone la cuota diaria de todo el staff en una sola sentencia
// bulk (todo-o-nada, sin semántica de fallo parcial).
func (uc *StaffUseCase) ResetQuotas() error {
	return uc.repo.ResetAllQuotas()
}

func toStaffResponse(s *entity.Staff) *dto.StaffResponse {
	if s == nil {
		return nil
	}
	return &dto.StaffResponse{
		BarcodeID:      s.BarcodeID,
		Name:           s.Name,
		Department:     s.DepartmentName,
		DailyQuota:     s.DailyQuota,
		RemainingQuota: s.RemainingQuota,
	}
}
