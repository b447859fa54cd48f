package usecase

import (
	"strings"

	"github.com/jhoicas/kantin-api/internal/application/dto"
	"github.com/jhoicas/kantin-api/internal/domain"
	"github.com/jhoicas/kantin-api/internal/domain/repository"
)

// DepartmentUseCase altas, listado y borrado de departamentos.
type DepartmentUseCase struct {
	repo repository.DepartmentRepository
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(repo repository.DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo}
}

// Create agrega un departamento. Duplicado -> domain.ErrDuplicate.
func (uc *DepartmentUseCase) Create(in dto.CreateDepartmentRequest) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Create(name)
}

// List nombres de departamento ordenados.
func (uc *DepartmentUseCase) List() (*dto.DepartmentListResponse, error) {
	names, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return &dto.DepartmentListResponse{Items: names}, nil
}

// Delete borra un departamento por nombre. Sin cascada: el staff conserva su
// department_name de texto libre.
func (uc *DepartmentUseCase) Delete(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(name)
}
