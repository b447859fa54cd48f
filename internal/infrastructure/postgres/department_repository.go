package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/kantin-api/internal/domain"
	"github.com/jhoicas/kantin-api/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación del puerto DepartmentRepository sobre PostgreSQL.
type DepartmentRepo struct {
	q Querier
}

// NewDepartmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDepartmentRepository(q Querier) *DepartmentRepo {
	return &DepartmentRepo{q: q}
}

// Create agrega un departamento. Nombre duplicado -> domain.ErrDuplicate.
func (r *DepartmentRepo) Create(name string) error {
	_, err := r.q.Exec(context.Background(), `INSERT INTO department (name) VALUES ($1)`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert departamento: %w", err)
	}
	return nil
}

// CreateIfAbsent inserta solo si no existe (camino del import masivo).
func (r *DepartmentRepo) CreateIfAbsent(name string) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO department (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	if err != nil {
		return fmt.Errorf("insert-or-ignore departamento: %w", err)
	}
	return nil
}

// List devuelve los nombres ordenados alfabéticamente.
func (r *DepartmentRepo) List() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT name FROM department ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list departamentos: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan departamento: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete borra por nombre. Las filas de staff no se tocan (referencia de
// texto libre, sin cascada).
func (r *DepartmentRepo) Delete(name string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM department WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete departamento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
