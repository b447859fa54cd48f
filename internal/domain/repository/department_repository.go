package repository

// DepartmentRepository puerto de persistencia para Department.
type DepartmentRepository interface {
	// Create rechaza duplicados con domain.ErrDuplicate.
	Create(name string) error
	// CreateIfAbsent inserta solo si el nombre no existe (import masivo).
	CreateIfAbsent(name string) error
	// List devuelve los nombres ordenados alfabéticamente.
	List() ([]string, error)
	// Delete borra por nombre. No toca filas de staff: department_name es
	// referencia de texto libre, sin cascada.
	Delete(name string) error
}
