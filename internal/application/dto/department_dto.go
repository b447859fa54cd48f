package dto

// CreateDepartmentRequest alta de departamento.
type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

// DepartmentListResponse nombres ordenados alfabéticamente.
type DepartmentListResponse struct {
	Items []string `json:"items"`
}

// DepartmentResponse departamento creado.
type DepartmentResponse struct {
	Name string `json:"name"`
}
