package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kantin-api/internal/application/auth"
	"github.com/jhoicas/kantin-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ScanUC       *usecase.ScanUseCase
	StaffUC      *usecase.StaffUseCase
	DepartmentUC *usecase.DepartmentUseCase
	MenuUC       *usecase.MenuUseCase
	ReportUC     *usecase.ReportUseCase
	ImportUC     *usecase.ImportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Escaneo en caja (público: el lector no lleva sesión)
	scanHandler := NewScanHandler(deps.ScanUC)
	api.Post("/scan", scanHandler.Scan)

	// Menú del día: lectura pública, escritura protegida
	menuHandler := NewMenuHandler(deps.MenuUC)
	api.Get("/menu/today", menuHandler.GetToday)

	// Plantilla CSV (público, no expone datos)
	importHandler := NewImportHandler(deps.ImportUC)
	api.Get("/staff/import/template", importHandler.Template)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Put("/menu/today", menuHandler.SetToday)

	// Staff (protegido)
	staff := protected.Group("/staff")
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Post("/", staffHandler.Create)
	staff.Get("/", staffHandler.List)
	staff.Post("/reset-quotas", staffHandler.ResetQuotas)
	staff.Post("/import", importHandler.Import)
	staff.Get("/:barcode_id", staffHandler.GetByBarcode)
	staff.Put("/:barcode_id", staffHandler.Update)
	staff.Delete("/:barcode_id", staffHandler.Delete)

	// Departments (protegido)
	departments := protected.Group("/departments")
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	departments.Post("/", departmentHandler.Create)
	departments.Get("/", departmentHandler.List)
	departments.Delete("/:name", departmentHandler.Delete)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/transactions", reportHandler.List)
	reports.Get("/transactions/export", reportHandler.Export)
}

// decodeParam lee un parámetro de ruta y lo decodifica (los nombres de
// departamento pueden llevar espacios).
func decodeParam(c *fiber.Ctx, key string) (string, error) {
	return url.PathUnescape(c.Params(key))
}
