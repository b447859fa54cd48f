package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/kantin-api/internal/application/dto"
	"github.com/jhoicas/kantin-api/internal/domain"
	"github.com/jhoicas/kantin-api/internal/domain/entity"
	"github.com/jhoicas/kantin-api/internal/domain/repository"
)

// CSVExporter serializa la vista del reporte como CSV UTF-8.
type CSVExporter interface {
	WriteReport(rows []entity.ReportRow) ([]byte, error)
}

// ExcelExporter serializa la vista del reporte como libro XLSX.
type ExcelExporter interface {
	WriteReport(rows []entity.ReportRow) ([]byte, error)
}

// PDFExporter genera el reporte imprimible.
type PDFExporter interface {
	GenerateReportPDF(ctx context.Context, filter entity.TransactionFilter, rows []entity.ReportRow, summary *entity.ReportSummary) ([]byte, error)
}

// Formatos de exportación soportados.
const (
	ExportCSV  = "csv"
	ExportXLSX = "xlsx"
	ExportPDF  = "pdf"
)

// ReportUseCase reportes de transacciones: filtro, resumen y exportación.
type ReportUseCase struct {
	repo  repository.TransactionRepository
	csv   CSVExporter
	excel ExcelExporter
	pdf   PDFExporter
	now   func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.TransactionRepository, csv CSVExporter, excel ExcelExporter, pdf PDFExporter) *ReportUseCase {
	return &ReportUseCase{repo: repo, csv: csv, excel: excel, pdf: pdf, now: time.Now}
}

// WithClock fija el reloj (tests).
func (uc *ReportUseCase) WithClock(now func() time.Time) *ReportUseCase {
	uc.now = now
	return uc
}

// List devuelve resumen + detalle según el filtro.
func (uc *ReportUseCase) List(filter dto.ReportFilter) (*dto.ReportResponse, error) {
	f, err := uc.normalize(filter)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.ListByFilter(f)
	if err != nil {
		return nil, err
	}
	summary, err := uc.repo.Summary(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReportRowResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ReportRowResponse{
			Date:       r.Date,
			Time:       r.Time,
			StaffName:  r.StaffName,
			Department: r.Department,
			MenuName:   r.MenuName,
			Price:      r.Price,
			Status:     string(r.Status),
		})
	}
	return &dto.ReportResponse{
		Summary: dto.ReportSummaryResponse{
			SuccessCount: summary.SuccessCount,
			FailureCount: summary.FailureCount,
			TotalSpend:   summary.TotalSpend.String(),
		},
		Items: items,
	}, nil
}

// Export genera el archivo del reporte en el formato pedido.
func (uc *ReportUseCase) Export(ctx context.Context, filter dto.ReportFilter, format string) (*dto.ExportFile, error) {
	f, err := uc.normalize(filter)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.ListByFilter(f)
	if err != nil {
		return nil, err
	}

	base := fmt.Sprintf("laporan_transaksi_%s_%s", f.FromDate, f.ToDate)
	switch format {
	case ExportCSV:
		data, err := uc.csv.WriteReport(rows)
		if err != nil {
			return nil, err
		}
		return &dto.ExportFile{Filename: base + ".csv", ContentType: "text/csv; charset=utf-8", Data: data}, nil
	case ExportXLSX:
		data, err := uc.excel.WriteReport(rows)
		if err != nil {
			return nil, err
		}
		return &dto.ExportFile{
			Filename:    base + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	case ExportPDF:
		summary, err := uc.repo.Summary(f)
		if err != nil {
			return nil, err
		}
		data, err := uc.pdf.GenerateReportPDF(ctx, f, rows, summary)
		if err != nil {
			return nil, err
		}
		return &dto.ExportFile{Filename: base + ".pdf", ContentType: "application/pdf", Data: data}, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}

// normalize valida el filtro y aplica los defaults (fechas vacías = hoy).
func (uc *ReportUseCase) normalize(filter dto.ReportFilter) (entity.TransactionFilter, error) {
	today := uc.now().Format("2006-01-02")
	f := entity.TransactionFilter{
		FromDate:   filter.FromDate,
		ToDate:     filter.ToDate,
		Department: filter.Department,
	}
	if f.FromDate == "" {
		f.FromDate = today
	}
	if f.ToDate == "" {
		f.ToDate = today
	}
	for _, d := range []string{f.FromDate, f.ToDate} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return entity.TransactionFilter{}, domain.ErrInvalidInput
		}
	}
	switch filter.Status {
	case "":
		f.Status = ""
	case string(entity.ScanSuccess):
		f.Status = entity.ScanSuccess
	case string(entity.ScanFailure):
		f.Status = entity.ScanFailure
	default:
		return entity.TransactionFilter{}, domain.ErrInvalidInput
	}
	return f, nil
}
