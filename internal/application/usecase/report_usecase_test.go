package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kantin-api/internal/application/dto"
	"github.com/jhoicas/kantin-api/internal/application/usecase"
	"github.com/jhoicas/kantin-api/internal/domain"
	"github.com/jhoicas/kantin-api/internal/domain/entity"
)

type fakeExporter struct {
	payload []byte
	calls   int
}

func (e *fakeExporter) WriteReport(rows []entity.ReportRow) ([]byte, error) {
	e.calls++
	return e.payload, nil
}

func (e *fakeExporter) GenerateReportPDF(ctx context.Context, filter entity.TransactionFilter, rows []entity.ReportRow, summary *entity.ReportSummary) ([]byte, error) {
	e.calls++
	return e.payload, nil
}

func buildReportUseCase(repo *fakeTransactionRepo) (*usecase.ReportUseCase, *fakeExporter, *fakeExporter, *fakeExporter) {
	csvExp := &fakeExporter{payload: []byte("csv")}
	xlsxExp := &fakeExporter{payload: []byte("xlsx")}
	pdfExp := &fakeExporter{payload: []byte("pdf")}
	uc := usecase.NewReportUseCase(repo, csvExp, xlsxExp, pdfExp).WithClock(testClock)
	return uc, csvExp, xlsxExp, pdfExp
}

func TestReportList_ResumenYDetalle(t *testing.T) {
	repo := &fakeTransactionRepo{
		rows: []entity.ReportRow{
			{Date: testToday, Time: "12:00:00", StaffName: "Budi Santoso", Department: "Produksi", MenuName: "Nasi Goreng", Price: 15000, Status: entity.ScanSuccess},
			{Date: testToday, Time: "12:05:00", StaffName: entity.UnknownStaffName, Department: "", MenuName: "Nasi Goreng", Price: 15000, Status: entity.ScanFailure},
		},
		summary: entity.ReportSummary{SuccessCount: 1, FailureCount: 1, TotalSpend: decimal.NewFromInt(15000)},
	}
	uc, _, _, _ := buildReportUseCase(repo)

	out, err := uc.List(dto.ReportFilter{})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.Summary.SuccessCount)
	assert.Equal(t, int64(1), out.Summary.FailureCount)
	assert.Equal(t, "15000", out.Summary.TotalSpend)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Budi Santoso", out.Items[0].StaffName)
	assert.Equal(t, entity.UnknownStaffName, out.Items[1].StaffName)
}

func TestReportList_FechaInvalidaRechazada(t *testing.T) {
	uc, _, _, _ := buildReportUseCase(&fakeTransactionRepo{})

	_, err := uc.List(dto.ReportFilter{FromDate: "01-09-2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.List(dto.ReportFilter{Status: "PENDING"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportExport_NombreDeArchivoYContentTypePorFormato(t *testing.T) {
	repo := &fakeTransactionRepo{summary: entity.ReportSummary{TotalSpend: decimal.Zero}}
	uc, csvExp, xlsxExp, pdfExp := buildReportUseCase(repo)
	filter := dto.ReportFilter{FromDate: "2026-08-01", ToDate: "2026-08-31"}

	casos := []struct {
		format      string
		filename    string
		contentType string
		exp         *fakeExporter
	}{
		{usecase.ExportCSV, "laporan_transaksi_2026-08-01_2026-08-31.csv", "text/csv; charset=utf-8", csvExp},
		{usecase.ExportXLSX, "laporan_transaksi_2026-08-01_2026-08-31.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsxExp},
		{usecase.ExportPDF, "laporan_transaksi_2026-08-01_2026-08-31.pdf", "application/pdf", pdfExp},
	}
	for _, c := range casos {
		out, err := uc.Export(context.Background(), filter, c.format)
		require.NoError(t, err, c.format)
		assert.Equal(t, c.filename, out.Filename)
		assert.Equal(t, c.contentType, out.ContentType)
		assert.Equal(t, 1, c.exp.calls, "debe invocarse el exportador de %s", c.format)
		assert.NotEmpty(t, out.Data)
	}
}

func TestReportExport_FormatoDesconocidoRechazado(t *testing.T) {
	uc, _, _, _ := buildReportUseCase(&fakeTransactionRepo{})

	_, err := uc.Export(context.Background(), dto.ReportFilter{}, "docx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportExport_FechasVaciasUsanElDiaActual(t *testing.T) {
	repo := &fakeTransactionRepo{summary: entity.ReportSummary{TotalSpend: decimal.Zero}}
	uc, _, _, _ := buildReportUseCase(repo)

	out, err := uc.Export(context.Background(), dto.ReportFilter{}, usecase.ExportCSV)
	require.NoError(t, err)
	assert.Equal(t, "laporan_transaksi_"+testToday+"_"+testToday+".csv", out.Filename)
}
