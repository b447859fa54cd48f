// Package pdf genera el reporte imprimible de transacciones de la cantina.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + rango de fechas del filtro                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: scans OK | scans fallidos | gasto total            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Hora | Staff | Depto | Menú | Precio | Est.  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/kantin-api/internal/application/usecase"
	"github.com/jhoicas/kantin-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.PDFExporter = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.PDFExporter usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(
	_ context.Context,
	filter entity.TransactionFilter,
	rows []entity.ReportRow,
	summary *entity.ReportSummary,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Laporan Transaksi Kantin", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(filter))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título + rango de fechas.
func headerRow(filter entity.TransactionFilter) core.Row {
	period := fmt.Sprintf("%s - %s", filter.FromDate, filter.ToDate)
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Laporan Transaksi Kantin", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(period, props.Text{Size: 9, Top: 4, Align: align.Right, Color: colorGray}),
		),
	)
}

// summaryRow: bloque de estadísticas (solo los SUCCESS suman gasto).
func summaryRow(summary *entity.ReportSummary) core.Row {
	return row.New(10).Add(
		col.New(4).Add(
			text.New(fmt.Sprintf("Scan OK: %d", summary.SuccessCount), props.Text{Size: 9, Top: 2}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Scan fallidos: %d", summary.FailureCount), props.Text{Size: 9, Top: 2}),
		),
		col.New(4).Add(
			text.New("Total: Rp "+summary.TotalSpend.String(), props.Text{
				Size: 9, Top: 2, Style: fontstyle.Bold, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	boldRight := bold
	boldRight.Align = align.Right
	return row.New(7).Add(
		col.New(2).Add(text.New("Fecha", bold)),
		col.New(1).Add(text.New("Hora", bold)),
		col.New(3).Add(text.New("Staff", bold)),
		col.New(2).Add(text.New("Departamento", bold)),
		col.New(2).Add(text.New("Menú", bold)),
		col.New(1).Add(text.New("Precio", boldRight)),
		col.New(1).Add(text.New("Estado", bold)),
	)
}

func tableDetailRow(r entity.ReportRow) core.Row {
	cell := props.Text{Size: 8}
	cellRight := cell
	cellRight.Align = align.Right
	return row.New(6).Add(
		col.New(2).Add(text.New(r.Date, cell)),
		col.New(1).Add(text.New(r.Time, cell)),
		col.New(3).Add(text.New(r.StaffName, cell)),
		col.New(2).Add(text.New(r.Department, cell)),
		col.New(2).Add(text.New(r.MenuName, cell)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.Price), cellRight)),
		col.New(1).Add(text.New(string(r.Status), cell)),
	)
}
