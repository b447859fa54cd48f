package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/kantin-api/internal/application/usecase"
	"github.com/jhoicas/kantin-api/internal/domain/entity"
)

var _ usecase.ExcelExporter = (*ExcelWriter)(nil)

// ExcelWriter exporta el reporte como libro XLSX de una hoja.
type ExcelWriter struct{}

// NewExcelWriter construye el exportador.
func NewExcelWriter() *ExcelWriter { return &ExcelWriter{} }

// WriteReport serializa las filas en la hoja "Laporan".
func (w *ExcelWriter) WriteReport(rows []entity.ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Laporan"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx: borrar hoja por defecto: %w", err)
	}

	for col, name := range reportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera: %w", err)
		}
	}
	for i, r := range rows {
		values := []any{r.Date, r.Time, r.StaffName, r.Department, r.MenuName, r.Price, string(r.Status)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
