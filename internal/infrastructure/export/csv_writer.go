// Package export serializa la vista del reporte de transacciones a los
// formatos de descarga (CSV y XLSX).
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jhoicas/kantin-api/internal/application/usecase"
	"github.com/jhoicas/kantin-api/internal/domain/entity"
)

// reportHeader columnas de la vista unida, en el orden de descarga.
var reportHeader = []string{"date", "time", "staff_name", "department", "menu", "price", "status"}

var _ usecase.CSVExporter = (*CSVWriter)(nil)

// CSVWriter exporta el reporte como texto UTF-8 separado por comas.
type CSVWriter struct{}

// NewCSVWriter construye el exportador.
func NewCSVWriter() *CSVWriter { return &CSVWriter{} }

// WriteReport serializa las filas con cabecera.
func (w *CSVWriter) WriteReport(rows []entity.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(reportHeader); err != nil {
		return nil, fmt.Errorf("csv: cabecera: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Date,
			r.Time,
			r.StaffName,
			r.Department,
			r.MenuName,
			strconv.FormatInt(r.Price, 10),
			string(r.Status),
		}
		if err := cw.Write(record); err != nil {
			return nil, fmt.Errorf("csv: fila: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}
