package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/kantin-api/internal/application/dto"
	"github.com/jhoicas/kantin-api/internal/application/ports"
	"github.com/jhoicas/kantin-api/internal/domain"
	"github.com/jhoicas/kantin-api/internal/domain/entity"
	"github.com/jhoicas/kantin-api/internal/domain/repository"
)

// Cabecera requerida del CSV de import. Los nombres son el contrato heredado
// de los archivos que ya circulan en planta.
var importColumns = []string{"barcode_id", "nama", "departemen", "jatah_harian"}

// ImportTxRunner ejecuta las dos escrituras de una fila de import (upsert de
// staff + alta de departamento si falta) en una misma transacción.
type ImportTxRunner interface {
	RunImport(ctx context.Context, fn func(
		staffRepo repository.StaffRepository,
		deptRepo repository.DepartmentRepository,
	) error) error
}

// ImportUseCase import masivo de staff desde CSV. Validación por fila con
// skip-y-conteo; solo la cabecera incompleta rechaza el lote entero.
type ImportUseCase struct {
	txRunner ImportTxRunner
	cache    ports.Invalidator
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(txRunner ImportTxRunner, cache ports.Invalidator) *ImportUseCase {
	return &ImportUseCase{txRunner: txRunner, cache: cache}
}

// ImportCSV procesa el archivo completo.
//
// Reglas por fila: los cuatro campos no vacíos tras trim y jatah_harian
// entero positivo; una fila inválida se salta y cuenta como fallo sin abortar
// el lote. Una fila válida se upserta por barcode con cuota restante completa
// y su departamento se inserta si no existe, ambas escrituras en una
// transacción por fila. Si falta alguna columna requerida, el import entero
// se rechaza con (0, 0) procesados.
func (uc *ImportUseCase) ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: archivo CSV vacío o ilegible", domain.ErrInvalidInput)
	}
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}
	for _, required := range importColumns {
		if _, ok := colIdx[required]; !ok {
			return nil, fmt.Errorf("%w: falta la columna requerida %q", domain.ErrInvalidInput, required)
		}
	}

	result := &dto.ImportResult{BatchID: uuid.NewString()}
	line := 1 // la cabecera es la línea 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportRowError{Line: line, Reason: "fila ilegible"})
			continue
		}

		row, reason := parseImportRow(record, colIdx)
		if reason != "" {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportRowError{Line: line, Reason: reason})
			continue
		}

		err = uc.txRunner.RunImport(ctx, func(staffRepo repository.StaffRepository, deptRepo repository.DepartmentRepository) error {
			if err := staffRepo.Upsert(row); err != nil {
				return err
			}
			return deptRepo.CreateIfAbsent(row.DepartmentName)
		})
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportRowError{Line: line, Reason: err.Error()})
			continue
		}
		result.Success++
	}

	// Una sola invalidación al final del lote, como cualquier otra escritura.
	uc.cache.Flush()
	return result, nil
}

// parseImportRow valida y materializa una fila. Devuelve el motivo de rechazo
// en lugar de error: el rechazo de fila es resultado del negocio, no fallo.
func parseImportRow(record []string, colIdx map[string]int) (*entity.Staff, string) {
	field := func(name string) string {
		idx := colIdx[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	barcode := field("barcode_id")
	name := field("nama")
	dept := field("departemen")
	quotaRaw := field("jatah_harian")

	quota, err := strconv.Atoi(quotaRaw)
	if err != nil {
		return nil, fmt.Sprintf("jatah_harian inválido: %q", quotaRaw)
	}
	if barcode == "" || name == "" || dept == "" || quota <= 0 {
		return nil, "campos vacíos o jatah_harian no positivo"
	}

	return &entity.Staff{
		BarcodeID:      barcode,
		Name:           name,
		DepartmentName: dept,
		DailyQuota:     quota,
		RemainingQuota: quota, // el import siempre otorga la cuota completa
	}, ""
}

// TemplateCSV devuelve el archivo de ejemplo descargable con la cabecera
// requerida y filas de muestra.
func TemplateCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(importColumns)
	_ = w.Write([]string{"1001", "Budi Santoso", "Produksi", "1"})
	_ = w.Write([]string{"1002", "Siti Rahma", "HRD", "1"})
	_ = w.Write([]string{"1003", "Joko Susilo", "Gudang", "2"})
	w.Flush()
	return buf.Bytes()
}
