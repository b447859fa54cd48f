package entity

import "github.com/shopspring/decimal"

// ScanStatus resultado de un intento de escaneo.
type ScanStatus string

const (
	ScanSuccess ScanStatus = "SUCCESS"
	ScanFailure ScanStatus = "FAILURE"
)

// UnknownStaffName centinela para el snapshot cuando el barcode no está registrado.
const UnknownStaffName = "N/A"

// Transaction es el registro inmutable de un intento de escaneo (log append-only).
// StaffNameSnapshot desnormaliza el nombre al momento del escaneo para que
// sobreviva al borrado del staff.
type Transaction struct {
	ID                int64
	BarcodeID         string
	Date              string // YYYY-MM-DD
	Time              string // HH:MM:SS
	MenuName          string
	Price             int64
	StaffNameSnapshot string
	Status            ScanStatus
}

// TransactionFilter tupla completa de parámetros del reporte. Department y
// Status vacíos significan "todos".
type TransactionFilter struct {
	FromDate   string // YYYY-MM-DD, inclusive
	ToDate     string // YYYY-MM-DD, inclusive
	Department string
	Status     ScanStatus
}

// ReportRow fila de la vista unida del reporte de transacciones
// (departamento vivo vía staff; vacío si el staff fue borrado).
type ReportRow struct {
	Date       string
	Time       string
	BarcodeID  string
	StaffName  string
	Department string
	MenuName   string
	Price      int64
	Status     ScanStatus
}

// ReportSummary agregados del reporte. TotalSpend suma solo los SUCCESS
// (SUM sobre bigint llega como NUMERIC desde PostgreSQL).
type ReportSummary struct {
	SuccessCount int64
	FailureCount int64
	TotalSpend   decimal.Decimal
}
