// Package excel exporta el reporte de liquidación como libro XLSX (excelize).
package excel

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
)

// Nombres de las hojas del libro.
const (
	SummarySheet  = "Settlement"
	ProductsSheet = "Products"
)

// SettlementWorkbook implementa reports.SettlementSpreadsheet.
type SettlementWorkbook struct{}

// NewSettlementWorkbook construye el exportador.
func NewSettlementWorkbook() *SettlementWorkbook { return &SettlementWorkbook{} }

// GenerateSettlementXLSX arma dos hojas: resumen (recibido, pendiente, bruto, conteos) y
// rendimiento por producto. Los importes se escriben como números.
func (w *SettlementWorkbook) GenerateSettlementXLSX(rep dto.SettlementResponse, biz dto.BusinessResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("xlsx: hoja resumen: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	lowStock, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: "EF4444"}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	summary := [][]any{
		{"SETTLEMENT RECONCILIATION REPORT", biz.Name},
		{"Range", rep.Range},
		{"Start", rep.Start},
		{"End", rep.End},
		{"Generated", rep.GeneratedAt},
		{"Invoices", rep.InvoiceCount},
		{"Paid", rep.PaidCount},
		{"Unpaid", rep.UnpaidCount},
		{"Total Received", num(rep.Received)},
		{"Pending Balance", num(rep.Pending)},
		{"Gross Billing", num(rep.Gross)},
		{"Units Sold", num(rep.UnitsSold)},
	}
	for i, r := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &r); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+1, err)
		}
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "A12", bold); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(SummarySheet, "A", "A", 34)
	_ = f.SetColWidth(SummarySheet, "B", "B", 26)

	if _, err := f.NewSheet(ProductsSheet); err != nil {
		return nil, fmt.Errorf("xlsx: hoja productos: %w", err)
	}
	headers := []string{"Product Name", "Units Sold", "Current Stock", "Unit Price", "Low Stock"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ProductsSheet, cell, h)
	}
	if err := f.SetCellStyle(ProductsSheet, "A1", "E1", bold); err != nil {
		return nil, err
	}
	for i, p := range rep.Products {
		row := i + 2
		f.SetCellValue(ProductsSheet, fmt.Sprintf("A%d", row), p.Name)
		f.SetCellValue(ProductsSheet, fmt.Sprintf("B%d", row), num(p.SoldInPeriod))
		f.SetCellValue(ProductsSheet, fmt.Sprintf("C%d", row), num(p.Stock))
		f.SetCellValue(ProductsSheet, fmt.Sprintf("D%d", row), num(p.Price))
		f.SetCellValue(ProductsSheet, fmt.Sprintf("E%d", row), p.LowStock)
		if p.LowStock {
			_ = f.SetCellStyle(ProductsSheet, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), lowStock)
		}
	}
	_ = f.SetColWidth(ProductsSheet, "A", "A", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// num convierte a float64 para que la celda sea numérica.
func num(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}
