package excel_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/application/reports"
	"github.com/jhoicas/Warrick-api/internal/infrastructure/excel"
)

var _ reports.SettlementSpreadsheet = (*excel.SettlementWorkbook)(nil)

func TestGenerateSettlementXLSX(t *testing.T) {
	rep := dto.SettlementResponse{
		Range: "Lifetime", GeneratedAt: "2026-03-15T12:00:00Z",
		InvoiceCount: 2, PaidCount: 1, UnpaidCount: 1,
		Received: decimal.NewFromInt(220), Pending: decimal.NewFromInt(50), Gross: decimal.NewFromInt(270),
		UnitsSold: decimal.NewFromInt(3),
		Products: []dto.ProductPerformanceDTO{
			{Name: "Logo", Price: decimal.NewFromInt(100), Stock: decimal.NewFromInt(3), SoldInPeriod: decimal.NewFromInt(2), LowStock: true},
		},
	}

	b, err := excel.NewSettlementWorkbook().GenerateSettlementXLSX(rep, dto.BusinessResponse{Name: "Warrick Studios"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{excel.SummarySheet, excel.ProductsSheet}, f.GetSheetList())

	v, err := f.GetCellValue(excel.SummarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Warrick Studios", v)
	v, err = f.GetCellValue(excel.SummarySheet, "B11")
	require.NoError(t, err)
	assert.Equal(t, "270", v)

	v, err = f.GetCellValue(excel.ProductsSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Logo", v)
	v, err = f.GetCellValue(excel.ProductsSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}
