package reports

import "github.com/jhoicas/Warrick-api/internal/application/dto"

// SettlementPDFGenerator genera el reporte de liquidación en PDF A4.
type SettlementPDFGenerator interface {
	GenerateSettlementPDF(report dto.SettlementResponse, business dto.BusinessResponse) ([]byte, error)
}

// SettlementSpreadsheet genera el reporte de liquidación como libro XLSX.
type SettlementSpreadsheet interface {
	GenerateSettlementXLSX(report dto.SettlementResponse, business dto.BusinessResponse) ([]byte, error)
}
