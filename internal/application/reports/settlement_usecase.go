// Package reports contiene los casos de uso de liquidación y del tablero principal.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/domain"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/repository"
	"github.com/jhoicas/Warrick-api/internal/domain/settlement"
)

// SettlementUseCase calcula la liquidación de un período y la exporta.
type SettlementUseCase struct {
	invoices repository.InvoiceRepository
	products repository.ProductRepository
	business repository.BusinessRepository
	pdf      SettlementPDFGenerator
	xlsx     SettlementSpreadsheet
	now      func() time.Time
}

// NewSettlementUseCase construye el caso de uso. pdf y xlsx pueden ser nil si no se exporta.
func NewSettlementUseCase(
	invoices repository.InvoiceRepository,
	products repository.ProductRepository,
	business repository.BusinessRepository,
	pdf SettlementPDFGenerator,
	xlsx SettlementSpreadsheet,
) *SettlementUseCase {
	return &SettlementUseCase{
		invoices: invoices,
		products: products,
		business: business,
		pdf:      pdf,
		xlsx:     xlsx,
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *SettlementUseCase) WithClock(now func() time.Time) *SettlementUseCase {
	uc.now = now
	return uc
}

// ParseQuery convierte los parámetros HTTP/CLI en un RangeFilter. Un rango desconocido
// o una fecha mal formada devuelven ErrInvalidInput.
func ParseQuery(q dto.SettlementQuery) (settlement.RangeFilter, error) {
	r, ok := settlement.ParseRange(q.Range)
	if !ok {
		return settlement.RangeFilter{}, fmt.Errorf("%w: rango desconocido %q", domain.ErrInvalidInput, q.Range)
	}
	f := settlement.RangeFilter{Range: r}
	if r != settlement.RangeCustom {
		return f, nil
	}
	if q.Start != "" {
		d, err := entity.ParseCalendarDate(q.Start)
		if err != nil {
			return settlement.RangeFilter{}, fmt.Errorf("%w: start: %v", domain.ErrInvalidInput, err)
		}
		f.Start = &d.Time
	}
	if q.End != "" {
		d, err := entity.ParseCalendarDate(q.End)
		if err != nil {
			return settlement.RangeFilter{}, fmt.Errorf("%w: end: %v", domain.ErrInvalidInput, err)
		}
		f.End = &d.Time
	}
	return f, nil
}

// Report carga las colecciones, filtra por período y concilia pagado/pendiente.
// Los importes del DTO van redondeados a 2 decimales.
func (uc *SettlementUseCase) Report(ctx context.Context, f settlement.RangeFilter) (*dto.SettlementResponse, error) {
	invoices, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("settlement: facturas: %w", err)
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("settlement: productos: %w", err)
	}
	now := uc.now()
	filtered := settlement.FilterByRange(invoices, f, now)
	rep := settlement.Settle(filtered, products)

	out := &dto.SettlementResponse{
		Range:        string(f.Range),
		GeneratedAt:  now.UTC().Format(time.RFC3339),
		InvoiceCount: len(filtered),
		PaidCount:    rep.Paid,
		UnpaidCount:  rep.Unpaid,
		Received:     rep.Received.Round(2),
		Pending:      rep.Pending.Round(2),
		Gross:        rep.Gross.Round(2),
		UnitsSold:    rep.UnitsSold,
		Products:     make([]dto.ProductPerformanceDTO, 0, len(rep.Products)),
	}
	if f.Range == "" {
		out.Range = string(settlement.RangeLifetime)
	}
	if f.Start != nil {
		out.Start = f.Start.Format(entity.DateLayout)
	}
	if f.End != nil {
		out.End = f.End.Format(entity.DateLayout)
	}
	for _, p := range rep.Products {
		out.Products = append(out.Products, dto.ProductPerformanceDTO{
			ProductID:    p.ProductID,
			Name:         p.Name,
			Price:        p.Price,
			Stock:        p.Stock,
			SoldInPeriod: p.SoldInPeriod,
			LowStock:     p.LowStock,
		})
	}
	return out, nil
}

// ExportPDF genera Settlement_Report_<YYYY-MM-DD>.pdf del período.
func (uc *SettlementUseCase) ExportPDF(ctx context.Context, f settlement.RangeFilter) ([]byte, string, error) {
	rep, biz, err := uc.reportWithBusiness(ctx, f)
	if err != nil {
		return nil, "", err
	}
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("settlement: generador PDF no configurado")
	}
	b, err := uc.pdf.GenerateSettlementPDF(*rep, biz)
	if err != nil {
		return nil, "", fmt.Errorf("settlement: generar PDF: %w", err)
	}
	return b, "Settlement_Report_" + uc.now().Format(entity.DateLayout) + ".pdf", nil
}

// ExportXLSX genera Settlement_Report_<YYYY-MM-DD>.xlsx del período.
func (uc *SettlementUseCase) ExportXLSX(ctx context.Context, f settlement.RangeFilter) ([]byte, string, error) {
	rep, biz, err := uc.reportWithBusiness(ctx, f)
	if err != nil {
		return nil, "", err
	}
	if uc.xlsx == nil {
		return nil, "", fmt.Errorf("settlement: generador XLSX no configurado")
	}
	b, err := uc.xlsx.GenerateSettlementXLSX(*rep, biz)
	if err != nil {
		return nil, "", fmt.Errorf("settlement: generar XLSX: %w", err)
	}
	return b, "Settlement_Report_" + uc.now().Format(entity.DateLayout) + ".xlsx", nil
}

func (uc *SettlementUseCase) reportWithBusiness(ctx context.Context, f settlement.RangeFilter) (*dto.SettlementResponse, dto.BusinessResponse, error) {
	rep, err := uc.Report(ctx, f)
	if err != nil {
		return nil, dto.BusinessResponse{}, err
	}
	info, err := uc.business.Get(ctx)
	if err != nil {
		return nil, dto.BusinessResponse{}, err
	}
	return rep, dto.NewBusinessResponse(info), nil
}
