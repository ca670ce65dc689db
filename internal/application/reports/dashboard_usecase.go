package reports

import (
	"context"
	"fmt"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/repository"
	"github.com/jhoicas/Warrick-api/internal/domain/settlement"
)

// DashboardUseCase cifras del tablero principal y listado de facturas con búsqueda global.
type DashboardUseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(invoices repository.InvoiceRepository, customers repository.CustomerRepository) *DashboardUseCase {
	return &DashboardUseCase{invoices: invoices, customers: customers}
}

// GetSummary totales sobre todas las facturas; el listado aplica la búsqueda query.
// Facturas y clientes se cargan en paralelo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, query string) (*dto.DashboardResponse, error) {
	type invoicesResult struct {
		items []entity.Invoice
		err   error
	}
	type customersResult struct {
		items []entity.Customer
		err   error
	}

	invCh := make(chan invoicesResult, 1)
	custCh := make(chan customersResult, 1)

	go func() {
		items, err := uc.invoices.List(ctx)
		invCh <- invoicesResult{items, err}
	}()
	go func() {
		items, err := uc.customers.List(ctx)
		custCh <- customersResult{items, err}
	}()

	invs := <-invCh
	custs := <-custCh

	if invs.err != nil {
		return nil, fmt.Errorf("dashboard: facturas: %w", invs.err)
	}
	if custs.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", custs.err)
	}

	sum := settlement.Dashboard(invs.items, len(custs.items))
	return &dto.DashboardResponse{
		TotalRevenue:   sum.TotalRevenue.Round(2),
		InvoiceCount:   sum.InvoiceCount,
		PaidCount:      sum.PaidCount,
		DraftCount:     sum.DraftCount,
		CustomersCount: sum.CustomersCount,
		Invoices:       dto.NewInvoiceResponses(settlement.SearchInvoices(invs.items, query)),
	}, nil
}
