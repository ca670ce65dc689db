package billing

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/Warrick-api/internal/domain"
	"github.com/jhoicas/Warrick-api/internal/domain/repository"
)

// DocumentUseCase genera los documentos descargables de facturas y clientes.
type DocumentUseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	pdf       InvoicePDFGenerator
	profiles  CustomerPDFGenerator
	xml       InvoiceXMLEncoder
	now       func() time.Time
}

// NewDocumentUseCase construye el caso de uso inyectando todas sus dependencias.
func NewDocumentUseCase(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	pdf InvoicePDFGenerator,
	profiles CustomerPDFGenerator,
	xml InvoiceXMLEncoder,
) *DocumentUseCase {
	return &DocumentUseCase{
		invoices:  invoices,
		customers: customers,
		pdf:       pdf,
		profiles:  profiles,
		xml:       xml,
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *DocumentUseCase) WithClock(now func() time.Time) *DocumentUseCase {
	uc.now = now
	return uc
}

// InvoicePDF genera el PDF de la factura. Nombre: Invoice_<número sin #>.pdf.
func (uc *DocumentUseCase) InvoicePDF(ctx context.Context, id string) ([]byte, string, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	b, err := uc.pdf.GenerateInvoicePDF(*inv)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar factura: %w", err)
	}
	return b, "Invoice_" + fileSafe(inv.InvoiceNumber) + ".pdf", nil
}

// InvoiceXML serializa la factura como XML. Nombre: Invoice_<número sin #>.xml.
func (uc *DocumentUseCase) InvoiceXML(ctx context.Context, id string) ([]byte, string, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("xml: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	b, err := uc.xml.EncodeInvoice(*inv)
	if err != nil {
		return nil, "", fmt.Errorf("xml: serializar factura: %w", err)
	}
	return b, "Invoice_" + fileSafe(inv.InvoiceNumber) + ".xml", nil
}

// CustomerProfilePDF ficha de un cliente. Nombre: Profile_<Nombre_Con_Guiones_Bajos>.pdf.
func (uc *DocumentUseCase) CustomerProfilePDF(ctx context.Context, id string) ([]byte, string, error) {
	c, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if c == nil {
		return nil, "", domain.ErrNotFound
	}
	b, err := uc.profiles.GenerateCustomerProfilePDF(*c, uc.now())
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar ficha: %w", err)
	}
	return b, "Profile_" + whitespaceRun.ReplaceAllString(c.Name, "_") + ".pdf", nil
}

// CustomerIndexPDF listado de todos los clientes. Sin clientes devuelve ErrInvalidInput.
func (uc *DocumentUseCase) CustomerIndexPDF(ctx context.Context) ([]byte, string, error) {
	all, err := uc.customers.List(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(all) == 0 {
		return nil, "", fmt.Errorf("%w: no hay clientes para exportar", domain.ErrInvalidInput)
	}
	now := uc.now()
	b, err := uc.profiles.GenerateCustomerIndexPDF(all, now)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar índice: %w", err)
	}
	return b, "Warrick_Customers_All_" + now.Format("2006-01-02") + ".pdf", nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// fileSafe quita "#" y espacios del número de factura para usarlo en nombres de archivo.
func fileSafe(number string) string {
	return strings.TrimSpace(strings.ReplaceAll(number, "#", ""))
}
