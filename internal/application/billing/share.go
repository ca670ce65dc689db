package billing

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/domain"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/identity"
	"github.com/jhoicas/Warrick-api/internal/domain/repository"
	"github.com/jhoicas/Warrick-api/internal/domain/settlement"
	"github.com/jhoicas/Warrick-api/pkg/money"
)

// ShareUseCase arma el texto y los enlaces para enviar una factura al cliente.
type ShareUseCase struct {
	invoices repository.InvoiceRepository
}

// NewShareUseCase construye el caso de uso.
func NewShareUseCase(invoices repository.InvoiceRepository) *ShareUseCase {
	return &ShareUseCase{invoices: invoices}
}

// Build devuelve el resumen de la factura id. link es la URL pública de la factura
// que se incluye en el mensaje.
func (uc *ShareUseCase) Build(ctx context.Context, id, link string) (*dto.ShareResponse, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	out := ShareMessage(*inv, link)
	return &out, nil
}

// ShareMessage resumen "Invoice #n from <negocio> / Total / Customer" y el enlace de
// respaldo: wa.me cuando el contacto del cliente es un número, mailto en otro caso.
// El contacto es el campo email de la copia del cliente o, si está vacío, el móvil.
func ShareMessage(inv entity.Invoice, link string) dto.ShareResponse {
	total := money.Amount(inv.Currency, settlement.Total(inv))
	summary := fmt.Sprintf("Invoice %s from %s\nTotal: %s\nCustomer: %s",
		inv.InvoiceNumber, inv.Business.Name, total, inv.Customer.Name)

	message := fmt.Sprintf("Hello %s, here is your invoice %s from %s.\nTotal: %s",
		inv.Customer.Name, inv.InvoiceNumber, inv.Business.Name, total)
	if link != "" {
		message += "\nLink: " + link
	}

	contact := strings.TrimSpace(inv.Customer.Email)
	if contact == "" {
		contact = strings.TrimSpace(inv.Notes)
	}

	var fallback string
	if identity.IsBarePhone(contact) {
		digits := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) || r == '+' {
				return -1
			}
			return r
		}, contact)
		fallback = "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
	} else {
		fallback = "mailto:" + contact +
			"?subject=" + mailtoEscape("Invoice "+inv.InvoiceNumber) +
			"&body=" + mailtoEscape(message)
	}

	return dto.ShareResponse{
		Title:       "Invoice " + inv.InvoiceNumber,
		Text:        summary,
		URL:         link,
		FallbackURL: fallback,
	}
}

// mailtoEscape codifica como query pero con espacios %20 (los clientes de correo no
// interpretan "+" como espacio).
func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
