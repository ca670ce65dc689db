package settlement

import (
	"strings"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/identity"
)

// SearchInvoices filtra por nombre de cliente, número de factura o notas (subcadena, sin
// distinguir mayúsculas). Consulta vacía devuelve todo en el mismo orden.
func SearchInvoices(invoices []entity.Invoice, query string) []entity.Invoice {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return invoices
	}
	return filter(invoices, func(inv entity.Invoice) bool {
		return strings.Contains(strings.ToLower(inv.Customer.Name), q) ||
			strings.Contains(strings.ToLower(inv.InvoiceNumber), q) ||
			strings.Contains(strings.ToLower(inv.Notes), q)
	})
}

// SearchCustomers filtra por nombre (subcadena sin distinguir mayúsculas) o por teléfono
// normalizado que contiene la consulta normalizada. Una consulta formada solo por
// separadores ("-") queda vacía al normalizarse y coincide con todos.
func SearchCustomers(customers []entity.Customer, query string) []entity.Customer {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return customers
	}
	phoneQ := identity.NormalizePhone(q)
	out := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(identity.NormalizePhone(c.Phone), phoneQ) {
			out = append(out, c)
		}
	}
	return out
}

// SearchProducts filtra por nombre (subcadena sin distinguir mayúsculas).
func SearchProducts(products []entity.Product, query string) []entity.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}
