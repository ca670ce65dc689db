package dto

import (
	"time"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/settlement"
)

// NewInvoiceResponse proyecta una factura con sus totales calculados.
func NewInvoiceResponse(inv entity.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, LineItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Amount:   it.Amount(),
		})
	}
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.Date.String(),
		Business:      NewBusinessResponse(inv.Business),
		Customer: InvoiceCustomerResponse{
			Name:    inv.Customer.Name,
			Email:   inv.Customer.Email,
			Address: inv.Customer.Address,
		},
		Items:    items,
		Currency: inv.Currency,
		TaxRate:  inv.TaxRate,
		Status:   inv.Status,
		Notes:    inv.Notes,
		Subtotal: settlement.Subtotal(inv),
		Tax:      settlement.Tax(inv),
		Total:    settlement.Total(inv),
	}
}

// NewInvoiceResponses proyecta un listado conservando el orden.
func NewInvoiceResponses(invs []entity.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, NewInvoiceResponse(inv))
	}
	return out
}

// NewCustomerResponse proyecta un cliente.
func NewCustomerResponse(c entity.Customer) CustomerResponse {
	created := ""
	if !c.CreatedAt.IsZero() {
		created = c.CreatedAt.UTC().Format(time.RFC3339)
	}
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		Email:     c.Email,
		CreatedAt: created,
	}
}

// NewProductResponse proyecta un producto.
func NewProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock}
}

// NewUserResponse proyecta un usuario sin credenciales.
func NewUserResponse(u entity.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Role:     u.Role,
		Name:     u.Name,
		Username: u.Username,
		Mobile:   u.Mobile,
		Email:    u.Email,
	}
}

// NewBusinessResponse proyecta el perfil del negocio.
func NewBusinessResponse(b entity.BusinessInfo) BusinessResponse {
	return BusinessResponse{Name: b.Name, Email: b.Email, Phone: b.Phone, Address: b.Address}
}
