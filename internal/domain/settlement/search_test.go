package settlement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/settlement"
)

func TestSearchInvoices(t *testing.T) {
	invs := []entity.Invoice{
		{InvoiceNumber: "#0001", Customer: entity.CustomerSnapshot{Name: "Rahim Uddin"}, Notes: "01711111111"},
		{InvoiceNumber: "#0002", Customer: entity.CustomerSnapshot{Name: "Karim"}, Notes: "01822222222"},
		{InvoiceNumber: "#0013", Customer: entity.CustomerSnapshot{Name: "Nadia"}, Notes: ""},
	}

	assert.Equal(t, invs, settlement.SearchInvoices(invs, ""), "consulta vacía devuelve todo en orden")
	assert.Equal(t, invs, settlement.SearchInvoices(invs, "   "))

	assert.Equal(t, []string{"#0001"}, numbers(settlement.SearchInvoices(invs, "RAHIM")))
	assert.Equal(t, []string{"#0002"}, numbers(settlement.SearchInvoices(invs, "0182")))
	assert.Equal(t, []string{"#0013"}, numbers(settlement.SearchInvoices(invs, "#001")))
	assert.Empty(t, settlement.SearchInvoices(invs, "zzz"))
}

func TestSearchCustomers(t *testing.T) {
	customers := []entity.Customer{
		{ID: "c1", Name: "Rahim Uddin", Phone: "017 11 111 111"},
		{ID: "c2", Name: "Karim", Phone: "01822-222222"},
	}

	assert.Equal(t, customers, settlement.SearchCustomers(customers, ""))

	got := settlement.SearchCustomers(customers, "0171 1111")
	assert.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)

	got = settlement.SearchCustomers(customers, "karim")
	assert.Len(t, got, 1)
	assert.Equal(t, "c2", got[0].ID)

	got = settlement.SearchCustomers(customers, "im")
	assert.Len(t, got, 2)

	assert.Equal(t, customers, settlement.SearchCustomers(customers, "-"), "solo separadores coincide con todos")
	assert.Equal(t, customers, settlement.SearchCustomers(customers, " - "))
	assert.Empty(t, settlement.SearchCustomers(customers, "zzz"))
}

func TestSearchProducts(t *testing.T) {
	products := []entity.Product{{ID: "p1", Name: "Logo Design"}, {ID: "p2", Name: "Web Hosting"}}
	assert.Equal(t, products, settlement.SearchProducts(products, ""))
	got := settlement.SearchProducts(products, "host")
	assert.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}
