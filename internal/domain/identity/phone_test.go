package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/identity"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "01711111111", identity.NormalizePhone("017 11 111 111"))
	assert.Equal(t, "01711111111", identity.NormalizePhone("01711-111111"))
	assert.Equal(t, "+8801711111111", identity.NormalizePhone(" +880\t1711 111111 "))
}

func TestFindByPhone_MismoNumeroDistintoEspaciado(t *testing.T) {
	customers := []entity.Customer{
		{ID: "c1", Name: "Rahim", Phone: "01711-111111"},
		{ID: "c2", Name: "Karim", Phone: "01822222222"},
	}

	got, ok := identity.FindByPhone(customers, "017 11 111 111", "")
	assert.True(t, ok, "el mismo número con otro espaciado es el mismo cliente")
	assert.Equal(t, "c1", got.ID)

	_, ok = identity.FindByPhone(customers, "01711111111", "c1")
	assert.False(t, ok, "excludeID ignora el propio registro")

	_, ok = identity.FindByPhone(customers, "", "")
	assert.False(t, ok, "teléfono vacío nunca coincide")
}

func TestIsBarePhone(t *testing.T) {
	assert.True(t, identity.IsBarePhone("+880 1711 111111"))
	assert.True(t, identity.IsBarePhone("01711111111"))
	assert.False(t, identity.IsBarePhone("rahim@example.com"))
	assert.False(t, identity.IsBarePhone("01711-111111"))
	assert.False(t, identity.IsBarePhone(""))
	assert.False(t, identity.IsBarePhone("+"))
}
