// Package identity concentra la política de identidad implícita de clientes:
// un cliente se reconoce por su número de teléfono normalizado, no por una referencia estable.
package identity

import (
	"strings"
	"unicode"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
)

// NormalizePhone elimina espacios en blanco y guiones separadores.
// "01711-111111" y "017 11 111 111" producen el mismo valor.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return r
	}, phone)
}

// SamePhone compara dos teléfonos tras normalizarlos. Dos teléfonos vacíos no coinciden.
func SamePhone(a, b string) bool {
	na := NormalizePhone(a)
	return na != "" && na == NormalizePhone(b)
}

// FindByPhone devuelve el primer cliente cuyo teléfono coincide. excludeID permite
// ignorar el propio registro al editar.
func FindByPhone(customers []entity.Customer, phone, excludeID string) (entity.Customer, bool) {
	for _, c := range customers {
		if c.ID == excludeID && excludeID != "" {
			continue
		}
		if SamePhone(c.Phone, phone) {
			return c, true
		}
	}
	return entity.Customer{}, false
}

// IsBarePhone indica si el contacto, sin espacios, es un número (con "+" opcional al inicio).
func IsBarePhone(contact string) bool {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, contact)
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
