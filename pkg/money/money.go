// Package money formatea importes para documentos y mensajes.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol símbolo de la moneda: BDT → ৳, USD → $, cualquier otro código se muestra tal cual.
func Symbol(currency string) string {
	switch currency {
	case "BDT":
		return "৳"
	case "USD":
		return "$"
	default:
		return currency
	}
}

// Format redondea a 2 decimales y agrupa miles: 1234.5 → "1,234.50".
func Format(d decimal.Decimal) string {
	rounded := d.Round(2)
	intPart, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	grouped := intPart
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		grouped = message.NewPrinter(language.English).Sprintf("%d", n)
	}
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + grouped + "." + frac
}

// Amount símbolo y monto: "৳ 1,234.50".
func Amount(currency string, d decimal.Decimal) string {
	return Symbol(currency) + " " + Format(d)
}

// Quantity cantidades sin ceros a la derecha: 2 → "2", 1.50 → "1.5".
func Quantity(d decimal.Decimal) string {
	return d.String()
}
