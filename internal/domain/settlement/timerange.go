package settlement

import (
	"strings"
	"time"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
)

// Range token de período para el reporte de liquidación.
type Range string

// Períodos soportados.
const (
	RangeLastHour  Range = "1h"
	RangeLast24h   Range = "24h"
	Range7Days     Range = "7D"
	Range15Days    Range = "15D"
	Range30Days    Range = "1M"
	Range90Days    Range = "3M"
	Range180Days   Range = "6M"
	RangeOneYear   Range = "1Y"
	RangeFiveYears Range = "5Y"
	RangeLifetime  Range = "Lifetime"
	RangeCustom    Range = "Custom"
)

// Ranges lista ordenada de los períodos, de menor a mayor amplitud (Custom al final).
var Ranges = []Range{
	RangeLastHour, RangeLast24h, Range7Days, Range15Days, Range30Days,
	Range90Days, Range180Days, RangeOneYear, RangeFiveYears, RangeLifetime, RangeCustom,
}

var rangeAliases = map[string]Range{
	"1h": RangeLastHour, "last_hour": RangeLastHour,
	"24h": RangeLast24h, "last_24h": RangeLast24h,
	"7d": Range7Days, "15d": Range15Days,
	"1m": Range30Days, "30d": Range30Days,
	"3m": Range90Days, "90d": Range90Days,
	"6m": Range180Days, "180d": Range180Days,
	"1y": RangeOneYear, "5y": RangeFiveYears,
	"lifetime": RangeLifetime, "all": RangeLifetime, "all_time": RangeLifetime,
	"custom": RangeCustom,
}

// ParseRange interpreta un token de período sin distinguir mayúsculas.
// Vacío devuelve Lifetime; un token desconocido devuelve ok=false.
func ParseRange(s string) (Range, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RangeLifetime, true
	}
	r, ok := rangeAliases[s]
	return r, ok
}

// RangeFilter parámetros del filtro por período. Start/End solo aplican a Custom.
type RangeFilter struct {
	Range Range
	Start *time.Time
	End   *time.Time
}

// Cutoff instante de corte para un período con nombre relativo a now.
// ok=false para Lifetime, Custom y tokens desconocidos.
func Cutoff(r Range, now time.Time) (time.Time, bool) {
	switch r {
	case RangeLastHour:
		return now.Add(-time.Hour), true
	case RangeLast24h:
		return now.Add(-24 * time.Hour), true
	case Range7Days:
		return now.AddDate(0, 0, -7), true
	case Range15Days:
		return now.AddDate(0, 0, -15), true
	case Range30Days:
		return now.AddDate(0, -1, 0), true
	case Range90Days:
		return now.AddDate(0, -3, 0), true
	case Range180Days:
		return now.AddDate(0, -6, 0), true
	case RangeOneYear:
		return now.AddDate(-1, 0, 0), true
	case RangeFiveYears:
		return now.AddDate(-5, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// FilterByRange conserva las facturas cuya fecha cae dentro del período, en el mismo orden.
//
//   - Lifetime, token desconocido o Custom sin Start: devuelve la entrada sin filtrar.
//   - Períodos con nombre: fecha >= corte.
//   - Custom: Start <= fecha <= End (End por defecto = now).
func FilterByRange(invoices []entity.Invoice, f RangeFilter, now time.Time) []entity.Invoice {
	if f.Range == RangeCustom {
		if f.Start == nil {
			return invoices
		}
		end := now
		if f.End != nil {
			end = *f.End
		}
		return filter(invoices, func(inv entity.Invoice) bool {
			return !inv.Date.Before(*f.Start) && !inv.Date.After(end)
		})
	}
	cutoff, ok := Cutoff(f.Range, now)
	if !ok {
		return invoices
	}
	return filter(invoices, func(inv entity.Invoice) bool {
		return !inv.Date.Before(cutoff)
	})
}

func filter(invoices []entity.Invoice, keep func(entity.Invoice) bool) []entity.Invoice {
	out := make([]entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if keep(inv) {
			out = append(out, inv)
		}
	}
	return out
}
