package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout formato de fecha de factura en los blobs persistidos.
const DateLayout = "2006-01-02"

// CalendarDate fecha de factura. Se serializa como "YYYY-MM-DD" y se interpreta en UTC
// a medianoche; también acepta RFC3339 de blobs más recientes.
type CalendarDate struct {
	time.Time
}

// NewCalendarDate trunca t a la medianoche UTC de su día calendario.
func NewCalendarDate(t time.Time) CalendarDate {
	return CalendarDate{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseCalendarDate interpreta "YYYY-MM-DD" o RFC3339.
func ParseCalendarDate(s string) (CalendarDate, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, time.UTC); err == nil {
		return CalendarDate{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return CalendarDate{Time: t.UTC()}, nil
}

// String devuelve la fecha en formato "YYYY-MM-DD".
func (d CalendarDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON implementa json.Marshaler.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implementa json.Unmarshaler. Cadena vacía o null → fecha cero.
func (d *CalendarDate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = CalendarDate{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = CalendarDate{}
		return nil
	}
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
