package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
)

func TestCalendarDate_AceptaFechaSimpleYRFC3339(t *testing.T) {
	var inv struct {
		Date entity.CalendarDate `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-01-05"}`), &inv))
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), inv.Date.Time)

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-01-05T10:30:00+06:00"}`), &inv))
	assert.Equal(t, time.Date(2025, 1, 5, 4, 30, 0, 0, time.UTC), inv.Date.Time)

	require.NoError(t, json.Unmarshal([]byte(`{"date":""}`), &inv))
	assert.True(t, inv.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"ayer"}`), &inv))
}

func TestCalendarDate_SerializaSoloFecha(t *testing.T) {
	d := entity.NewCalendarDate(time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2025-12-31"`, string(b))
}

func TestLineItem_Amount(t *testing.T) {
	li := entity.LineItem{Price: decimalFromString(t, "12.50"), Quantity: decimalFromString(t, "4")}
	assert.Equal(t, "50", li.Amount().String())
}
