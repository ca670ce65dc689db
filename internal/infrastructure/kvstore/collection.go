package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Warrick-api/pkg/logger"
)

// Los blobs guardan importes y cantidades como números JSON, escriba quien escriba
// (API o warrickctl). Afecta también a las respuestas HTTP.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Collection instantánea en memoria de una colección persistida como arreglo JSON.
type Collection[T any] struct {
	mu      sync.RWMutex
	backend Backend
	key     string
	items   []T
	log     *logger.Logger
}

// NewCollection construye la colección; llamar Load antes de usarla.
func NewCollection[T any](backend Backend, key string, log *logger.Logger) *Collection[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Collection[T]{backend: backend, key: key, log: log}
}

// Load lee la clave una sola vez. Si no existe o el JSON está corrupto se usa def
// (sin propagar el error) y se persiste de inmediato. fromDefault indica ese caso.
// Solo los fallos del propio backend se devuelven como error.
func (c *Collection[T]) Load(ctx context.Context, def []T) (fromDefault bool, err error) {
	raw, found, err := c.backend.Get(ctx, c.key)
	if err != nil {
		return false, fmt.Errorf("kvstore: leer %s: %w", c.key, err)
	}

	var items []T
	if found {
		if jerr := json.Unmarshal([]byte(raw), &items); jerr != nil {
			c.log.Warn().Err(jerr).Str("key", c.key).Msg("blob corrupto, se usa el valor por defecto")
			found = false
		}
	}
	if !found {
		items = append([]T(nil), def...)
	}
	if items == nil {
		items = []T{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	if !found {
		if err := c.persistLocked(ctx, items); err != nil {
			return true, err
		}
	}
	return !found, nil
}

// Items devuelve una copia superficial de la instantánea.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Mutate aplica fn sobre una copia, persiste el resultado completo y solo entonces lo
// publica. Si fn o la escritura fallan, la instantánea queda intacta.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	work := make([]T, len(c.items))
	copy(work, c.items)
	next, err := fn(work)
	if err != nil {
		return err
	}
	if next == nil {
		next = []T{}
	}
	if err := c.persistLocked(ctx, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

// Replace sobrescribe la colección completa.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	return c.Mutate(ctx, func([]T) ([]T, error) { return append([]T(nil), items...), nil })
}

func (c *Collection[T]) persistLocked(ctx context.Context, items []T) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("kvstore: serializar %s: %w", c.key, err)
	}
	if err := c.backend.Set(ctx, c.key, string(b)); err != nil {
		return fmt.Errorf("kvstore: escribir %s: %w", c.key, err)
	}
	return nil
}
