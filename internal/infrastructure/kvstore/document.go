package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/Warrick-api/pkg/logger"
)

// Document valor único persistido como objeto JSON (perfil del negocio, borrador).
type Document[T any] struct {
	mu      sync.RWMutex
	backend Backend
	key     string
	value   T
	present bool
	log     *logger.Logger
}

// NewDocument construye el documento; llamar Load antes de usarlo.
func NewDocument[T any](backend Backend, key string, log *logger.Logger) *Document[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Document[T]{backend: backend, key: key, log: log}
}

// Load lee la clave. Ausente o corrupta: se usa def y present=false.
func (d *Document[T]) Load(ctx context.Context, def T) error {
	raw, found, err := d.backend.Get(ctx, d.key)
	if err != nil {
		return fmt.Errorf("kvstore: leer %s: %w", d.key, err)
	}
	value := def
	if found {
		var parsed T
		if jerr := json.Unmarshal([]byte(raw), &parsed); jerr != nil {
			d.log.Warn().Err(jerr).Str("key", d.key).Msg("blob corrupto, se usa el valor por defecto")
			found = false
		} else {
			value = parsed
		}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.value = value
	d.present = found
	return nil
}

// Get devuelve el valor actual y si proviene del almacén.
func (d *Document[T]) Get() (T, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.value, d.present
}

// Set persiste y publica el nuevo valor.
func (d *Document[T]) Set(ctx context.Context, value T) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kvstore: serializar %s: %w", d.key, err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.backend.Set(ctx, d.key, string(b)); err != nil {
		return fmt.Errorf("kvstore: escribir %s: %w", d.key, err)
	}
	d.value = value
	d.present = true
	return nil
}

// Clear elimina la clave y vuelve al valor cero.
func (d *Document[T]) Clear(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.backend.Delete(ctx, d.key); err != nil {
		return fmt.Errorf("kvstore: borrar %s: %w", d.key, err)
	}
	var zero T
	d.value = zero
	d.present = false
	return nil
}
