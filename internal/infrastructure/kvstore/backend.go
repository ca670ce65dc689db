// Package kvstore implementa el almacén de registros: cada colección se guarda como un
// blob JSON bajo una clave fija, se carga una vez al iniciar y se reescribe completa
// en cada mutación. El medio físico lo aporta un Backend (memoria, PostgreSQL, Redis).
package kvstore

import (
	"context"
	"sync"
)

// Claves fijas de los blobs persistidos.
const (
	KeyInvoices       = "warrick_invoices"
	KeyCustomers      = "warrick_customers"
	KeyProducts       = "warrick_products"
	KeyUsers          = "warrick_app_users"
	KeyBusiness       = "warrick_business"
	KeyInvoiceCounter = "warrick_invoice_counter"
	KeyDarkMode       = "warrick_dark_mode"
	KeyDraft          = "warrick_temp_draft"
)

// Backend almacén clave-valor de cadenas.
type Backend interface {
	// Get devuelve el valor y found=false si la clave no existe.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var _ Backend = (*MemoryBackend)(nil)

// MemoryBackend Backend en memoria del proceso (tests y driver "memory").
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryBackend crea un backend vacío.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

// Get implementa Backend.
func (b *MemoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.data[key]
	return v, ok, nil
}

// Set implementa Backend.
func (b *MemoryBackend) Set(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = value
	return nil
}

// Delete implementa Backend.
func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
	return nil
}
