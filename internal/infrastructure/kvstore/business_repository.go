package kvstore

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/repository"
	"github.com/jhoicas/Warrick-api/pkg/logger"
)

var (
	_ repository.BusinessRepository    = (*BusinessRepo)(nil)
	_ repository.PreferencesRepository = (*PreferencesRepo)(nil)
)

// BusinessRepo perfil del negocio sobre warrick_business.
type BusinessRepo struct {
	d *Document[entity.BusinessInfo]
}

// NewBusinessRepository construye el adaptador.
func NewBusinessRepository(d *Document[entity.BusinessInfo]) *BusinessRepo {
	return &BusinessRepo{d: d}
}

// Get devuelve el perfil (el valor por defecto si nunca se guardó).
func (r *BusinessRepo) Get(_ context.Context) (entity.BusinessInfo, error) {
	v, _ := r.d.Get()
	return v, nil
}

// Save sobrescribe el perfil.
func (r *BusinessRepo) Save(ctx context.Context, info entity.BusinessInfo) error {
	return r.d.Set(ctx, info)
}

// PreferencesRepo guarda el modo oscuro como literal "true"/"false" en warrick_dark_mode.
type PreferencesRepo struct {
	mu      sync.RWMutex
	backend Backend
	prefs   entity.Preferences
}

// NewPreferencesRepository lee la preferencia actual. Cualquier valor distinto de "true" es false.
func NewPreferencesRepository(ctx context.Context, backend Backend) (*PreferencesRepo, error) {
	raw, _, err := backend.Get(ctx, KeyDarkMode)
	if err != nil {
		return nil, fmt.Errorf("kvstore: leer %s: %w", KeyDarkMode, err)
	}
	return &PreferencesRepo{backend: backend, prefs: entity.Preferences{DarkMode: raw == "true"}}, nil
}

// Get devuelve las preferencias actuales.
func (r *PreferencesRepo) Get(_ context.Context) (entity.Preferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prefs, nil
}

// Save persiste las preferencias.
func (r *PreferencesRepo) Save(ctx context.Context, prefs entity.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.backend.Set(ctx, KeyDarkMode, strconv.FormatBool(prefs.DarkMode)); err != nil {
		return fmt.Errorf("kvstore: escribir %s: %w", KeyDarkMode, err)
	}
	r.prefs = prefs
	return nil
}

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo contador de facturas guardado como cadena decimal en warrick_invoice_counter.
type SequenceRepo struct {
	mu      sync.Mutex
	backend Backend
	current int
}

// NewSequenceRepository lee el contador. Ausente o no numérico → 0.
func NewSequenceRepository(ctx context.Context, backend Backend, log *logger.Logger) (*SequenceRepo, error) {
	raw, found, err := backend.Get(ctx, KeyInvoiceCounter)
	if err != nil {
		return nil, fmt.Errorf("kvstore: leer %s: %w", KeyInvoiceCounter, err)
	}
	current := 0
	if found {
		n, perr := strconv.Atoi(raw)
		if perr != nil || n < 0 {
			if log != nil {
				log.Warn().Str("key", KeyInvoiceCounter).Str("value", raw).Msg("contador inválido, se reinicia en 0")
			}
		} else {
			current = n
		}
	}
	return &SequenceRepo{backend: backend, current: current}, nil
}

// Current valor actual (último número emitido).
func (r *SequenceRepo) Current(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, nil
}

// Next incrementa y persiste el contador; devuelve el nuevo valor.
func (r *SequenceRepo) Next(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.current + 1
	if err := r.backend.Set(ctx, KeyInvoiceCounter, strconv.Itoa(next)); err != nil {
		return 0, fmt.Errorf("kvstore: escribir %s: %w", KeyInvoiceCounter, err)
	}
	r.current = next
	return next, nil
}

var _ repository.DraftRepository = (*DraftRepo)(nil)

// DraftRepo borrador de factura sobre warrick_temp_draft.
type DraftRepo struct {
	d *Document[entity.Invoice]
}

// NewDraftRepository construye el adaptador.
func NewDraftRepository(d *Document[entity.Invoice]) *DraftRepo {
	return &DraftRepo{d: d}
}

// Get devuelve el borrador guardado o nil.
func (r *DraftRepo) Get(_ context.Context) (*entity.Invoice, error) {
	v, ok := r.d.Get()
	if !ok {
		return nil, nil
	}
	out := v.Clone()
	return &out, nil
}

// Save guarda el borrador.
func (r *DraftRepo) Save(ctx context.Context, draft entity.Invoice) error {
	return r.d.Set(ctx, draft.Clone())
}

// Clear descarta el borrador.
func (r *DraftRepo) Clear(ctx context.Context) error {
	return r.d.Clear(ctx)
}
