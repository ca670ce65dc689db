package kvstore

import (
	"context"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/pkg/logger"
)

// Store estado completo de la aplicación: un repositorio por colección, todos sobre el mismo Backend.
type Store struct {
	Invoices    *InvoiceRepo
	Customers   *CustomerRepo
	Products    *ProductRepo
	Users       *UserRepo
	Business    *BusinessRepo
	Preferences *PreferencesRepo
	Sequence    *SequenceRepo
	Drafts      *DraftRepo
}

// Open carga todas las colecciones desde el backend (una única lectura por clave).
// seedUsers se usa como valor inicial de warrick_app_users cuando la clave falta o está corrupta.
func Open(ctx context.Context, backend Backend, seedUsers []entity.User, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("kvstore")

	invoices := NewCollection[entity.Invoice](backend, KeyInvoices, log)
	if _, err := invoices.Load(ctx, nil); err != nil {
		return nil, err
	}
	customers := NewCollection[entity.Customer](backend, KeyCustomers, log)
	if _, err := customers.Load(ctx, nil); err != nil {
		return nil, err
	}
	products := NewCollection[entity.Product](backend, KeyProducts, log)
	if _, err := products.Load(ctx, nil); err != nil {
		return nil, err
	}
	users := NewCollection[entity.User](backend, KeyUsers, log)
	seeded, err := users.Load(ctx, seedUsers)
	if err != nil {
		return nil, err
	}
	if seeded {
		log.Info().Int("users", len(seedUsers)).Msg("usuarios iniciales sembrados")
	}

	business := NewDocument[entity.BusinessInfo](backend, KeyBusiness, log)
	if err := business.Load(ctx, entity.DefaultBusiness()); err != nil {
		return nil, err
	}
	draft := NewDocument[entity.Invoice](backend, KeyDraft, log)
	if err := draft.Load(ctx, entity.Invoice{}); err != nil {
		return nil, err
	}
	prefs, err := NewPreferencesRepository(ctx, backend)
	if err != nil {
		return nil, err
	}
	seq, err := NewSequenceRepository(ctx, backend, log)
	if err != nil {
		return nil, err
	}

	return &Store{
		Invoices:    NewInvoiceRepository(invoices),
		Customers:   NewCustomerRepository(customers),
		Products:    NewProductRepository(products),
		Users:       NewUserRepository(users),
		Business:    NewBusinessRepository(business),
		Preferences: prefs,
		Sequence:    seq,
		Drafts:      NewDraftRepository(draft),
	}, nil
}
