package billing

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/domain"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/identity"
	"github.com/jhoicas/Warrick-api/internal/domain/repository"
	"github.com/jhoicas/Warrick-api/internal/domain/settlement"
	"github.com/jhoicas/Warrick-api/pkg/logger"
)

// DuplicatePhoneMessage mensaje mostrado cuando el teléfono ya pertenece a otro cliente.
const DuplicatePhoneMessage = "Already Have Account"

// CustomerUseCase casos de uso para clientes (facturación).
type CustomerUseCase struct {
	repo repository.CustomerRepository
	log  *logger.Logger
	now  func() time.Time
	// writeMu serializa control de teléfono + escritura: el teléfono es la clave de deduplicación.
	writeMu sync.Mutex
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, log *logger.Logger) *CustomerUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CustomerUseCase{repo: repo, log: log, now: time.Now}
}

// Create crea un nuevo cliente. Nombre y teléfono son obligatorios; un teléfono ya
// registrado (normalizado) devuelve ErrDuplicate.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	in = trimCustomer(in)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()
	existing, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if _, dup := identity.FindByPhone(existing, in.Phone, ""); dup {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicate, DuplicatePhoneMessage)
	}
	customer := entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Address:   in.Address,
		Email:     in.Email,
		CreatedAt: uc.now().UTC(),
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	out := dto.NewCustomerResponse(customer)
	return &out, nil
}

// Update edita un cliente conservando su fecha de alta. El control de duplicados
// excluye al propio registro.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	in = trimCustomer(in)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if _, dup := identity.FindByPhone(all, in.Phone, id); dup {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicate, DuplicatePhoneMessage)
	}
	updated := entity.Customer{
		ID:        id,
		Name:      in.Name,
		Phone:     in.Phone,
		Address:   in.Address,
		Email:     in.Email,
		CreatedAt: current.CreatedAt,
	}
	if updated.CreatedAt.IsZero() {
		updated.CreatedAt = uc.now().UTC()
	}
	if err := uc.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	out := dto.NewCustomerResponse(updated)
	return &out, nil
}

// Delete elimina un cliente. Sin confirmación explícita no se toca el almacén.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationRequired
	}
	return uc.repo.Delete(ctx, id)
}

// Get obtiene un cliente por ID.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// List lista clientes aplicando la búsqueda global (nombre o teléfono).
func (uc *CustomerUseCase) List(ctx context.Context, query string) ([]dto.CustomerResponse, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	found := settlement.SearchCustomers(all, query)
	out := make([]dto.CustomerResponse, 0, len(found))
	for _, c := range found {
		out = append(out, dto.NewCustomerResponse(c))
	}
	return out, nil
}

// Count cantidad total de clientes.
func (uc *CustomerUseCase) Count(ctx context.Context) (int, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

// ResolveOrCreate es el único punto donde guardar una factura da de alta un cliente:
// si ningún cliente tiene ese teléfono (normalizado) se crea uno con nombre, teléfono
// y dirección. created indica si hubo alta. El cliente existente no se modifica.
func (uc *CustomerUseCase) ResolveOrCreate(ctx context.Context, name, address, phone string) (entity.Customer, bool, error) {
	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()
	all, err := uc.repo.List(ctx)
	if err != nil {
		return entity.Customer{}, false, err
	}
	if c, ok := identity.FindByPhone(all, phone, ""); ok {
		return c, false, nil
	}
	customer := entity.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     phone,
		Address:   address,
		CreatedAt: uc.now().UTC(),
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return entity.Customer{}, false, err
	}
	uc.log.Info().Str("customer_id", customer.ID).Msg("cliente creado desde factura")
	return customer, true, nil
}

func trimCustomer(in dto.CustomerRequest) dto.CustomerRequest {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.Email = strings.TrimSpace(in.Email)
	return in
}

// WithClock reemplaza el reloj (tests).
func (uc *CustomerUseCase) WithClock(now func() time.Time) *CustomerUseCase {
	uc.now = now
	return uc
}
