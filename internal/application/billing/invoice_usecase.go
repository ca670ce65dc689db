package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/domain"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/repository"
	"github.com/jhoicas/Warrick-api/internal/domain/settlement"
	"github.com/jhoicas/Warrick-api/pkg/logger"
)

// InvoiceUseCase alta, edición, borrado y borrador de facturas.
type InvoiceUseCase struct {
	invoices  repository.InvoiceRepository
	drafts    repository.DraftRepository
	sequence  repository.SequenceRepository
	business  repository.BusinessRepository
	products  repository.ProductRepository
	customers CustomerDirectory
	log       *logger.Logger
	now       func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoices repository.InvoiceRepository,
	drafts repository.DraftRepository,
	sequence repository.SequenceRepository,
	business repository.BusinessRepository,
	products repository.ProductRepository,
	customers CustomerDirectory,
	log *logger.Logger,
) *InvoiceUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &InvoiceUseCase{
		invoices:  invoices,
		drafts:    drafts,
		sequence:  sequence,
		business:  business,
		products:  products,
		customers: customers,
		log:       log,
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *InvoiceUseCase) WithClock(now func() time.Time) *InvoiceUseCase {
	uc.now = now
	return uc
}

// Create guarda una factura nueva:
//  1. nombre del cliente y móvil (notes) obligatorios; si faltan no se escribe nada
//  2. completa precios desde el catálogo y asigna el siguiente consecutivo
//  3. inserta la factura al inicio y descarta el borrador
//  4. ya guardada la factura, resuelve o da de alta el cliente por teléfono
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	in = trimInvoice(in)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	inv, err := uc.build(ctx, in)
	if err != nil {
		return nil, err
	}

	biz, err := uc.business.Get(ctx)
	if err != nil {
		return nil, err
	}
	inv.Business = biz
	inv.ID = uuid.New().String()

	n, err := uc.sequence.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("consecutivo: %w", err)
	}
	inv.InvoiceNumber = entity.FormatInvoiceNumber(n)

	if err := uc.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	if err := uc.drafts.Clear(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo descartar el borrador")
	}
	uc.resolveCustomer(ctx, inv)
	uc.log.Info().Str("invoice_id", inv.ID).Str("number", inv.InvoiceNumber).Msg("factura creada")

	out := dto.NewInvoiceResponse(inv)
	return &out, nil
}

// Update reemplaza la factura conservando su número y la copia del negocio.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	in = trimInvoice(in)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	current, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	inv, err := uc.build(ctx, in)
	if err != nil {
		return nil, err
	}
	inv.ID = current.ID
	inv.InvoiceNumber = current.InvoiceNumber
	inv.Business = current.Business
	if in.Date == "" {
		inv.Date = current.Date
	}
	if err := uc.invoices.Update(ctx, inv); err != nil {
		return nil, err
	}
	uc.resolveCustomer(ctx, inv)
	out := dto.NewInvoiceResponse(inv)
	return &out, nil
}

// resolveCustomer da de alta el cliente de una factura ya persistida. Un fallo aquí no
// revierte la factura: se registra y el cliente se creará al volver a guardarla.
func (uc *InvoiceUseCase) resolveCustomer(ctx context.Context, inv entity.Invoice) {
	if _, _, err := uc.customers.ResolveOrCreate(ctx, inv.Customer.Name, inv.Customer.Address, inv.Notes); err != nil {
		uc.log.Error().Err(err).Str("invoice_id", inv.ID).Msg("no se pudo resolver el cliente de la factura")
	}
}

// SetStatus cambia solo el estado (ej: marcar como Paid).
func (uc *InvoiceUseCase) SetStatus(ctx context.Context, id, status string) (*dto.InvoiceResponse, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, fmt.Errorf("%w: status es obligatorio", domain.ErrInvalidInput)
	}
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	inv.Status = status
	if err := uc.invoices.Update(ctx, *inv); err != nil {
		return nil, err
	}
	out := dto.NewInvoiceResponse(*inv)
	return &out, nil
}

// Delete elimina una factura. Sin confirmación explícita no se toca el almacén.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationRequired
	}
	return uc.invoices.Delete(ctx, id)
}

// Get obtiene una factura por ID.
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// List lista facturas (más recientes primero) aplicando la búsqueda global.
func (uc *InvoiceUseCase) List(ctx context.Context, query string) ([]dto.InvoiceResponse, error) {
	all, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponses(settlement.SearchInvoices(all, query)), nil
}

// GetDraft devuelve el borrador guardado o uno nuevo con valores por defecto y el
// número que recibiría la próxima factura.
func (uc *InvoiceUseCase) GetDraft(ctx context.Context) (*dto.InvoiceResponse, error) {
	draft, err := uc.drafts.Get(ctx)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		d, err := uc.defaultDraft(ctx)
		if err != nil {
			return nil, err
		}
		draft = &d
	}
	out := dto.NewInvoiceResponse(*draft)
	return &out, nil
}

// SaveDraft guarda el formulario en curso sin validar campos obligatorios.
func (uc *InvoiceUseCase) SaveDraft(ctx context.Context, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	in = trimInvoice(in)
	inv, err := uc.build(ctx, in)
	if err != nil {
		return nil, err
	}
	def, err := uc.defaultDraft(ctx)
	if err != nil {
		return nil, err
	}
	if existing, err := uc.drafts.Get(ctx); err == nil && existing != nil && existing.ID != "" {
		def.ID = existing.ID
	}
	inv.ID = def.ID
	inv.InvoiceNumber = def.InvoiceNumber
	inv.Business = def.Business
	if err := uc.drafts.Save(ctx, inv); err != nil {
		return nil, err
	}
	out := dto.NewInvoiceResponse(inv)
	return &out, nil
}

// DiscardDraft descarta el borrador.
func (uc *InvoiceUseCase) DiscardDraft(ctx context.Context) error {
	return uc.drafts.Clear(ctx)
}

// defaultDraft factura vacía: hoy, BDT, impuesto 0, Draft y una línea (1 × 0).
func (uc *InvoiceUseCase) defaultDraft(ctx context.Context) (entity.Invoice, error) {
	current, err := uc.sequence.Current(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}
	biz, err := uc.business.Get(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}
	return entity.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: entity.FormatInvoiceNumber(current + 1),
		Date:          entity.NewCalendarDate(uc.now()),
		Business:      biz,
		Items: []entity.LineItem{{
			ID:       uuid.New().String(),
			Quantity: decimal.NewFromInt(1),
			Price:    decimal.Zero,
		}},
		Currency: entity.DefaultCurrency,
		TaxRate:  decimal.Zero,
		Status:   entity.InvoiceStatusDraft,
	}, nil
}

// build arma la entidad a partir del request: fecha (hoy si falta), moneda y estado
// por defecto, IDs de línea y precios de catálogo para líneas con precio cero.
func (uc *InvoiceUseCase) build(ctx context.Context, in dto.InvoiceRequest) (entity.Invoice, error) {
	date := entity.NewCalendarDate(uc.now())
	if in.Date != "" {
		d, err := entity.ParseCalendarDate(in.Date)
		if err != nil {
			return entity.Invoice{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		date = d
	}
	currency := strings.ToUpper(in.Currency)
	if currency == "" {
		currency = entity.DefaultCurrency
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusDraft
	}

	catalog, err := uc.products.List(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}
	items := make([]entity.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		item := entity.LineItem{
			ID:       it.ID,
			Name:     strings.TrimSpace(it.Name),
			Quantity: it.Quantity,
			Price:    it.Price,
		}
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		if item.Price.IsZero() {
			if p, ok := settlement.FindProductByName(catalog, item.Name); ok {
				item.Price = p.Price
			}
		}
		items = append(items, item)
	}

	return entity.Invoice{
		Date: date,
		Customer: entity.CustomerSnapshot{
			Name:    in.Customer.Name,
			Email:   in.Customer.Email,
			Address: in.Customer.Address,
		},
		Items:    items,
		Currency: currency,
		TaxRate:  in.TaxRate,
		Status:   status,
		Notes:    in.Notes,
	}, nil
}

func trimInvoice(in dto.InvoiceRequest) dto.InvoiceRequest {
	in.Date = strings.TrimSpace(in.Date)
	in.Customer.Name = strings.TrimSpace(in.Customer.Name)
	in.Customer.Email = strings.TrimSpace(in.Customer.Email)
	in.Customer.Address = strings.TrimSpace(in.Customer.Address)
	in.Notes = strings.TrimSpace(in.Notes)
	in.Currency = strings.TrimSpace(in.Currency)
	in.Status = strings.TrimSpace(in.Status)
	return in
}
