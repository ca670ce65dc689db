// Package bootstrap arma el almacén y los casos de uso a partir de la configuración.
// Lo comparten el servidor HTTP y warrickctl.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/Warrick-api/internal/application/auth"
	"github.com/jhoicas/Warrick-api/internal/application/billing"
	"github.com/jhoicas/Warrick-api/internal/application/catalog"
	"github.com/jhoicas/Warrick-api/internal/application/reports"
	"github.com/jhoicas/Warrick-api/internal/application/usecase"
	"github.com/jhoicas/Warrick-api/internal/infrastructure/excel"
	"github.com/jhoicas/Warrick-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/Warrick-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Warrick-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Warrick-api/internal/infrastructure/redisstore"
	"github.com/jhoicas/Warrick-api/internal/infrastructure/ublxml"
	"github.com/jhoicas/Warrick-api/pkg/config"
	"github.com/jhoicas/Warrick-api/pkg/logger"
)

// OpenBackend conecta el backend indicado por STORE_DRIVER. La función devuelta libera la conexión.
func OpenBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (kvstore.Backend, func(), error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		kv := postgres.NewKVBackend(pool)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Str("driver", cfg.Store.Driver).Msg("almacén conectado")
		return kv, pool.Close, nil
	case config.StoreRedis:
		rb, err := redisstore.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a Redis: %w", err)
		}
		log.Info().Str("driver", cfg.Store.Driver).Str("addr", cfg.Redis.Addr).Msg("almacén conectado")
		return rb, func() { _ = rb.Close() }, nil
	default:
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		return kvstore.NewMemoryBackend(), func() {}, nil
	}
}

// OpenStore conecta el backend y carga las colecciones, sembrando el admin si hace falta.
func OpenStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*kvstore.Store, func(), error) {
	backend, closeFn, err := OpenBackend(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	seed, err := auth.SeedUsers(auth.AdminSeed{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
		Mobile:   cfg.Admin.Mobile,
		Email:    cfg.Admin.Email,
	})
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	store, err := kvstore.Open(ctx, backend, seed, log)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return store, closeFn, nil
}

// Services casos de uso listos para los adaptadores (HTTP, CLI).
type Services struct {
	Auth       *auth.AuthUseCase
	Business   *usecase.BusinessUseCase
	Customers  *billing.CustomerUseCase
	Invoices   *billing.InvoiceUseCase
	Share      *billing.ShareUseCase
	Documents  *billing.DocumentUseCase
	Products   *catalog.ProductUseCase
	Settlement *reports.SettlementUseCase
	Dashboard  *reports.DashboardUseCase
}

// NewServices inyecta repositorios y generadores en los casos de uso.
func NewServices(store *kvstore.Store, cfg *config.Config, log *logger.Logger) *Services {
	pdfGen := pdf.NewMarotoPDFGenerator()
	customers := billing.NewCustomerUseCase(store.Customers, log.Component("customers"))
	return &Services{
		Auth: auth.NewAuthUseCase(store.Users, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		}, log.Component("auth")),
		Business:  usecase.NewBusinessUseCase(store.Business, store.Preferences),
		Customers: customers,
		Invoices: billing.NewInvoiceUseCase(
			store.Invoices, store.Drafts, store.Sequence, store.Business, store.Products, customers,
			log.Component("invoices"),
		),
		Share:      billing.NewShareUseCase(store.Invoices),
		Documents:  billing.NewDocumentUseCase(store.Invoices, store.Customers, pdfGen, pdfGen, ublxml.NewEncoder()),
		Products:   catalog.NewProductUseCase(store.Products),
		Settlement: reports.NewSettlementUseCase(store.Invoices, store.Products, store.Business, pdfGen, excel.NewSettlementWorkbook()),
		Dashboard:  reports.NewDashboardUseCase(store.Invoices, store.Customers),
	}
}
