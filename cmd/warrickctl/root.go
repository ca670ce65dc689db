package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Warrick-api/internal/bootstrap"
	"github.com/jhoicas/Warrick-api/pkg/config"
	"github.com/jhoicas/Warrick-api/pkg/logger"
)

var version = "1.0.0"

// app estado compartido por los subcomandos. svc se inyecta en tests.
type app struct {
	log     *logger.Logger
	svc     *bootstrap.Services
	closeFn func()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "warrickctl",
		Short: "Herramientas de consola para la facturación Warrick",
		Long: `warrickctl lee el mismo almacén que la API (STORE_DRIVER, DATABASE_URL,
REDIS_ADDR, ...) para imprimir liquidaciones, buscar facturas e importar
el catálogo de productos.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.closeFn != nil {
				a.closeFn()
			}
		},
	}
	root.AddCommand(newSettlementCmd(a), newInvoicesCmd(a), newProductsCmd(a))
	return root
}

// open carga configuración y almacén salvo que ya estén inyectados.
func (a *app) open(cmd *cobra.Command) error {
	if a.svc != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Output: os.Stderr}).Component("warrickctl")
	store, closeFn, err := bootstrap.OpenStore(cmd.Context(), cfg, a.log)
	if err != nil {
		return err
	}
	a.closeFn = closeFn
	a.svc = bootstrap.NewServices(store, cfg, a.log)
	return nil
}
