package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Warrick-api/pkg/money"
)

func newInvoicesCmd(a *app) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:     "invoices",
		Short:   "Lista las facturas (más recientes primero)",
		Example: "  warrickctl invoices -q 01711",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.svc.Invoices.List(cmd.Context(), query)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(w, "Sin facturas")
				return nil
			}
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NÚMERO\tFECHA\tCLIENTE\tMÓVIL\tESTADO\tTOTAL\t")
			for _, inv := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
					inv.InvoiceNumber, inv.Date, inv.Customer.Name, inv.Notes, inv.Status,
					inv.Currency+" "+money.Format(inv.Total))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "búsqueda por número, cliente o móvil")
	return cmd
}
