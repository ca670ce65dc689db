package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/application/reports"
	"github.com/jhoicas/Warrick-api/pkg/money"
)

func newSettlementCmd(a *app) *cobra.Command {
	var (
		q       dto.SettlementQuery
		pdfOut  string
		xlsxOut string
	)
	cmd := &cobra.Command{
		Use:   "settlement",
		Short: "Liquidación del periodo (cobrado, pendiente, bruto y rendimiento por producto)",
		Example: `  warrickctl settlement
  warrickctl settlement --range 7D
  warrickctl settlement --range Custom --start 2026-01-01 --end 2026-01-31 --xlsx enero.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := reports.ParseQuery(q)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			rep, err := a.svc.Settlement.Report(ctx, f)
			if err != nil {
				return err
			}
			printSettlement(cmd.OutOrStdout(), rep)

			if pdfOut != "" {
				body, _, err := a.svc.Settlement.ExportPDF(ctx, f)
				if err != nil {
					return err
				}
				if err := writeFile(cmd.OutOrStdout(), pdfOut, body); err != nil {
					return err
				}
			}
			if xlsxOut != "" {
				body, _, err := a.svc.Settlement.ExportXLSX(ctx, f)
				if err != nil {
					return err
				}
				if err := writeFile(cmd.OutOrStdout(), xlsxOut, body); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&q.Range, "range", "Lifetime", "1h, 24h, 7D, 15D, 1M, 3M, 6M, 1Y, 5Y, Lifetime o Custom")
	cmd.Flags().StringVar(&q.Start, "start", "", "inicio YYYY-MM-DD (Custom)")
	cmd.Flags().StringVar(&q.End, "end", "", "fin YYYY-MM-DD (Custom, por defecto hoy)")
	cmd.Flags().StringVar(&pdfOut, "pdf", "", "ruta donde guardar el informe en PDF")
	cmd.Flags().StringVar(&xlsxOut, "xlsx", "", "ruta donde guardar el informe en Excel")
	return cmd
}

func printSettlement(w io.Writer, rep *dto.SettlementResponse) {
	fmt.Fprintf(w, "Periodo: %s", rep.Range)
	if rep.Start != "" {
		fmt.Fprintf(w, " (%s a %s)", rep.Start, rep.End)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Facturas: %d (pagadas %d, pendientes %d)\n", rep.InvoiceCount, rep.PaidCount, rep.UnpaidCount)
	fmt.Fprintf(w, "Cobrado:   %s\n", money.Format(rep.Received))
	fmt.Fprintf(w, "Pendiente: %s\n", money.Format(rep.Pending))
	fmt.Fprintf(w, "Bruto:     %s\n", money.Format(rep.Gross))
	fmt.Fprintf(w, "Unidades:  %s\n", money.Quantity(rep.UnitsSold))
	if len(rep.Products) == 0 {
		return
	}
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCTO\tPRECIO\tSTOCK\tVENDIDO\t")
	for _, p := range rep.Products {
		stock := money.Quantity(p.Stock)
		if p.LowStock {
			stock += " (bajo)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", p.Name, money.Format(p.Price), stock, money.Quantity(p.SoldInPeriod))
	}
	tw.Flush()
}

func writeFile(w io.Writer, path string, body []byte) error {
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("guardar %s: %w", path, err)
	}
	fmt.Fprintf(w, "Guardado %s (%d bytes)\n", path, len(body))
	return nil
}
