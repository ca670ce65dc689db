package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
)

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Catálogo de productos",
	}
	cmd.AddCommand(newProductsImportCmd(a))
	return cmd
}

func newProductsImportCmd(a *app) *cobra.Command {
	var charset string
	cmd := &cobra.Command{
		Use:   "import <archivo.csv>",
		Short: "Importa productos desde un CSV name,price,stock",
		Long: `Importa productos desde un CSV con columnas name,price,stock. Una primera
fila con "name" se toma como cabecera. Un producto cuyo nombre ya existe
(sin distinguir mayúsculas) se actualiza en lugar de duplicarse.`,
		Example: "  warrickctl products import catalogo.csv --charset latin1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("abrir CSV: %w", err)
			}
			defer f.Close()

			r, err := decodeCharset(f, charset)
			if err != nil {
				return err
			}
			rows, err := parseProductsCSV(r)
			if err != nil {
				return err
			}
			created, updated, err := a.svc.Products.Import(cmd.Context(), rows)
			fmt.Fprintf(cmd.OutOrStdout(), "Importados: %d nuevos, %d actualizados\n", created, updated)
			return err
		},
	}
	cmd.Flags().StringVar(&charset, "charset", "utf-8", "codificación del archivo: utf-8, latin1 o windows-1252")
	return cmd
}

// decodeCharset envuelve r para leer en UTF-8.
func decodeCharset(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %q", charset)
	}
}

// parseProductsCSV lee filas name,price,stock. Precio y stock vacíos valen cero.
func parseProductsCSV(r io.Reader) ([]dto.ProductRequest, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []dto.ProductRequest
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV línea %d: %w", line, err)
		}
		if line == 1 && len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "name") {
			continue
		}
		if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		row := dto.ProductRequest{Name: strings.TrimSpace(rec[0])}
		if row.Price, err = field(rec, 1); err != nil {
			return nil, fmt.Errorf("CSV línea %d: price: %w", line, err)
		}
		if row.Stock, err = field(rec, 2); err != nil {
			return nil, fmt.Errorf("CSV línea %d: stock: %w", line, err)
		}
		out = append(out, row)
	}
	return out, nil
}

func field(rec []string, i int) (decimal.Decimal, error) {
	if i >= len(rec) || strings.TrimSpace(rec[i]) == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.TrimSpace(rec[i]))
}
