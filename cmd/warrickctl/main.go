// warrickctl consulta y exporta datos del almacén configurado (mismas variables de
// entorno que el servidor).
//
// Uso:
//
//	warrickctl settlement --range 30D --pdf liquidacion.pdf
//	warrickctl invoices -q rahim
//	warrickctl products import catalogo.csv --charset latin1
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
