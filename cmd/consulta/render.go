package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/josemfca/referencias-raf/internal/application/consulta"
)

// renderResultado imprime las tres tablas de cada coincidencia. Con color, las celdas resaltadas
// llevan su color de fondo en ANSI truecolor.
func renderResultado(w io.Writer, res consulta.Resultado, color bool) {
	fmt.Fprintf(w, "Referencia: %s\n", res.Referencia)
	if !res.Encontrada() {
		fmt.Fprintln(w, res.Mensaje)
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintln(w, res.Mensaje)
	for _, f := range res.Fichas {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Información clave:")
		writeTable(w, color,
			[]string{"FAMILIA", "ARTICULO", "SINONIMO", "DESCRIPCIÓN", "PESO"},
			[][]consulta.Celda{{
				{Valor: f.InfoClave.Familia},
				{Valor: f.InfoClave.Articulo},
				{Valor: f.InfoClave.Sinonimo},
				{Valor: f.InfoClave.Descripcion},
				{Valor: f.InfoClave.Peso},
			}})

		fmt.Fprintln(w, "Información de precios y descuentos:")
		header := make([]string, 0, len(f.Precios.Campos))
		precios := make([]consulta.Celda, 0, len(f.Precios.Campos))
		for _, c := range f.Precios.Campos {
			header = append(header, c.Nombre)
			precios = append(precios, c.Celda)
		}
		writeTable(w, color, header, [][]consulta.Celda{precios})

		fmt.Fprintln(w, "Información de stock y picking:")
		rows := make([][]consulta.Celda, 0, len(f.Stock.Lineas))
		for _, l := range f.Stock.Lineas {
			rows = append(rows, []consulta.Celda{{Valor: l.Almacen}, l.Stock, l.Picking})
		}
		writeTable(w, color, []string{"ALMACÉN", "STOCK", "PICKING"}, rows)
	}
	fmt.Fprintln(w)
}

// writeTable alinea a mano: los códigos ANSI no ocupan ancho y descuadrarían text/tabwriter.
func writeTable(w io.Writer, color bool, header []string, rows [][]consulta.Celda) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, r := range rows {
		for i, c := range r {
			if n := utf8.RuneCountInString(c.Valor); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	for i, h := range header {
		b.WriteString(pad(h, widths[i]))
		b.WriteString("  ")
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))

	for _, r := range rows {
		b.Reset()
		for i, c := range r {
			cell := pad(c.Valor, widths[i])
			if color && c.Resaltada() {
				cell = ansiBackground(c.Color) + cell + "\x1b[0m"
			}
			b.WriteString(cell)
			b.WriteString("  ")
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
	fmt.Fprintln(w)
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// ansiBackground convierte "#RRGGBB" en fondo truecolor con texto blanco.
func ansiBackground(hex string) string {
	n, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm\x1b[97m", n>>16&0xFF, n>>8&0xFF, n&0xFF)
}
