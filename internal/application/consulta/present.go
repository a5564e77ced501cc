// Package consulta presenta las filas del catálogo (información clave, precios, stock) y
// orquesta la búsqueda de referencias.
package consulta

import (
	"github.com/josemfca/referencias-raf/internal/domain/almacen"
	"github.com/josemfca/referencias-raf/internal/domain/catalogo"
)

// NoDisponible marca un valor ausente o nulo.
const NoDisponible = "N/A"

// Celda es un valor ya formateado con su estilo opcional.
type Celda struct {
	Valor  string `json:"valor"`
	Estilo string `json:"estilo,omitempty"`
	Color  string `json:"color,omitempty"`
}

// Resaltada indica si la celda lleva color.
func (c Celda) Resaltada() bool { return c.Color != "" }

func celdaColor(valor, color string) Celda {
	if color == "" {
		return Celda{Valor: valor}
	}
	return Celda{Valor: valor, Color: color, Estilo: "background-color: " + color + "; color: white;"}
}

// KeyInfo datos identificativos del artículo.
type KeyInfo struct {
	Familia     string `json:"familia"`
	Articulo    string `json:"articulo"`
	Sinonimo    string `json:"sinonimo"`
	Descripcion string `json:"descripcion"`
	Peso        string `json:"peso"`
}

// CampoPrecio es una columna de la tabla de precios.
type CampoPrecio struct {
	Nombre string `json:"nombre"`
	Celda
}

// PricingView tabla de precios y descuentos.
type PricingView struct {
	Campos []CampoPrecio `json:"campos"`
}

// Resaltados devuelve los nombres de los campos resaltados por coincidir con NETO.
func (p PricingView) Resaltados() []string {
	var out []string
	for _, c := range p.Campos {
		if c.Resaltada() {
			out = append(out, c.Nombre)
		}
	}
	return out
}

// LineaStock stock y picking de un almacén.
type LineaStock struct {
	Codigo  string `json:"codigo"`
	Almacen string `json:"almacen"`
	Stock   Celda  `json:"stock"`
	Picking Celda  `json:"picking"`
}

// StockPickingView tabla de stock y picking, una línea por almacén en orden fijo.
type StockPickingView struct {
	Lineas []LineaStock `json:"lineas"`
}

// Ficha agrupa las tres vistas de una fila.
type Ficha struct {
	InfoClave KeyInfo          `json:"info_clave"`
	Precios   PricingView      `json:"precios"`
	Stock     StockPickingView `json:"stock"`
}

// camposPrecio en el orden de presentación.
var camposPrecio = []string{
	"PRECIO", "DTO", "NETO", "OFERTA", "DTO_OFERTA", "OFERTA_CANA", "DTO_CANA", "TARIF_PORTU", "NETO10PORTU",
}

// CamposPrecio devuelve los nombres de la tabla de precios.
func CamposPrecio() []string {
	return append([]string(nil), camposPrecio...)
}

// Present construye las vistas de una fila. No modifica el catálogo.
func Present(row catalogo.Row) Ficha {
	return Ficha{
		InfoClave: presentKeyInfo(row),
		Precios:   presentPricing(row),
		Stock:     presentStock(row),
	}
}

func presentKeyInfo(row catalogo.Row) KeyInfo {
	return KeyInfo{
		Familia:     row.Value("CODIGO_FAMILIA").String(),
		Articulo:    row.Value(catalogo.ColCodigoArticulo).String(),
		Sinonimo:    row.Value(catalogo.ColCodigoSinonimo).String(),
		Descripcion: row.Value("DESCRIP_COMERCIAL").String(),
		Peso:        row.Value("PESO_NETO").String(),
	}
}

// presentPricing resalta todo campo cuyo valor numérico sea igual al de NETO. Un NETO nulo no
// resalta nada.
func presentPricing(row catalogo.Row) PricingView {
	neto, hayNeto := row.Value("NETO").AsDecimal()

	view := PricingView{Campos: make([]CampoPrecio, 0, len(camposPrecio))}
	for _, nombre := range camposPrecio {
		v := row.Value(nombre)
		d, ok := v.AsDecimal()

		var c Celda
		switch {
		case ok && hayNeto && d.Equal(neto):
			c = celdaColor(d.StringFixed(2), almacen.ColorMejorPrecio)
		case ok:
			c = Celda{Valor: d.StringFixed(2)}
		case v.IsNull():
			c = Celda{Valor: NoDisponible}
		default:
			c = Celda{Valor: v.String()}
		}
		view.Campos = append(view.Campos, CampoPrecio{Nombre: nombre, Celda: c})
	}
	return view
}

func presentStock(row catalogo.Row) StockPickingView {
	almacenes := almacen.Todos()
	view := StockPickingView{Lineas: make([]LineaStock, 0, len(almacenes))}
	for _, a := range almacenes {
		view.Lineas = append(view.Lineas, LineaStock{
			Codigo:  a.Codigo,
			Almacen: a.Nombre,
			Stock:   stockCelda(row, "STOC_"+a.Codigo),
			Picking: stockCelda(row, "PIKG_"+a.Codigo),
		})
	}
	return view
}

// stockCelda formatea el valor sin decimales. El tinte se busca con el valor tipado de la celda
// (ver almacen.ColorPorValor): solo una celda de texto puede coincidir con un código, así que
// los enteros de stock y picking nunca se tiñen.
func stockCelda(row catalogo.Row, col string) Celda {
	v, ok := row.Get(col)
	if !ok {
		return Celda{Valor: NoDisponible}
	}
	var color string
	if v.Kind() == catalogo.KindText {
		color, _ = almacen.ColorPorValor(v.String())
	}
	return celdaColor(formatEntero(v), color)
}

func formatEntero(v catalogo.Value) string {
	if _, ok := v.AsInteger(); ok {
		return v.String()
	}
	if d, ok := v.AsDecimal(); ok {
		return d.StringFixed(0)
	}
	if v.IsNull() {
		return NoDisponible
	}
	return v.String()
}
