// Package pdf genera la ficha de artículo en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Descripción + Artículo │ Fecha de consulta         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INFO CLAVE: Familia / Artículo / Sinónimo / Peso           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRECIOS: 9 campos, los iguales al NETO resaltados          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STOCK: Almacén | Stock | Picking (celdas teñidas)          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: código de barras del artículo                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/josemfca/referencias-raf/internal/application/consulta"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 0, Blue: 139}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoFichaGenerator genera la ficha de artículo usando Maroto v2.
type MarotoFichaGenerator struct {
	now func() time.Time
}

// NewMarotoFichaGenerator construye el generador.
func NewMarotoFichaGenerator() *MarotoFichaGenerator {
	return &MarotoFichaGenerator{now: time.Now}
}

// GenerateFichaPDF genera el PDF de una ficha y devuelve sus bytes.
func (g *MarotoFichaGenerator) GenerateFichaPDF(_ context.Context, ficha consulta.Ficha) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de artículo "+ficha.InfoClave.Articulo, true).
		WithAuthor("Consulta de Referencias", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(ficha.InfoClave, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(infoClaveRows(ficha.InfoClave)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("PRECIOS Y DESCUENTOS"))
	m.AddRows(preciosRows(ficha.Precios)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("STOCK Y PICKING"))
	m.AddRows(stockHeaderRow())
	m.AddRows(stockRows(ficha.Stock)...)

	if ficha.InfoClave.Articulo != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(barcodeRow(ficha.InfoClave.Articulo))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: descripción + artículo (izq) y fecha de consulta (der).
func headerRow(info consulta.KeyInfo, fecha time.Time) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(nonEmpty(info.Descripcion, "Sin descripción"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Artículo: "+info.Articulo, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("FICHA DE ARTÍCULO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Consulta: "+fecha.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func infoClaveRows(info consulta.KeyInfo) []core.Row {
	campo := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1}),
			text.New(nonEmpty(value, "—"), props.Text{Size: 10, Top: 5}),
		)
	}
	return []core.Row{
		row.New(12).Add(
			campo("FAMILIA", info.Familia),
			campo("ARTÍCULO", info.Articulo),
			campo("SINÓNIMO", info.Sinonimo),
			campo("PESO", info.Peso),
		),
	}
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

// preciosRows: bloques de cinco campos, etiqueta encima del valor.
func preciosRows(view consulta.PricingView) []core.Row {
	var rows []core.Row
	for _, chunk := range chunkCampos(view.Campos, 5) {
		labels := make([]core.Col, 0, len(chunk))
		values := make([]core.Col, 0, len(chunk))
		for _, c := range chunk {
			labels = append(labels, col.New(2).Add(text.New(c.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center, Color: colorGray, Top: 1,
			})))
			values = append(values, cellCol(2, c.Celda))
		}
		rows = append(rows, row.New(6).Add(labels...), row.New(7).Add(values...))
	}
	return rows
}

func stockHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		})).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	}
	return row.New(7).Add(
		h("ALMACÉN", 6, align.Left),
		h("STOCK", 3, align.Center),
		h("PICKING", 3, align.Center),
	)
}

func stockRows(view consulta.StockPickingView) []core.Row {
	out := make([]core.Row, 0, len(view.Lineas))
	for _, l := range view.Lineas {
		out = append(out, row.New(6).Add(
			col.New(6).Add(text.New(l.Almacen, props.Text{Size: 8, Top: 1, Left: 1})),
			cellCol(3, l.Stock),
			cellCol(3, l.Picking),
		))
	}
	return out
}

func barcodeRow(articulo string) core.Row {
	return row.New(20).Add(
		col.New(3),
		col.New(6).Add(code.NewBar(articulo, props.Barcode{Percent: 90, Center: true})),
		col.New(3),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// cellCol pinta la celda con su color de fondo y texto blanco si está resaltada.
func cellCol(size int, c consulta.Celda) core.Col {
	tp := props.Text{Size: 8, Align: align.Center, Top: 1}
	bg, ok := hexColor(c.Color)
	if !ok {
		return col.New(size).Add(text.New(c.Valor, tp))
	}
	tp.Color = colorWhite
	tp.Style = fontstyle.Bold
	return col.New(size).Add(text.New(c.Valor, tp)).WithStyle(&props.Cell{BackgroundColor: bg})
}

// hexColor convierte "#RRGGBB" en props.Color.
func hexColor(hex string) (*props.Color, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return nil, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, false
	}
	return &props.Color{Red: int(n >> 16 & 0xFF), Green: int(n >> 8 & 0xFF), Blue: int(n & 0xFF)}, true
}

func chunkCampos(campos []consulta.CampoPrecio, n int) [][]consulta.CampoPrecio {
	var parts [][]consulta.CampoPrecio
	for len(campos) > n {
		parts = append(parts, campos[:n])
		campos = campos[n:]
	}
	if len(campos) > 0 {
		parts = append(parts, campos)
	}
	return parts
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
