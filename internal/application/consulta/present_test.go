package consulta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josemfca/referencias-raf/internal/application/consulta"
	"github.com/josemfca/referencias-raf/internal/domain/almacen"
	"github.com/josemfca/referencias-raf/internal/domain/catalogo"
)

func catalogoDe(columns []string, rows ...[]string) *catalogo.Catalog {
	raw := catalogo.RawTable{Columns: columns}
	for _, r := range rows {
		cells := make([]catalogo.Value, len(r))
		for i, s := range r {
			cells[i] = catalogo.Text(s)
		}
		raw.Rows = append(raw.Rows, cells)
	}
	return catalogo.Normalize(raw)
}

func campo(t *testing.T, view consulta.PricingView, nombre string) consulta.CampoPrecio {
	t.Helper()
	for _, c := range view.Campos {
		if c.Nombre == nombre {
			return c
		}
	}
	require.Failf(t, "campo inexistente", "%s", nombre)
	return consulta.CampoPrecio{}
}

func TestPresent_ResaltaPreciosIgualesANeto(t *testing.T) {
	cat := catalogoDe(
		[]string{"CODIGO_ARTICULO", "PRECIO", "NETO", "OFERTA"},
		[]string{"A1", "10", "10.00", "9.00"},
	)

	view := consulta.Present(cat.Row(0)).Precios

	assert.Equal(t, []string{"PRECIO", "NETO"}, view.Resaltados())
	precio := campo(t, view, "PRECIO")
	assert.Equal(t, "10.00", precio.Valor)
	assert.Equal(t, almacen.ColorMejorPrecio, precio.Color)
	assert.Equal(t, "background-color: #556B2F; color: white;", precio.Estilo)
	assert.False(t, campo(t, view, "OFERTA").Resaltada())
}

func TestPresent_PreciosConDosDecimales(t *testing.T) {
	cat := catalogoDe(
		[]string{"PRECIO", "DTO", "NETO", "OFERTA", "DTO_CANA"},
		[]string{"12.345", "5", "", "abc", "s/d"},
	)

	view := consulta.Present(cat.Row(0)).Precios

	require.Len(t, view.Campos, 9)
	assert.Equal(t, consulta.CamposPrecio(), nombres(view))
	assert.Equal(t, "12.35", campo(t, view, "PRECIO").Valor)
	assert.Equal(t, "5.00", campo(t, view, "DTO").Valor)
	assert.Equal(t, consulta.NoDisponible, campo(t, view, "NETO").Valor)
	assert.Equal(t, consulta.NoDisponible, campo(t, view, "OFERTA").Valor, "precio no numérico queda nulo")
	assert.Equal(t, "s/d", campo(t, view, "DTO_CANA").Valor, "columna sin rol se muestra tal cual")
	assert.Equal(t, consulta.NoDisponible, campo(t, view, "TARIF_PORTU").Valor, "columna ausente")
	assert.Empty(t, view.Resaltados(), "NETO nulo no resalta nada")
}

func nombres(view consulta.PricingView) []string {
	out := make([]string, 0, len(view.Campos))
	for _, c := range view.Campos {
		out = append(out, c.Nombre)
	}
	return out
}

func TestPresent_StockYPicking(t *testing.T) {
	cat := catalogoDe(
		[]string{"CODIGO_ARTICULO", "STOC_01", "PIKG_01", "STOC_10", "PIKG_051"},
		[]string{"A1", "7.8", "", "10", "x"},
	)

	view := consulta.Present(cat.Row(0)).Stock
	require.Len(t, view.Lineas, 15)

	todos := almacen.Todos()
	for i, l := range view.Lineas {
		assert.Equal(t, todos[i].Codigo, l.Codigo)
		assert.Equal(t, todos[i].Nombre, l.Almacen)
	}

	ponfe := view.Lineas[0]
	assert.Equal(t, "7", ponfe.Stock.Valor)
	assert.Equal(t, "0", ponfe.Picking.Valor)
	assert.False(t, ponfe.Stock.Resaltada())

	leon := view.Lineas[1]
	assert.Equal(t, consulta.NoDisponible, leon.Stock.Valor)
	assert.Equal(t, consulta.NoDisponible, leon.Picking.Valor)
	assert.False(t, leon.Stock.Resaltada())

	assert.Equal(t, "0", view.Lineas[5].Picking.Valor, "PIKG_051 no numérico pasa a 0")

	euska := view.Lineas[12]
	require.Equal(t, "10", euska.Codigo)
	assert.Equal(t, "10", euska.Stock.Valor)
	// un entero nunca coincide con la clave de texto "10"
	assert.False(t, euska.Stock.Resaltada())
	assert.Empty(t, euska.Stock.Estilo)
	assert.Equal(t, consulta.NoDisponible, euska.Picking.Valor)
}

func TestPresent_InfoClave(t *testing.T) {
	cat := catalogoDe(
		[]string{"CODIGO_FAMILIA", "CODIGO_ARTICULO", "CODIGO_SINONIMO", "DESCRIP_COMERCIAL", "PESO_NETO"},
		[]string{"F01", "A1", "8412345678901", "Tornillo 4x40", "0.125"},
	)

	info := consulta.Present(cat.Row(0)).InfoClave
	assert.Equal(t, consulta.KeyInfo{
		Familia:     "F01",
		Articulo:    "A1",
		Sinonimo:    "8412345678901",
		Descripcion: "Tornillo 4x40",
		Peso:        "0.13",
	}, info, "PESO_NETO contiene NETO y se redondea como precio")
}

func TestPresent_NoModificaElCatalogo(t *testing.T) {
	cat := catalogoDe([]string{"PRECIO", "NETO", "STOC_01"}, []string{"1.005", "1.01", "3"})
	antes := catalogo.Normalize(cat.Raw())

	_ = consulta.Present(cat.Row(0))
	assert.True(t, antes.Equal(cat))
}

func TestPresent_StockEnteroIgualACodigoNoSeTine(t *testing.T) {
	cat := catalogoDe(
		[]string{"STOC_02", "PIKG_02", "STOC_10", "PIKG_30"},
		[]string{"20", "30", "10", "30"},
	)

	for _, l := range consulta.Present(cat.Row(0)).Stock.Lineas {
		assert.False(t, l.Stock.Resaltada(), "stock de %s", l.Almacen)
		assert.False(t, l.Picking.Resaltada(), "picking de %s", l.Almacen)
	}
	leon := consulta.Present(cat.Row(0)).Stock.Lineas[1]
	assert.Equal(t, "20", leon.Stock.Valor)
	assert.Equal(t, "30", leon.Picking.Valor)
}
