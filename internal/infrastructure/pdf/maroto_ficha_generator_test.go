package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josemfca/referencias-raf/internal/application/consulta"
	"github.com/josemfca/referencias-raf/internal/domain/catalogo"
	"github.com/josemfca/referencias-raf/internal/infrastructure/pdf"
)

func fichaDePrueba() consulta.Ficha {
	raw := catalogo.RawTable{
		Columns: []string{"CODIGO_FAMILIA", "CODIGO_ARTICULO", "DESCRIP_COMERCIAL", "PRECIO", "NETO", "STOC_01", "PIKG_01"},
		Rows: [][]catalogo.Value{{
			catalogo.Text("F1"), catalogo.Text("AB1234"), catalogo.Text("Tornillo 4x40"),
			catalogo.Text("10"), catalogo.Text("10"), catalogo.Text("20"), catalogo.Text("3"),
		}},
	}
	return consulta.Present(catalogo.Normalize(raw).Row(0))
}

func TestGenerateFichaPDF(t *testing.T) {
	doc, err := pdf.NewMarotoFichaGenerator().GenerateFichaPDF(context.Background(), fichaDePrueba())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "debe ser un documento PDF")
}

func TestGenerateFichaPDF_SinArticulo(t *testing.T) {
	ficha := fichaDePrueba()
	ficha.InfoClave.Articulo = ""

	doc, err := pdf.NewMarotoFichaGenerator().GenerateFichaPDF(context.Background(), ficha)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
