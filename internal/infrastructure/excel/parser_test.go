package excel_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/josemfca/referencias-raf/internal/domain"
	"github.com/josemfca/referencias-raf/internal/domain/catalogo"
	"github.com/josemfca/referencias-raf/internal/infrastructure/excel"
)

func libroDePrueba(t *testing.T, filas ...[]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, fila := range filas {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &fila))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func celdas(raw catalogo.RawTable, fila int) []string {
	out := make([]string, len(raw.Rows[fila]))
	for i, v := range raw.Rows[fila] {
		out[i] = v.String()
	}
	return out
}

func TestParse_XLSX_CabeceraYValoresEnBruto(t *testing.T) {
	data := libroDePrueba(t,
		[]interface{}{"codigo_articulo", "PRECIO", "STOC_01"},
		[]interface{}{"00123", 12.345, 7},
	)

	raw, err := excel.NewParser(excel.Options{}).Parse(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"codigo_articulo", "PRECIO", "STOC_01"}, raw.Columns)
	require.Len(t, raw.Rows, 1)
	assert.Equal(t, []string{"00123", "12.345", "7"}, celdas(raw, 0))
}

func TestParse_XLSX_ColumnasSinNombreYFilasVacias(t *testing.T) {
	data := libroDePrueba(t,
		[]interface{}{"A", "", "C"},
		[]interface{}{"1", "2", "3", "4"},
		[]interface{}{},
		[]interface{}{"5"},
	)

	raw, err := excel.NewParser(excel.Options{}).Parse(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "Unnamed: 1", "C", "Unnamed: 3"}, raw.Columns)
	require.Len(t, raw.Rows, 2)
	assert.Equal(t, []string{"5", "", "", ""}, celdas(raw, 1))
	assert.True(t, raw.Rows[1][1].IsNull())
}

func TestParse_XLSX_HojaConfigurada(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet("Articulos")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"OTRA"}))
	require.NoError(t, f.SetSheetRow("Articulos", "A1", &[]interface{}{"CODIGO_ARTICULO"}))
	require.NoError(t, f.SetSheetRow("Articulos", "A2", &[]interface{}{"X1"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	raw, err := excel.NewParser(excel.Options{Hoja: "Articulos"}).Parse(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []string{"CODIGO_ARTICULO"}, raw.Columns)

	raw, err = excel.NewParser(excel.Options{}).Parse(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []string{"OTRA"}, raw.Columns, "sin hoja configurada se lee la primera")

	_, err = excel.NewParser(excel.Options{Hoja: "NoExiste"}).Parse(bytes.NewReader(buf.Bytes()))
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestParse_ContenidoInvalido(t *testing.T) {
	_, err := excel.NewParser(excel.Options{}).Parse(strings.NewReader("<html>no es un libro</html>"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestParse_HojaSinFilas(t *testing.T) {
	raw, err := excel.NewParser(excel.Options{}).Parse(bytes.NewReader(libroDePrueba(t)))
	require.NoError(t, err)
	assert.Empty(t, raw.Columns)
	assert.Empty(t, raw.Rows)
}

func TestParse_CSV_Windows1252YPuntoYComa(t *testing.T) {
	// "DESCRIPCIÓN" en windows-1252: Ó = 0xD3
	data := []byte("CODIGO_ARTICULO;DESCRIPCI\xd3N;PRECIO\nA1;Tornillo;1.5\n")

	raw, err := excel.NewParser(excel.Options{Formato: excel.FormatoCSV, Codificacion: "windows-1252"}).
		Parse(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"CODIGO_ARTICULO", "DESCRIPCIÓN", "PRECIO"}, raw.Columns)
	assert.Equal(t, []string{"A1", "Tornillo", "1.5"}, celdas(raw, 0))
}

func TestParse_CSV_UTF8ConBOM(t *testing.T) {
	data := []byte("\xef\xbb\xbfCODIGO_ARTICULO,PRECIO\nA1,2\n")

	raw, err := excel.NewParser(excel.Options{Formato: excel.FormatoCSV}).Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"CODIGO_ARTICULO", "PRECIO"}, raw.Columns)
}

func TestParse_CSV_CodificacionNoSoportada(t *testing.T) {
	_, err := excel.NewParser(excel.Options{Formato: excel.FormatoCSV, Codificacion: "ebcdic"}).
		Parse(strings.NewReader("A\n1\n"))
	assert.Error(t, err)
}

func TestParseFile_DeduceFormatoPorExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "articulos.csv")
	require.NoError(t, os.WriteFile(path, []byte("CODIGO_ARTICULO,STOC_01\nB2,4\n"), 0o600))

	raw, err := excel.NewParser(excel.Options{}).ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"B2", "4"}, celdas(raw, 0))

	_, err = excel.NewParser(excel.Options{}).ParseFile(filepath.Join(dir, "no-existe.xlsx"))
	assert.Error(t, err)
}
