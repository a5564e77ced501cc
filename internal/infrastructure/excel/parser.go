// Package excel convierte la hoja de artículos descargada (xlsx o csv) en un catalogo.RawTable.
package excel

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/josemfca/referencias-raf/internal/domain"
	"github.com/josemfca/referencias-raf/internal/domain/catalogo"
)

// Formatos soportados.
const (
	FormatoXLSX = "xlsx"
	FormatoCSV  = "csv"
)

// Options controla la lectura.
type Options struct {
	Formato      string // xlsx (por defecto) o csv
	Hoja         string // vacío = primera hoja del libro
	Codificacion string // solo csv: utf-8, windows-1252, iso-8859-1
}

// Parser lee hojas de artículos.
type Parser struct {
	opts Options
}

// NewParser construye el parser.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

// ParseFile lee un archivo local. Si no hay formato configurado se deduce de la extensión.
func (p *Parser) ParseFile(path string) (catalogo.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return catalogo.RawTable{}, fmt.Errorf("excel: abrir %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	formato := p.opts.Formato
	if formato == "" && strings.EqualFold(filepath.Ext(path), ".csv") {
		formato = FormatoCSV
	}
	return p.parse(f, formato)
}

// Parse lee la hoja desde r con el formato configurado.
func (p *Parser) Parse(r io.Reader) (catalogo.RawTable, error) {
	return p.parse(r, p.opts.Formato)
}

func (p *Parser) parse(r io.Reader, formato string) (catalogo.RawTable, error) {
	var (
		records [][]string
		err     error
	)
	if formato == FormatoCSV {
		records, err = p.readCSV(r)
	} else {
		records, err = p.readXLSX(r)
	}
	if err != nil {
		return catalogo.RawTable{}, err
	}
	return toRawTable(records), nil
}

func (p *Parser) readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	defer f.Close()

	sheet := p.opts.Hoja
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: el libro no tiene hojas", domain.ErrParse)
		}
		sheet = sheets[0]
	}

	// RawCellValue: sin formato de celda, los números llegan como "12.345" y no "12,35 €"
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: hoja %q: %v", domain.ErrParse, sheet, err)
	}
	return rows, nil
}

func (p *Parser) readCSV(r io.Reader) ([][]string, error) {
	dec, err := csvDecoder(p.opts.Codificacion)
	if err != nil {
		return nil, err
	}
	if dec != nil {
		r = transform.NewReader(r, dec.NewDecoder())
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.Comma = detectSeparator(data)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	return records, nil
}

func csvDecoder(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1, nil
	case "iso-8859-15", "latin9":
		return charmap.ISO8859_15, nil
	default:
		return nil, fmt.Errorf("excel: codificación csv no soportada %q", name)
	}
}

// detectSeparator elige ';' cuando la cabecera lo usa y no contiene comas (exportaciones en español).
func detectSeparator(data []byte) rune {
	header := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		header = data[:i]
	}
	if bytes.Count(header, []byte{';'}) > 0 && bytes.Count(header, []byte{','}) == 0 {
		return ';'
	}
	return ','
}

// toRawTable toma la primera fila como cabecera. Las posiciones sin nombre se llaman
// "Unnamed: <i>" y las filas totalmente vacías se omiten.
func toRawTable(records [][]string) catalogo.RawTable {
	if len(records) == 0 {
		return catalogo.RawTable{}
	}

	width := 0
	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}

	header := records[0]
	columns := make([]string, width)
	for i := range columns {
		if i < len(header) && strings.TrimSpace(header[i]) != "" {
			columns[i] = header[i]
			continue
		}
		columns[i] = "Unnamed: " + strconv.Itoa(i)
	}

	raw := catalogo.RawTable{Columns: columns}
	for _, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		cells := make([]catalogo.Value, width)
		for i := 0; i < width && i < len(rec); i++ {
			cells[i] = catalogo.Text(rec[i])
		}
		raw.Rows = append(raw.Rows, cells)
	}
	return raw
}

func blank(rec []string) bool {
	for _, s := range rec {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}
