// Package catalogo normaliza la hoja de artículos y resuelve referencias sobre ella.
//
// Un RawTable es la hoja tal como llega del parser; Normalize lo convierte en un Catalog
// inmutable con nombres de columna canónicos y valores tipados según el rol de cada columna.
package catalogo

import "encoding/json"

// Columnas con significado fijo.
const (
	ColCodigoArticulo = "CODIGO_ARTICULO"
	ColCodigoSinonimo = "CODIGO_SINONIMO"
)

// RawTable es la hoja sin normalizar: nombres de columna originales y celdas en bruto.
type RawTable struct {
	Columns []string
	Rows    [][]Value
}

// Catalog es la tabla normalizada. Solo expone lectura; se comparte entre peticiones.
type Catalog struct {
	columns []string
	roles   []Roles
	index   map[string]int
	rows    [][]Value
	codes   map[string][]int
}

// Row es una fila del catálogo.
type Row struct {
	cat   *Catalog
	cells []Value
}

// EmptyCatalog devuelve un catálogo sin filas ni columnas.
func EmptyCatalog() *Catalog {
	return newCatalog(nil, nil, nil)
}

func newCatalog(columns []string, roles []Roles, rows [][]Value) *Catalog {
	c := &Catalog{
		columns: columns,
		roles:   roles,
		index:   make(map[string]int, len(columns)),
		rows:    rows,
		codes:   make(map[string][]int),
	}
	for i, name := range columns {
		c.index[name] = i
	}
	c.indexCodes()
	return c
}

// indexCodes precalcula las claves de búsqueda de artículo y sinónimo de cada fila.
func (c *Catalog) indexCodes() {
	ia, okA := c.index[ColCodigoArticulo]
	is, okS := c.index[ColCodigoSinonimo]
	for i, cells := range c.rows {
		var ka, ks string
		if okA {
			ka = NormalizeCode(cells[ia].String())
		}
		if okS {
			ks = NormalizeCode(cells[is].String())
		}
		if ka != "" {
			c.codes[ka] = append(c.codes[ka], i)
		}
		if ks != "" && ks != ka {
			c.codes[ks] = append(c.codes[ks], i)
		}
	}
}

// Len devuelve el número de filas. Un catálogo nil se comporta como vacío.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.rows)
}

// Columns devuelve los nombres canónicos en el orden de la hoja.
func (c *Catalog) Columns() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.columns))
	copy(out, c.columns)
	return out
}

// ColumnsWithRole devuelve las columnas clasificadas con el rol indicado.
func (c *Catalog) ColumnsWithRole(role Roles) []string {
	if c == nil {
		return nil
	}
	var out []string
	for i, name := range c.columns {
		if c.roles[i].Has(role) {
			out = append(out, name)
		}
	}
	return out
}

// Row devuelve la fila i (0-based).
func (c *Catalog) Row(i int) Row {
	return Row{cat: c, cells: c.rows[i]}
}

// Rows devuelve todas las filas en orden.
func (c *Catalog) Rows() []Row {
	if c == nil {
		return nil
	}
	out := make([]Row, len(c.rows))
	for i := range c.rows {
		out[i] = c.Row(i)
	}
	return out
}

// Raw reconstruye un RawTable con los nombres canónicos y los valores ya tipados.
func (c *Catalog) Raw() RawTable {
	raw := RawTable{Columns: c.Columns()}
	if c == nil {
		return raw
	}
	raw.Rows = make([][]Value, len(c.rows))
	for i, cells := range c.rows {
		raw.Rows[i] = append([]Value(nil), cells...)
	}
	return raw
}

// Equal compara columnas y celdas de dos catálogos.
func (c *Catalog) Equal(o *Catalog) bool {
	if c.Len() != o.Len() {
		return false
	}
	a, b := c.Columns(), o.Columns()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	for i := 0; i < c.Len(); i++ {
		for j := range a {
			if !c.rows[i][j].Equal(o.rows[i][j]) {
				return false
			}
		}
	}
	return true
}

// Get devuelve el valor de una columna canónica; ok es false si la columna no existe.
func (r Row) Get(column string) (Value, bool) {
	if r.cat == nil {
		return Value{}, false
	}
	i, ok := r.cat.index[column]
	if !ok {
		return Value{}, false
	}
	return r.cells[i], true
}

// Value devuelve el valor de la columna o una celda vacía si no existe.
func (r Row) Value(column string) Value {
	v, _ := r.Get(column)
	return v
}

// Columns devuelve las columnas de la fila.
func (r Row) Columns() []string {
	return r.cat.Columns()
}

// MarshalJSON serializa la fila como objeto columna -> valor.
func (r Row) MarshalJSON() ([]byte, error) {
	if r.cat == nil {
		return []byte("{}"), nil
	}
	m := make(map[string]Value, len(r.cells))
	for i, name := range r.cat.columns {
		m[name] = r.cells[i]
	}
	return json.Marshal(m)
}
