package catalogo

import "strconv"

// Normalize convierte la hoja en bruto en un Catalog:
//  1. nombres canónicos (sin espacios exteriores, en mayúsculas; duplicados con sufijo .1, .2, ...)
//  2. columnas de precio: decimal redondeado a 2 cifras, nulo si no es numérico
//  3. columnas de stock/picking: entero truncado, 0 si no es numérico o falta
//  4. el resto sin cambios
//
// No descarta filas. Aplicado sobre Catalog.Raw() devuelve un catálogo igual al original.
func Normalize(raw RawTable) *Catalog {
	columns := canonicalColumns(raw.Columns)
	roles := make([]Roles, len(columns))
	for i, name := range columns {
		roles[i] = Classify(name)
	}

	rows := make([][]Value, 0, len(raw.Rows))
	for _, in := range raw.Rows {
		out := make([]Value, len(columns))
		for i := range columns {
			var v Value
			if i < len(in) {
				v = in[i]
			}
			out[i] = coerce(v, roles[i])
		}
		rows = append(rows, out)
	}
	return newCatalog(columns, roles, rows)
}

// coerce aplica primero la regla de precio y después la de stock, de modo que una columna
// con ambos roles termina como entero.
func coerce(v Value, roles Roles) Value {
	if roles.Has(RolePrecio) {
		if d, ok := v.AsDecimal(); ok {
			v = Decimal(d.Round(2))
		} else {
			v = Empty()
		}
	}
	if roles.Has(RoleStock) {
		d, ok := v.AsDecimal()
		if !ok {
			return Integer(0)
		}
		return Integer(d.IntPart())
	}
	return v
}

func canonicalColumns(names []string) []string {
	out := make([]string, len(names))
	used := make(map[string]bool, len(names))
	for i, raw := range names {
		name := CanonicalName(raw)
		if used[name] {
			for k := 1; ; k++ {
				candidate := name + "." + strconv.Itoa(k)
				if !used[candidate] {
					name = candidate
					break
				}
			}
		}
		used[name] = true
		out[i] = name
	}
	return out
}
