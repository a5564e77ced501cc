package catalogo

// Resolve devuelve las filas cuyo CODIGO_ARTICULO o CODIGO_SINONIMO coincide con la
// referencia, ambos lados recortados y en mayúsculas. Puede haber varias coincidencias; se
// devuelven en el orden del catálogo. Sin coincidencias devuelve una lista vacía, no un error.
func Resolve(code string, c *Catalog) []Row {
	ref := NormalizeCode(code)
	out := []Row{}
	if ref == "" || c.Len() == 0 {
		return out
	}
	for _, i := range c.codes[ref] {
		out = append(out, c.Row(i))
	}
	return out
}
