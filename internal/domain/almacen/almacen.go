// Package almacen contiene las tablas estáticas de almacenes: código, nombre visible y color
// usado para teñir las celdas de stock y picking. Son constantes del contrato de visualización
// y no se derivan de los datos.
package almacen

// Almacen describe un almacén físico o lógico.
type Almacen struct {
	Codigo string
	Nombre string
	Color  string
}

// ColorMejorPrecio resalta los precios iguales al NETO.
const ColorMejorPrecio = "#556B2F"

// orden fijo de presentación
var almacenes = [...]Almacen{
	{Codigo: "01", Nombre: "PONFE", Color: "#00008B"},
	{Codigo: "02", Nombre: "LEON", Color: "#FF0000"},
	{Codigo: "03", Nombre: "SANTA", Color: "#FFA500"},
	{Codigo: "04", Nombre: "EXTRE", Color: "#90EE90"},
	{Codigo: "05", Nombre: "CANA LPGC", Color: "#87CEFA"},
	{Codigo: "051", Nombre: "CANA TNF", Color: "#4682B4"},
	{Codigo: "052", Nombre: "CANA FTV", Color: "#4169E1"},
	{Codigo: "06", Nombre: "GALI NOR", Color: "#808080"},
	{Codigo: "061", Nombre: "GALI SUR", Color: "#696969"},
	{Codigo: "07", Nombre: "CATAL", Color: "#800080"},
	{Codigo: "08", Nombre: "VALLAD", Color: "#A52A2A"},
	{Codigo: "09", Nombre: "VALENC", Color: "#FF69B4"},
	{Codigo: "10", Nombre: "EUSKA", Color: "#808000"},
	{Codigo: "20", Nombre: "PORT", Color: "#9370DB"},
	{Codigo: "30", Nombre: "MADR", Color: "#000000"},
}

var porCodigo = func() map[string]Almacen {
	m := make(map[string]Almacen, len(almacenes))
	for _, a := range almacenes {
		m[a.Codigo] = a
	}
	return m
}()

// Todos devuelve una copia de los almacenes en orden de presentación.
func Todos() []Almacen {
	out := make([]Almacen, len(almacenes))
	copy(out, almacenes[:])
	return out
}

// Nombre devuelve el nombre visible de un código de almacén.
func Nombre(codigo string) (string, bool) {
	a, ok := porCodigo[codigo]
	return a.Nombre, ok
}

// ColorPorValor busca el color cuya clave coincide con el valor literal de una celda.
//
// La búsqueda usa el valor de la celda, no el almacén de la columna, y solo acepta texto: una
// celda entera (10, 20, 30) no coincide con la clave "10". En la práctica el stock no se tiñe.
// Probablemente sea un error heredado.
func ColorPorValor(literal string) (string, bool) {
	a, ok := porCodigo[literal]
	return a.Color, ok
}
