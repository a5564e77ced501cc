package catalogo

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Roles es el conjunto de roles semánticos de una columna.
type Roles uint8

const (
	// RolePrecio: el nombre contiene PRECIO, NETO u OFERTA.
	RolePrecio Roles = 1 << iota
	// RoleStock: el nombre contiene STOC o PIKG.
	RoleStock
)

var (
	precioMarkers = []string{"PRECIO", "NETO", "OFERTA"}
	stockMarkers  = []string{"STOC", "PIKG"}
)

// Has indica si el conjunto incluye el rol.
func (r Roles) Has(role Roles) bool { return r&role != 0 }

// Classify asigna roles a un nombre de columna canónico. Los dos roles se calculan de forma
// independiente; una columna puede no tener ninguno.
func Classify(column string) Roles {
	var r Roles
	if containsAny(column, precioMarkers) {
		r |= RolePrecio
	}
	if containsAny(column, stockMarkers) {
		r |= RoleStock
	}
	return r
}

// CanonicalName recorta espacios y pasa a mayúsculas un nombre de columna.
func CanonicalName(name string) string {
	return upper(strings.TrimSpace(name))
}

// NormalizeCode normaliza una referencia tecleada o escaneada.
func NormalizeCode(code string) string {
	return upper(strings.TrimSpace(code))
}

// cases.Caser no es seguro entre goroutines: uno nuevo por llamada.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
