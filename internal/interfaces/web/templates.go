// Package web renderiza la página de consulta (búsqueda, escáner y tablas coloreadas).
package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/josemfca/referencias-raf/internal/application/consulta"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageData datos de la página principal.
type PageData struct {
	Titulo        string
	Referencia    string
	Aviso         string
	CatalogoVacio bool
	Error         string
	Buscado       bool
	Resultado     consulta.Resultado
}

// Templates conjunto de plantillas embebidas de la página.
type Templates struct {
	base *template.Template
}

// LoadTemplates carga las plantillas embebidas con la función "css".
func LoadTemplates() (*Templates, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		// los estilos salen de las tablas fijas de colores, nunca de datos del usuario
		"css": func(s string) template.CSS { return template.CSS(s) },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Templates{base: t}, nil
}

// Render ejecuta la plantilla name con data y escribe el HTML en w.
func (t *Templates) Render(w io.Writer, name string, data any) error {
	return t.base.ExecuteTemplate(w, name, data)
}
