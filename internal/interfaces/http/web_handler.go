package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/josemfca/referencias-raf/internal/application/consulta"
	"github.com/josemfca/referencias-raf/internal/domain"
	"github.com/josemfca/referencias-raf/internal/infrastructure/metrics"
	"github.com/josemfca/referencias-raf/internal/interfaces/web"
)

// WebHandler sirve la página de consulta.
type WebHandler struct {
	uc     *consulta.UseCase
	tmpl   *web.Templates
	titulo string
}

// NewWebHandler construye el handler.
func NewWebHandler(uc *consulta.UseCase, tmpl *web.Templates) *WebHandler {
	return &WebHandler{uc: uc, tmpl: tmpl, titulo: "Consulta de Referencias"}
}

// Index renderiza la página. Con ?referencia= busca y pinta las tablas. Si el catálogo está
// vacío solo se muestra el aviso.
func (h *WebHandler) Index(c *fiber.Ctx) error {
	estado := h.uc.Estado(c.UserContext())
	data := web.PageData{
		Titulo:        h.titulo,
		Referencia:    strings.TrimSpace(c.Query("referencia")),
		Aviso:         estado.Aviso,
		CatalogoVacio: estado.Vacio(),
	}

	if data.Referencia != "" && !data.CatalogoVacio {
		res, err := h.uc.Lookup(c.UserContext(), data.Referencia, metrics.OrigenWeb)
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			data.Error = "Referencia no válida."
		case err != nil:
			return err
		default:
			data.Buscado = true
			data.Resultado = res
		}
	}

	c.Type("html", "utf-8")
	return h.tmpl.Render(c, "index.html", data)
}
