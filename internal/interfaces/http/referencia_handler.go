package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/josemfca/referencias-raf/internal/application/consulta"
	"github.com/josemfca/referencias-raf/internal/application/dto"
	"github.com/josemfca/referencias-raf/internal/infrastructure/metrics"
)

// FichaPDFGenerator genera la ficha de artículo (infrastructure/pdf).
type FichaPDFGenerator interface {
	GenerateFichaPDF(ctx context.Context, ficha consulta.Ficha) ([]byte, error)
}

// ReferenciaHandler maneja la búsqueda de referencias.
type ReferenciaHandler struct {
	uc  *consulta.UseCase
	pdf FichaPDFGenerator
}

// NewReferenciaHandler construye el handler.
func NewReferenciaHandler(uc *consulta.UseCase, pdf FichaPDFGenerator) *ReferenciaHandler {
	return &ReferenciaHandler{uc: uc, pdf: pdf}
}

// Get godoc
// @Summary      Buscar referencia
// @Description  Busca por CODIGO_ARTICULO o CODIGO_SINONIMO (sin distinguir mayúsculas ni espacios). Sin coincidencias devuelve 200 con resultados vacío.
// @Tags         referencias
// @Produce      json
// @Param        codigo  path  string  true  "Referencia (artículo o sinónimo)"
// @Success      200  {object}  dto.ReferenciaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/referencias/{codigo} [get]
func (h *ReferenciaHandler) Get(c *fiber.Ctx) error {
	res, err := h.uc.Lookup(c.UserContext(), c.Params("codigo"), metrics.OrigenAPI)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewReferenciaResponse(res))
}

// FichaPDF godoc
// @Summary      Ficha PDF de la referencia
// @Description  PDF con información clave, precios y stock de la primera coincidencia.
// @Tags         referencias
// @Produce      application/pdf
// @Param        codigo  path  string  true  "Referencia (artículo o sinónimo)"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/referencias/{codigo}/ficha.pdf [get]
func (h *ReferenciaHandler) FichaPDF(c *fiber.Ctx) error {
	ficha, err := h.uc.Ficha(c.UserContext(), c.Params("codigo"), metrics.OrigenAPI)
	if err != nil {
		return writeError(c, err)
	}
	doc, err := h.pdf.GenerateFichaPDF(c.UserContext(), ficha)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="ficha-`+ficha.InfoClave.Articulo+`.pdf"`)
	return c.Send(doc)
}
