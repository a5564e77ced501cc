package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/josemfca/referencias-raf/internal/application/consulta"
	"github.com/josemfca/referencias-raf/internal/application/dto"
	"github.com/josemfca/referencias-raf/internal/domain/catalogo"
)

// CatalogoHandler expone el estado de carga del catálogo.
type CatalogoHandler struct {
	uc *consulta.UseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *consulta.UseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// Status godoc
// @Summary      Estado del catálogo
// @Description  Filas, columnas por rol, fuente y aviso de la última carga. Carga el catálogo si aún no se cargó.
// @Tags         catalogo
// @Produce      json
// @Success      200  {object}  dto.CatalogoResponse
// @Router       /api/catalogo [get]
func (h *CatalogoHandler) Status(c *fiber.Ctx) error {
	e := h.uc.Estado(c.UserContext())
	return c.JSON(dto.CatalogoResponse{
		Filas:          e.Catalogo.Len(),
		Columnas:       nonNil(e.Catalogo.Columns()),
		ColumnasPrecio: nonNil(e.Catalogo.ColumnsWithRole(catalogo.RolePrecio)),
		ColumnasStock:  nonNil(e.Catalogo.ColumnsWithRole(catalogo.RoleStock)),
		Fuente:         e.Fuente,
		CargadoEn:      e.CargadoEn,
		DuracionMs:     e.Duracion.Milliseconds(),
		Aviso:          e.Aviso,
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
