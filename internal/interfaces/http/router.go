package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/josemfca/referencias-raf/internal/application/consulta"
	"github.com/josemfca/referencias-raf/internal/application/escaner"
	"github.com/josemfca/referencias-raf/internal/interfaces/web"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ConsultaUC *consulta.UseCase
	Escaner    *escaner.Service
	FichaPDF   FichaPDFGenerator
	Templates  *web.Templates
}

// Router registra las rutas de la API y la página de consulta.
func Router(app *fiber.App, deps RouterDeps) {
	// Página de consulta
	webHandler := NewWebHandler(deps.ConsultaUC, deps.Templates)
	app.Get("/", webHandler.Index)

	api := app.Group("/api")

	// Catálogo
	catalogoHandler := NewCatalogoHandler(deps.ConsultaUC)
	api.Get("/catalogo", catalogoHandler.Status)

	// Referencias
	referencias := api.Group("/referencias")
	referenciaHandler := NewReferenciaHandler(deps.ConsultaUC, deps.FichaPDF)
	referencias.Get("/:codigo/ficha.pdf", referenciaHandler.FichaPDF)
	referencias.Get("/:codigo", referenciaHandler.Get)

	// Escáner
	sesiones := api.Group("/escaner/sesiones")
	escanerHandler := NewEscanerHandler(deps.Escaner)
	sesiones.Post("/", escanerHandler.Crear)
	sesiones.Get("/:id", escanerHandler.Obtener)
	sesiones.Post("/:id/frames", escanerHandler.Frame)
}
