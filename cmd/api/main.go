// @title        Consulta de Referencias API
// @version      1.0
// @description  Búsqueda de artículos por referencia o sinónimo: información clave, precios y stock por almacén.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appcat "github.com/josemfca/referencias-raf/internal/application/catalogo"
	"github.com/josemfca/referencias-raf/internal/application/consulta"
	"github.com/josemfca/referencias-raf/internal/application/dto"
	"github.com/josemfca/referencias-raf/internal/application/escaner"
	infrabarcode "github.com/josemfca/referencias-raf/internal/infrastructure/barcode"
	infradrive "github.com/josemfca/referencias-raf/internal/infrastructure/drive"
	infraexcel "github.com/josemfca/referencias-raf/internal/infrastructure/excel"
	inframetrics "github.com/josemfca/referencias-raf/internal/infrastructure/metrics"
	infrapdf "github.com/josemfca/referencias-raf/internal/infrastructure/pdf"
	httpRouter "github.com/josemfca/referencias-raf/internal/interfaces/http"
	"github.com/josemfca/referencias-raf/internal/interfaces/web"
	"github.com/josemfca/referencias-raf/pkg/config"
	"github.com/josemfca/referencias-raf/pkg/logger"

	_ "github.com/josemfca/referencias-raf/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Métricas
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	met := inframetrics.New()
	met.Register(reg)

	// Catálogo: fuente (Drive / URL / archivo) → parser → normalización, cargado una vez
	source, err := infradrive.FromConfig(cfg.Catalogo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("origen del catálogo")
	}
	parser := infraexcel.NewParser(infraexcel.Options{
		Formato:      cfg.Catalogo.Formato,
		Hoja:         cfg.Catalogo.Hoja,
		Codificacion: cfg.Catalogo.CSVCodificacion,
	})
	cache := appcat.NewCache(appcat.NewLoader(source, parser), log, met)

	consultaUC := consulta.NewUseCase(cache, log, met)
	escanerSvc := escaner.NewService(infrabarcode.NewDecoder(), consultaUC, cfg.Escaner.SesionTTL, log, met)

	tmpl, err := web.LoadTemplates()
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas web")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Catalogo.Timeout + time.Second*10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024, // fotogramas de cámara
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.SwaggerPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerPath,
			Path:     "docs",
			Title:    "Consulta de Referencias API",
		}))
	} else {
		log.Warn().Str("archivo", cfg.Docs.SwaggerPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ConsultaUC: consultaUC,
		Escaner:    escanerSvc,
		FichaPDF:   infrapdf.NewMarotoFichaGenerator(),
		Templates:  tmpl,
	})

	// Precarga del catálogo para que la primera consulta no espere la descarga
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Catalogo.Timeout)
		defer cancel()
		cache.Get(ctx)
	}()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
