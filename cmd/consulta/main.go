// Package main es la herramienta de línea de comandos para consultar referencias.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	appcat "github.com/josemfca/referencias-raf/internal/application/catalogo"
	"github.com/josemfca/referencias-raf/internal/application/consulta"
	"github.com/josemfca/referencias-raf/internal/application/dto"
	infradrive "github.com/josemfca/referencias-raf/internal/infrastructure/drive"
	infraexcel "github.com/josemfca/referencias-raf/internal/infrastructure/excel"
	"github.com/josemfca/referencias-raf/internal/infrastructure/metrics"
	"github.com/josemfca/referencias-raf/pkg/config"
	"github.com/josemfca/referencias-raf/pkg/logger"
)

var (
	asJSON   bool
	archivo  string
	hoja     string
	sinColor bool
	logLevel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "consulta [referencia...]",
		Short: "Consulta referencias de artículos en el catálogo",
		Long: `consulta carga la hoja de artículos (Google Drive, URL o archivo local) y muestra,
para cada referencia, la información clave, los precios y el stock por almacén.`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Salida JSON")
	rootCmd.Flags().StringVarP(&archivo, "archivo", "a", "", "Hoja local (xlsx o csv) en lugar de la descarga")
	rootCmd.Flags().StringVar(&hoja, "hoja", "", "Nombre de la hoja del libro (por defecto la primera)")
	rootCmd.Flags().BoolVar(&sinColor, "sin-color", false, "Desactiva los colores de la salida")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Nivel de log: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if archivo != "" {
		cfg.Catalogo.Archivo = archivo
	}
	if hoja != "" {
		cfg.Catalogo.Hoja = hoja
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: logLevel, Output: os.Stderr})

	source, err := infradrive.FromConfig(cfg.Catalogo, log)
	if err != nil {
		return err
	}
	parser := infraexcel.NewParser(infraexcel.Options{
		Formato:      cfg.Catalogo.Formato,
		Hoja:         cfg.Catalogo.Hoja,
		Codificacion: cfg.Catalogo.CSVCodificacion,
	})
	cache := appcat.NewCache(appcat.NewLoader(source, parser), log, nil)
	uc := consulta.NewUseCase(cache, log, nil)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Catalogo.Timeout)
	defer cancel()

	estado := uc.Estado(ctx)
	if estado.Aviso != "" {
		fmt.Fprintln(os.Stderr, estado.Aviso)
	}

	out := cmd.OutOrStdout()
	color := !sinColor && !asJSON && isatty.IsTerminal(os.Stdout.Fd())

	var respuestas []dto.ReferenciaResponse
	for _, ref := range args {
		res, err := uc.Lookup(ctx, ref, metrics.OrigenCLI)
		if err != nil {
			return fmt.Errorf("referencia %q: %w", ref, err)
		}
		if asJSON {
			respuestas = append(respuestas, dto.NewReferenciaResponse(res))
			continue
		}
		renderResultado(out, res, color)
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(respuestas)
	}
	return nil
}
