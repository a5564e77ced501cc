// Package drive obtiene la hoja de artículos: descarga pública de Google Drive, Drive API con
// clave o archivo local. Toda fuente deja el contenido en un archivo local para el parser.
package drive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/josemfca/referencias-raf/internal/domain"
	"github.com/josemfca/referencias-raf/pkg/config"
	"github.com/josemfca/referencias-raf/pkg/logger"
)

// Source entrega la hoja como archivo local. cleanup elimina los temporales y nunca es nil.
type Source interface {
	Fetch(ctx context.Context) (path string, cleanup func(), err error)
	Name() string
}

// FromConfig elige la fuente según la configuración.
// Prioridad: archivo local, URL explícita, Drive API (con clave), descarga pública de Drive.
func FromConfig(cfg config.CatalogoConfig, log *logger.Logger) (Source, error) {
	ext := "." + cfg.Formato
	if cfg.Formato == "" {
		ext = ".xlsx"
	}
	switch {
	case cfg.Archivo != "":
		return NewFileSource(cfg.Archivo), nil
	case cfg.URL != "":
		return NewHTTPSource(cfg.URL, ext, cfg.Timeout, log), nil
	case cfg.DriveAPIKey != "":
		return NewAPISource(cfg.DriveFileID, cfg.DriveAPIKey, ext, log)
	case cfg.DriveFileID != "":
		return NewHTTPSource(cfg.DescargaURL(), ext, cfg.Timeout, log), nil
	default:
		return nil, fmt.Errorf("%w: sin origen de catálogo", domain.ErrInvalidInput)
	}
}

// FileSource lee un archivo ya presente en disco.
type FileSource struct {
	path string
}

// NewFileSource crea la fuente de archivo local.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string { return "archivo" }

// Fetch comprueba que el archivo existe; no hay temporales que limpiar.
func (s *FileSource) Fetch(ctx context.Context) (string, func(), error) {
	if _, err := os.Stat(s.path); err != nil {
		return "", noop, fmt.Errorf("%w: %v", domain.ErrDownload, err)
	}
	return s.path, noop, nil
}

func noop() {}

// writeTemp vuelca body a un archivo temporal con la extensión indicada.
func writeTemp(body io.Reader, ext string) (string, func(), error) {
	f, err := os.CreateTemp("", "catalogo-*"+ext)
	if err != nil {
		return "", noop, fmt.Errorf("drive: crear temporal: %w", err)
	}
	cleanup := func() { _ = os.Remove(f.Name()) }

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		cleanup()
		return "", noop, fmt.Errorf("%w: %v", domain.ErrDownload, err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", noop, fmt.Errorf("drive: cerrar temporal %s: %w", filepath.Base(f.Name()), err)
	}
	return f.Name(), cleanup, nil
}
