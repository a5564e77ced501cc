package catalogo

import (
	"context"
	"time"

	domcat "github.com/josemfca/referencias-raf/internal/domain/catalogo"
)

// Source entrega la hoja de artículos como archivo local (implementado en infrastructure/drive).
type Source interface {
	Fetch(ctx context.Context) (path string, cleanup func(), err error)
	Name() string
}

// Parser lee un archivo local y devuelve la hoja en bruto (implementado en infrastructure/excel).
type Parser interface {
	ParseFile(path string) (domcat.RawTable, error)
}

// LoadObserver recibe el resultado de cada carga (métricas).
type LoadObserver interface {
	CatalogLoaded(fuente string, filas int, duracion time.Duration, err error)
}
