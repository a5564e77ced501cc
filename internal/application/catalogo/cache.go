// Package catalogo carga la hoja de artículos una vez por proceso y la comparte normalizada.
package catalogo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/josemfca/referencias-raf/internal/domain"
	domcat "github.com/josemfca/referencias-raf/internal/domain/catalogo"
	"github.com/josemfca/referencias-raf/pkg/logger"
)

// Avisos visibles para el usuario cuando la carga falla.
const (
	AvisoDescarga = "Error al descargar el archivo: verifica la conexión o el ID del archivo."
	AvisoFormato  = "El archivo descargado no es una hoja de cálculo válida."
	AvisoVacio    = "El catálogo no contiene artículos."
)

// Estado es el resultado de la carga: catálogo (vacío si falló) y aviso para el usuario.
type Estado struct {
	Catalogo  *domcat.Catalog
	Aviso     string
	Fuente    string
	CargadoEn time.Time
	Duracion  time.Duration
	Err       error
}

// Vacio indica si no hay filas que consultar.
func (e Estado) Vacio() bool { return e.Catalogo.Len() == 0 }

// Loader descarga, interpreta y normaliza la hoja.
type Loader struct {
	source Source
	parser Parser
}

// NewLoader construye el cargador.
func NewLoader(source Source, parser Parser) *Loader {
	return &Loader{source: source, parser: parser}
}

// Load hace un único intento. Los temporales de la descarga se eliminan al terminar.
func (l *Loader) Load(ctx context.Context) (*domcat.Catalog, error) {
	path, cleanup, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	raw, err := l.parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return domcat.Normalize(raw), nil
}

// Cache guarda el resultado de la primera carga. Las peticiones concurrentes esperan a la misma
// carga; un fallo también se guarda como catálogo vacío más aviso.
type Cache struct {
	loader   *Loader
	fuente   string
	log      *logger.Logger
	observer LoadObserver
	now      func() time.Time

	mu     sync.Mutex
	estado *Estado
}

// NewCache construye la caché. observer puede ser nil.
func NewCache(loader *Loader, log *logger.Logger, observer LoadObserver) *Cache {
	return &Cache{
		loader:   loader,
		fuente:   loader.source.Name(),
		log:      log.Component("catalogo"),
		observer: observer,
		now:      time.Now,
	}
}

// Get devuelve el estado cargado, cargando en la primera llamada.
func (c *Cache) Get(ctx context.Context) Estado {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.estado != nil {
		return *c.estado
	}

	start := c.now()
	cat, err := c.loader.Load(ctx)
	dur := c.now().Sub(start)

	e := &Estado{Fuente: c.fuente, CargadoEn: start, Duracion: dur, Err: err}
	if err != nil {
		e.Catalogo = domcat.EmptyCatalog()
		e.Aviso = avisoPara(err)
		c.log.Error().Err(err).Str("fuente", c.fuente).Dur("duracion", dur).Msg("no se pudo cargar el catálogo")
	} else {
		e.Catalogo = cat
		if cat.Len() == 0 {
			e.Aviso = AvisoVacio
		}
		c.log.Info().
			Str("fuente", c.fuente).
			Int("filas", cat.Len()).
			Int("columnas", len(cat.Columns())).
			Dur("duracion", dur).
			Msg("catálogo cargado")
	}
	if c.observer != nil {
		c.observer.CatalogLoaded(c.fuente, e.Catalogo.Len(), dur, err)
	}

	c.estado = e
	return *e
}

// Reset descarta el estado para forzar una nueva carga.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.estado = nil
	c.mu.Unlock()
}

func avisoPara(err error) string {
	switch {
	case errors.Is(err, domain.ErrParse):
		return AvisoFormato
	case errors.Is(err, domain.ErrDownload):
		return AvisoDescarga
	default:
		return fmt.Sprintf("%s (%v)", AvisoDescarga, err)
	}
}
