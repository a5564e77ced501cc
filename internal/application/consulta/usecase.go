package consulta

import (
	"context"
	"fmt"

	appcat "github.com/josemfca/referencias-raf/internal/application/catalogo"
	"github.com/josemfca/referencias-raf/internal/domain"
	"github.com/josemfca/referencias-raf/internal/domain/catalogo"
	"github.com/josemfca/referencias-raf/pkg/logger"
)

// Mensajes informativos de la búsqueda.
const (
	MensajeEncontrada   = "Resultados encontrados:"
	MensajeNoEncontrada = "No se encontró la referencia."
)

// CatalogProvider entrega el catálogo cargado (appcat.Cache).
type CatalogProvider interface {
	Get(ctx context.Context) appcat.Estado
}

// LookupObserver recibe cada consulta resuelta (métricas).
type LookupObserver interface {
	LookupDone(origen string, coincidencias int)
}

// Resultado de buscar una referencia.
type Resultado struct {
	Referencia string
	Fichas     []Ficha
	Filas      []catalogo.Row
	Mensaje    string
	Aviso      string
}

// Encontrada indica si hubo al menos una coincidencia.
func (r Resultado) Encontrada() bool { return len(r.Fichas) > 0 }

// UseCase resuelve referencias contra el catálogo en caché.
type UseCase struct {
	catalog  CatalogProvider
	log      *logger.Logger
	observer LookupObserver
}

// NewUseCase construye el caso de uso. observer puede ser nil.
func NewUseCase(catalog CatalogProvider, log *logger.Logger, observer LookupObserver) *UseCase {
	return &UseCase{catalog: catalog, log: log.Component("consulta"), observer: observer}
}

// Estado devuelve el estado de carga del catálogo.
func (uc *UseCase) Estado(ctx context.Context) appcat.Estado {
	return uc.catalog.Get(ctx)
}

// Lookup busca la referencia por artículo o sinónimo y presenta todas las coincidencias.
// Una referencia en blanco es ErrInvalidInput; no encontrarla no es un error.
func (uc *UseCase) Lookup(ctx context.Context, codigo, origen string) (Resultado, error) {
	ref := catalogo.NormalizeCode(codigo)
	if ref == "" {
		return Resultado{}, fmt.Errorf("%w: referencia vacía", domain.ErrInvalidInput)
	}

	estado := uc.catalog.Get(ctx)
	filas := catalogo.Resolve(ref, estado.Catalogo)

	res := Resultado{
		Referencia: ref,
		Fichas:     make([]Ficha, 0, len(filas)),
		Filas:      filas,
		Mensaje:    MensajeNoEncontrada,
		Aviso:      estado.Aviso,
	}
	for _, row := range filas {
		res.Fichas = append(res.Fichas, Present(row))
	}
	if res.Encontrada() {
		res.Mensaje = MensajeEncontrada
	}

	uc.log.Debug().Str("referencia", ref).Str("origen", origen).Int("coincidencias", len(filas)).Msg("consulta")
	if uc.observer != nil {
		uc.observer.LookupDone(origen, len(filas))
	}
	return res, nil
}

// Ficha devuelve la presentación de la primera coincidencia o ErrNotFound.
func (uc *UseCase) Ficha(ctx context.Context, codigo, origen string) (Ficha, error) {
	res, err := uc.Lookup(ctx, codigo, origen)
	if err != nil {
		return Ficha{}, err
	}
	if !res.Encontrada() {
		return Ficha{}, domain.ErrNotFound
	}
	return res.Fichas[0], nil
}
