package catalogo_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcat "github.com/josemfca/referencias-raf/internal/application/catalogo"
	"github.com/josemfca/referencias-raf/internal/domain"
	domcat "github.com/josemfca/referencias-raf/internal/domain/catalogo"
	"github.com/josemfca/referencias-raf/pkg/logger"
)

type fakeSource struct {
	err      error
	fetches  atomic.Int32
	cleanups atomic.Int32
	delay    time.Duration
}

func (s *fakeSource) Name() string { return "fake" }

func (s *fakeSource) Fetch(ctx context.Context) (string, func(), error) {
	s.fetches.Add(1)
	time.Sleep(s.delay)
	if s.err != nil {
		return "", func() {}, s.err
	}
	return "/tmp/articulos.xlsx", func() { s.cleanups.Add(1) }, nil
}

type fakeParser struct {
	raw domcat.RawTable
	err error
}

func (p fakeParser) ParseFile(path string) (domcat.RawTable, error) {
	return p.raw, p.err
}

type fakeObserver struct {
	mu    sync.Mutex
	filas []int
	errs  []error
}

func (o *fakeObserver) CatalogLoaded(fuente string, filas int, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.filas = append(o.filas, filas)
	o.errs = append(o.errs, err)
}

func hoja() domcat.RawTable {
	return domcat.RawTable{
		Columns: []string{"codigo_articulo", "PRECIO"},
		Rows:    [][]domcat.Value{{domcat.Text("A1"), domcat.Text("1.234")}},
	}
}

func TestCache_CargaUnaSolaVez(t *testing.T) {
	src := &fakeSource{delay: 20 * time.Millisecond}
	obs := &fakeObserver{}
	cache := appcat.NewCache(appcat.NewLoader(src, fakeParser{raw: hoja()}), logger.Nop(), obs)

	var wg sync.WaitGroup
	estados := make([]appcat.Estado, 8)
	for i := range estados {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			estados[i] = cache.Get(context.Background())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), src.fetches.Load())
	assert.Equal(t, int32(1), src.cleanups.Load(), "el temporal se limpia tras interpretar")
	for _, e := range estados {
		assert.Same(t, estados[0].Catalogo, e.Catalogo, "todas las peticiones ven el mismo catálogo")
		assert.Empty(t, e.Aviso)
	}
	require.Equal(t, 1, estados[0].Catalogo.Len())
	assert.Equal(t, []string{"CODIGO_ARTICULO", "PRECIO"}, estados[0].Catalogo.Columns())
	assert.Equal(t, []int{1}, obs.filas)
}

func TestCache_ErrorDeDescargaDevuelveCatalogoVacio(t *testing.T) {
	src := &fakeSource{err: fmt.Errorf("%w: estado HTTP 404", domain.ErrDownload)}
	obs := &fakeObserver{}
	cache := appcat.NewCache(appcat.NewLoader(src, fakeParser{raw: hoja()}), logger.Nop(), obs)

	e := cache.Get(context.Background())
	assert.True(t, e.Vacio())
	assert.NotNil(t, e.Catalogo)
	assert.Equal(t, appcat.AvisoDescarga, e.Aviso)
	assert.ErrorIs(t, e.Err, domain.ErrDownload)
	assert.Empty(t, domcat.Resolve("A1", e.Catalogo))

	// el fallo queda en caché: no se reintenta
	_ = cache.Get(context.Background())
	assert.Equal(t, int32(1), src.fetches.Load())
	require.Len(t, obs.errs, 1)
	assert.Error(t, obs.errs[0])
}

func TestCache_ErrorDeFormato(t *testing.T) {
	src := &fakeSource{}
	parser := fakeParser{err: fmt.Errorf("%w: zip inválido", domain.ErrParse)}
	cache := appcat.NewCache(appcat.NewLoader(src, parser), logger.Nop(), nil)

	e := cache.Get(context.Background())
	assert.True(t, e.Vacio())
	assert.Equal(t, appcat.AvisoFormato, e.Aviso)
	assert.Equal(t, int32(1), src.cleanups.Load())
}

func TestCache_HojaSinFilas(t *testing.T) {
	cache := appcat.NewCache(appcat.NewLoader(&fakeSource{}, fakeParser{}), logger.Nop(), nil)

	e := cache.Get(context.Background())
	assert.NoError(t, e.Err)
	assert.True(t, e.Vacio())
	assert.Equal(t, appcat.AvisoVacio, e.Aviso)
}

func TestCache_ResetFuerzaNuevaCarga(t *testing.T) {
	src := &fakeSource{err: errors.New("sin red")}
	cache := appcat.NewCache(appcat.NewLoader(src, fakeParser{raw: hoja()}), logger.Nop(), nil)

	e := cache.Get(context.Background())
	assert.True(t, e.Vacio())
	assert.Contains(t, e.Aviso, "sin red")

	src.err = nil
	cache.Reset()
	e = cache.Get(context.Background())
	assert.False(t, e.Vacio())
	assert.Equal(t, "fake", e.Fuente)
	assert.Equal(t, int32(2), src.fetches.Load())
}
