package consulta_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcat "github.com/josemfca/referencias-raf/internal/application/catalogo"
	"github.com/josemfca/referencias-raf/internal/application/consulta"
	"github.com/josemfca/referencias-raf/internal/domain"
	"github.com/josemfca/referencias-raf/internal/domain/catalogo"
	"github.com/josemfca/referencias-raf/pkg/logger"
)

type staticProvider struct {
	estado appcat.Estado
}

func (p staticProvider) Get(context.Context) appcat.Estado { return p.estado }

type lookupSpy struct {
	origenes      []string
	coincidencias []int
}

func (s *lookupSpy) LookupDone(origen string, n int) {
	s.origenes = append(s.origenes, origen)
	s.coincidencias = append(s.coincidencias, n)
}

func nuevoUseCase(cat *catalogo.Catalog, aviso string, spy *lookupSpy) *consulta.UseCase {
	p := staticProvider{estado: appcat.Estado{Catalogo: cat, Aviso: aviso}}
	if spy == nil {
		return consulta.NewUseCase(p, logger.Nop(), nil)
	}
	return consulta.NewUseCase(p, logger.Nop(), spy)
}

func TestLookup_VariasCoincidencias(t *testing.T) {
	cat := catalogoDe(
		[]string{"CODIGO_ARTICULO", "CODIGO_SINONIMO", "DESCRIP_COMERCIAL"},
		[]string{"AB1", "", "Broca"},
		[]string{"ZZ", "ab1", "Broca bis"},
	)
	spy := &lookupSpy{}
	uc := nuevoUseCase(cat, "", spy)

	res, err := uc.Lookup(context.Background(), "  ab1 ", "api")
	require.NoError(t, err)

	assert.Equal(t, "AB1", res.Referencia)
	assert.True(t, res.Encontrada())
	require.Len(t, res.Fichas, 2)
	assert.Equal(t, "Broca", res.Fichas[0].InfoClave.Descripcion)
	assert.Equal(t, "Broca bis", res.Fichas[1].InfoClave.Descripcion)
	assert.Equal(t, consulta.MensajeEncontrada, res.Mensaje)
	assert.Equal(t, []string{"api"}, spy.origenes)
	assert.Equal(t, []int{2}, spy.coincidencias)
}

func TestLookup_NoEncontradaNoEsError(t *testing.T) {
	cat := catalogoDe([]string{"CODIGO_ARTICULO"}, []string{"AB1"})
	uc := nuevoUseCase(cat, "", nil)

	res, err := uc.Lookup(context.Background(), "XX", "web")
	require.NoError(t, err)
	assert.False(t, res.Encontrada())
	assert.NotNil(t, res.Fichas)
	assert.Equal(t, consulta.MensajeNoEncontrada, res.Mensaje)
}

func TestLookup_ReferenciaVacia(t *testing.T) {
	uc := nuevoUseCase(catalogo.EmptyCatalog(), "", nil)

	_, err := uc.Lookup(context.Background(), "   ", "web")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLookup_CatalogoVacioConAviso(t *testing.T) {
	uc := nuevoUseCase(catalogo.EmptyCatalog(), appcat.AvisoDescarga, nil)

	res, err := uc.Lookup(context.Background(), "AB1", "api")
	require.NoError(t, err)
	assert.False(t, res.Encontrada())
	assert.Equal(t, appcat.AvisoDescarga, res.Aviso)
}

func TestFicha(t *testing.T) {
	cat := catalogoDe([]string{"CODIGO_ARTICULO", "DESCRIP_COMERCIAL"}, []string{"AB1", "Broca"})
	uc := nuevoUseCase(cat, "", nil)

	f, err := uc.Ficha(context.Background(), "ab1", "api")
	require.NoError(t, err)
	assert.Equal(t, "Broca", f.InfoClave.Descripcion)

	_, err = uc.Ficha(context.Background(), "nada", "api")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
