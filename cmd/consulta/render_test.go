package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josemfca/referencias-raf/internal/application/consulta"
	"github.com/josemfca/referencias-raf/internal/domain/catalogo"
)

func resultadoDePrueba() consulta.Resultado {
	raw := catalogo.RawTable{
		Columns: []string{"CODIGO_ARTICULO", "DESCRIP_COMERCIAL", "PRECIO", "NETO", "STOC_01"},
		Rows: [][]catalogo.Value{{
			catalogo.Text("AB1"), catalogo.Text("Broca"), catalogo.Text("10"), catalogo.Text("10"), catalogo.Text("4"),
		}},
	}
	ficha := consulta.Present(catalogo.Normalize(raw).Row(0))
	return consulta.Resultado{Referencia: "AB1", Fichas: []consulta.Ficha{ficha}, Mensaje: consulta.MensajeEncontrada}
}

func TestRenderResultado_SinColor(t *testing.T) {
	var buf bytes.Buffer
	renderResultado(&buf, resultadoDePrueba(), false)

	out := buf.String()
	assert.Contains(t, out, "Referencia: AB1")
	assert.Contains(t, out, "Resultados encontrados:")
	assert.Contains(t, out, "Broca")
	assert.Contains(t, out, "10.00")
	assert.Contains(t, out, "PONFE")
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderResultado_ConColor(t *testing.T) {
	var buf bytes.Buffer
	renderResultado(&buf, resultadoDePrueba(), true)

	// #556B2F = 85,107,47
	assert.Contains(t, buf.String(), "\x1b[48;2;85;107;47m")
}

func TestRenderResultado_NoEncontrada(t *testing.T) {
	var buf bytes.Buffer
	renderResultado(&buf, consulta.Resultado{Referencia: "ZZ", Mensaje: consulta.MensajeNoEncontrada}, true)
	assert.Contains(t, buf.String(), "No se encontró la referencia.")
}

func TestAnsiBackground(t *testing.T) {
	assert.Equal(t, "\x1b[48;2;0;0;139m\x1b[97m", ansiBackground("#00008B"))
	assert.Equal(t, "", ansiBackground("rojo"))
}
