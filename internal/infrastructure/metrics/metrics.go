// Package metrics expone contadores Prometheus de consultas, escaneos y cargas del catálogo.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Orígenes de una consulta.
const (
	OrigenWeb     = "web"
	OrigenAPI     = "api"
	OrigenEscaner = "escaner"
	OrigenCLI     = "cli"
)

type Collector struct {
	lookups      *prometheus.CounterVec
	scans        *prometheus.CounterVec
	loads        *prometheus.CounterVec
	catalogRows  prometheus.Gauge
	loadDuration prometheus.Gauge
}

func New() *Collector {
	c := &Collector{}

	c.lookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "referencias",
		Name:      "consultas_total",
		Help:      "Consultas de referencia por origen y resultado",
	}, []string{"origen", "resultado"})

	c.scans = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "referencias",
		Name:      "fotogramas_total",
		Help:      "Fotogramas recibidos por el escáner según resultado de la lectura",
	}, []string{"resultado"})

	c.loads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "referencias",
		Name:      "cargas_catalogo_total",
		Help:      "Cargas del catálogo por fuente y resultado",
	}, []string{"fuente", "resultado"})

	c.catalogRows = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "referencias",
		Name:      "catalogo_filas",
		Help:      "Filas del catálogo cargado",
	})

	c.loadDuration = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "referencias",
		Name:      "catalogo_carga_segundos",
		Help:      "Duración de la última carga del catálogo",
	})

	return c
}

func (c *Collector) Register(reg prometheus.Registerer) {
	reg.MustRegister(c.lookups, c.scans, c.loads, c.catalogRows, c.loadDuration)
}

// CatalogLoaded registra una carga del catálogo.
func (c *Collector) CatalogLoaded(fuente string, filas int, duracion time.Duration, err error) {
	resultado := "ok"
	if err != nil {
		resultado = "error"
	}
	c.loads.WithLabelValues(fuente, resultado).Inc()
	c.catalogRows.Set(float64(filas))
	c.loadDuration.Set(duracion.Seconds())
}

// LookupDone registra una consulta con el número de coincidencias.
func (c *Collector) LookupDone(origen string, coincidencias int) {
	resultado := "encontrada"
	if coincidencias == 0 {
		resultado = "no_encontrada"
	}
	c.lookups.WithLabelValues(origen, resultado).Inc()
}

// FrameDecoded registra la lectura de un fotograma.
func (c *Collector) FrameDecoded(leido bool, err error) {
	switch {
	case err != nil:
		c.scans.WithLabelValues("error").Inc()
	case leido:
		c.scans.WithLabelValues("leido").Inc()
	default:
		c.scans.WithLabelValues("sin_codigo").Inc()
	}
}
