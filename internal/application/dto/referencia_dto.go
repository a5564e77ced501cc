package dto

import (
	"time"

	"github.com/josemfca/referencias-raf/internal/application/consulta"
)

// ReferenciaResponse resultado de buscar una referencia. Resultados vacío cuando no hay coincidencias.
type ReferenciaResponse struct {
	Referencia string           `json:"referencia"`
	Resultados []consulta.Ficha `json:"resultados"`
	Mensaje    string           `json:"mensaje"`
	Aviso      string           `json:"aviso,omitempty"`
}

// NewReferenciaResponse convierte el resultado del caso de uso.
func NewReferenciaResponse(res consulta.Resultado) ReferenciaResponse {
	fichas := res.Fichas
	if fichas == nil {
		fichas = []consulta.Ficha{}
	}
	return ReferenciaResponse{
		Referencia: res.Referencia,
		Resultados: fichas,
		Mensaje:    res.Mensaje,
		Aviso:      res.Aviso,
	}
}

// CatalogoResponse estado de carga del catálogo.
type CatalogoResponse struct {
	Filas          int       `json:"filas"`
	Columnas       []string  `json:"columnas"`
	ColumnasPrecio []string  `json:"columnas_precio"`
	ColumnasStock  []string  `json:"columnas_stock"`
	Fuente         string    `json:"fuente"`
	CargadoEn      time.Time `json:"cargado_en"`
	DuracionMs     int64     `json:"duracion_ms"`
	Aviso          string    `json:"aviso,omitempty"`
}

// HealthResponse salida de /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
