package dto

import "time"

// EscanerSesionResponse estado de una sesión de escaneo.
type EscanerSesionResponse struct {
	ID            string              `json:"id"`
	Codigo        string              `json:"codigo,omitempty"`
	Seq           uint64              `json:"seq"`
	CreadaEn      time.Time           `json:"creada_en"`
	ActualizadaEn time.Time           `json:"actualizada_en"`
	Resultado     *ReferenciaResponse `json:"resultado,omitempty"`
}

// EscanerLecturaResponse resultado de enviar un fotograma.
type EscanerLecturaResponse struct {
	Leido  bool                  `json:"leido"`
	Aviso  string                `json:"aviso,omitempty"`
	Sesion EscanerSesionResponse `json:"sesion"`
}
