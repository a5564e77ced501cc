package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("referencia no encontrada")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDownload     = errors.New("error al descargar el archivo")
	ErrParse        = errors.New("el archivo no es una hoja de cálculo válida")
)
