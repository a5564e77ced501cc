package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/josemfca/referencias-raf/internal/application/dto"
	"github.com/josemfca/referencias-raf/internal/domain"
)

// writeError traduce los errores de dominio a estado HTTP y dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(dto.CodeValidation, err.Error()))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewErrorResponse(dto.CodeNotFound, err.Error()))
	case errors.Is(err, domain.ErrDownload), errors.Is(err, domain.ErrParse):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.NewErrorResponse(dto.CodeCatalogUnavailable, err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewErrorResponse(dto.CodeInternal, err.Error()))
	}
}
