package http

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/josemfca/referencias-raf/internal/application/dto"
	"github.com/josemfca/referencias-raf/internal/application/escaner"
)

// EscanerHandler maneja las sesiones de escaneo con cámara.
type EscanerHandler struct {
	svc *escaner.Service
}

// NewEscanerHandler construye el handler.
func NewEscanerHandler(svc *escaner.Service) *EscanerHandler {
	return &EscanerHandler{svc: svc}
}

// Crear godoc
// @Summary      Abrir sesión de escaneo
// @Tags         escaner
// @Produce      json
// @Success      201  {object}  dto.EscanerSesionResponse
// @Router       /api/escaner/sesiones [post]
func (h *EscanerHandler) Crear(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(sesionResponse(h.svc.Crear()))
}

// Obtener godoc
// @Summary      Último código leído en la sesión
// @Tags         escaner
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.EscanerSesionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/escaner/sesiones/{id} [get]
func (h *EscanerHandler) Obtener(c *fiber.Ctx) error {
	ses, err := h.svc.Obtener(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sesionResponse(ses))
}

// Frame godoc
// @Summary      Enviar fotograma
// @Description  Cuerpo: imagen JPEG o PNG, o multipart con el campo "frame". Si se lee un código, pasa a ser el último valor de la sesión y se consulta.
// @Tags         escaner
// @Accept       image/jpeg
// @Accept       image/png
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.EscanerLecturaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/escaner/sesiones/{id}/frames [post]
func (h *EscanerHandler) Frame(c *fiber.Ctx) error {
	frame, err := frameBody(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(dto.CodeInvalidBody, "fotograma inválido"))
	}
	l, err := h.svc.ProcesarFrame(c.UserContext(), c.Params("id"), frame)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.EscanerLecturaResponse{
		Leido:  l.Leido,
		Aviso:  l.Aviso,
		Sesion: sesionResponse(l.Sesion),
	})
}

// frameBody admite el cuerpo en bruto o un multipart con el campo "frame".
func frameBody(c *fiber.Ctx) ([]byte, error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return c.Body(), nil
	}
	fh, err := c.FormFile("frame")
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func sesionResponse(s escaner.Sesion) dto.EscanerSesionResponse {
	out := dto.EscanerSesionResponse{
		ID:            s.ID,
		Codigo:        s.Codigo,
		Seq:           s.Seq,
		CreadaEn:      s.CreadaEn,
		ActualizadaEn: s.ActualizadaEn,
	}
	if s.Resultado != nil {
		r := dto.NewReferenciaResponse(*s.Resultado)
		out.Resultado = &r
	}
	return out
}
