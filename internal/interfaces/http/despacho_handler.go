package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/donamed/donamed-api/internal/application/despacho"
	"github.com/donamed/donamed-api/internal/application/dto"
)

// DespachoHandler maneja los despachos de solicitudes aprobadas (protegido).
type DespachoHandler struct {
	uc     *despacho.UseCase
	actaUC *despacho.ActaUseCase
}

// NewDespachoHandler construye el handler.
func NewDespachoHandler(uc *despacho.UseCase, actaUC *despacho.ActaUseCase) *DespachoHandler {
	return &DespachoHandler{uc: uc, actaUC: actaUC}
}

// Crear godoc
// @Summary      Despachar una solicitud aprobada
// @Description  Crea el despacho, marca la solicitud DESPACHADA y descuenta stock en una sola transacción.
// @Tags         despachos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearDespachoRequest  true  "Solicitud a despachar"
// @Success      201   {object}  dto.DespachoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/despachos [post]
func (h *DespachoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearDespachoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SolicitudNumero <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "solicitud_numero es requerido"})
	}
	out, err := h.uc.Crear(c.Context(), in.SolicitudNumero, in.CedulaReceptor, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Obtener godoc
// @Summary      Obtener despacho por número
// @Tags         despachos
// @Security     Bearer
// @Produce      json
// @Param        numero  path  int  true  "Número de despacho"
// @Success      200  {object}  dto.DespachoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/despachos/{numero} [get]
func (h *DespachoHandler) Obtener(c *fiber.Ctx) error {
	numero, ok := paramNumero(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numero inválido"})
	}
	out, err := h.uc.Obtener(c.Context(), numero)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Listar godoc
// @Summary      Listar despachos
// @Tags         despachos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.DespachoResponse
// @Router       /api/despachos [get]
func (h *DespachoHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.Listar(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar un despacho
// @Description  Borra el despacho y devuelve la solicitud a APROBADA. No recredita stock.
// @Tags         despachos
// @Security     Bearer
// @Param        numero  path  int  true  "Número de despacho"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/despachos/{numero} [delete]
func (h *DespachoHandler) Eliminar(c *fiber.Ctx) error {
	numero, ok := paramNumero(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numero inválido"})
	}
	if err := h.uc.Eliminar(c.Context(), numero); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Acta godoc
// @Summary      Descargar el acta de despacho en PDF
// @Tags         despachos
// @Security     Bearer
// @Produce      application/pdf
// @Param        numero  path  int  true  "Número de despacho"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/despachos/{numero}/acta [get]
func (h *DespachoHandler) Acta(c *fiber.Ctx) error {
	numero, ok := paramNumero(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numero inválido"})
	}
	pdfBytes, err := h.actaUC.GenerarActa(c.Context(), numero)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="acta-despacho-%d.pdf"`, numero))
	return c.Send(pdfBytes)
}
