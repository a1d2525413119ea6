package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donamed/donamed-api/internal/application/donacion"
	"github.com/donamed/donamed-api/internal/application/dto"
)

// DonacionHandler maneja el registro de donaciones entrantes (protegido).
type DonacionHandler struct {
	uc *donacion.UseCase
}

// NewDonacionHandler construye el handler.
func NewDonacionHandler(uc *donacion.UseCase) *DonacionHandler {
	return &DonacionHandler{uc: uc}
}

// Crear godoc
// @Summary      Registrar una donación
// @Description  Registra la donación y acredita el stock de todas sus líneas en una sola transacción.
// @Tags         donaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearDonacionRequest  true  "Datos de la donación"
// @Success      201   {object}  dto.DonacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/donaciones [post]
func (h *DonacionHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearDonacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AgregarLineas godoc
// @Summary      Agregar líneas a una donación existente
// @Tags         donaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        numero  path  int  true  "Número de donación"
// @Param        body    body  dto.AgregarLineasRequest  true  "Líneas nuevas"
// @Success      200     {object}  dto.DonacionResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/donaciones/{numero}/lineas [post]
func (h *DonacionHandler) AgregarLineas(c *fiber.Ctx) error {
	numero, ok := paramNumero(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numero inválido"})
	}
	var in dto.AgregarLineasRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AgregarLineas(c.Context(), numero, in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Obtener godoc
// @Summary      Obtener donación por número
// @Tags         donaciones
// @Security     Bearer
// @Produce      json
// @Param        numero  path  int  true  "Número de donación"
// @Success      200  {object}  dto.DonacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/donaciones/{numero} [get]
func (h *DonacionHandler) Obtener(c *fiber.Ctx) error {
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
// @Summary      Listar donaciones
// @Tags         donaciones
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.DonacionResponse
// @Router       /api/donaciones [get]
func (h *DonacionHandler) Listar(c *fiber.Ctx) error {
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
// @Summary      Eliminar una donación
// @Description  Revierte los créditos de stock de todas sus líneas y borra la donación.
// @Tags         donaciones
// @Security     Bearer
// @Param        numero  path  int  true  "Número de donación"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/donaciones/{numero} [delete]
func (h *DonacionHandler) Eliminar(c *fiber.Ctx) error {
	numero, ok := paramNumero(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numero inválido"})
	}
	if err := h.uc.Eliminar(c.Context(), numero, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
