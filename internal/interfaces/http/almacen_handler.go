package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/application/usecase"
)

// AlmacenHandler maneja los almacenes del programa (protegido).
type AlmacenHandler struct {
	uc *usecase.AlmacenUseCase
}

// NewAlmacenHandler construye el handler.
func NewAlmacenHandler(uc *usecase.AlmacenUseCase) *AlmacenHandler {
	return &AlmacenHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear almacén
// @Tags         almacenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearAlmacenRequest  true  "Datos del almacén"
// @Success      201   {object}  dto.AlmacenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/almacenes [post]
func (h *AlmacenHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearAlmacenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Obtener godoc
// @Summary      Obtener almacén por ID
// @Tags         almacenes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del almacén"
// @Success      200  {object}  dto.AlmacenResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{id} [get]
func (h *AlmacenHandler) Obtener(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	out, err := h.uc.Obtener(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar almacén
// @Tags         almacenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del almacén"
// @Param        body  body  dto.ActualizarAlmacenRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.AlmacenResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/almacenes/{id} [put]
func (h *AlmacenHandler) Actualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.ActualizarAlmacenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar almacén
// @Tags         almacenes
// @Security     Bearer
// @Param        id  path  string  true  "ID del almacén"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{id} [delete]
func (h *AlmacenHandler) Eliminar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.uc.Eliminar(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Listar godoc
// @Summary      Listar almacenes
// @Tags         almacenes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.AlmacenResponse
// @Router       /api/almacenes [get]
func (h *AlmacenHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.Listar(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
