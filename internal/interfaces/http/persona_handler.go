package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/application/usecase"
)

// PersonaHandler maneja el registro de personas del programa (protegido).
type PersonaHandler struct {
	uc *usecase.PersonaUseCase
}

// NewPersonaHandler construye el handler.
func NewPersonaHandler(uc *usecase.PersonaUseCase) *PersonaHandler {
	return &PersonaHandler{uc: uc}
}

// Crear godoc
// @Summary      Registrar persona
// @Tags         personas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPersonaRequest  true  "Datos de la persona"
// @Success      201   {object}  dto.PersonaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/personas [post]
func (h *PersonaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearPersonaRequest
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
// @Summary      Obtener persona por cédula
// @Tags         personas
// @Security     Bearer
// @Produce      json
// @Param        cedula  path  string  true  "Cédula (11 dígitos)"
// @Success      200  {object}  dto.PersonaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/personas/{cedula} [get]
func (h *PersonaHandler) Obtener(c *fiber.Ctx) error {
	cedula := c.Params("cedula")
	if cedula == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cedula requerida"})
	}
	out, err := h.uc.Obtener(cedula)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar datos de contacto de una persona
// @Tags         personas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        cedula  path  string  true  "Cédula"
// @Param        body    body  dto.ActualizarPersonaRequest  true  "Cambios"
// @Success      200     {object}  dto.PersonaResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/personas/{cedula} [put]
func (h *PersonaHandler) Actualizar(c *fiber.Ctx) error {
	cedula := c.Params("cedula")
	if cedula == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cedula requerida"})
	}
	var in dto.ActualizarPersonaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(cedula, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Listar godoc
// @Summary      Listar personas
// @Tags         personas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.PersonaResponse
// @Router       /api/personas [get]
func (h *PersonaHandler) Listar(c *fiber.Ctx) error {
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
