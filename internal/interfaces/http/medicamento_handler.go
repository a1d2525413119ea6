package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/application/usecase"
)

// MedicamentoHandler maneja el catálogo de medicamentos (protegido).
type MedicamentoHandler struct {
	uc *usecase.MedicamentoUseCase
}

// NewMedicamentoHandler construye el handler.
func NewMedicamentoHandler(uc *usecase.MedicamentoUseCase) *MedicamentoHandler {
	return &MedicamentoHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear medicamento
// @Tags         medicamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearMedicamentoRequest  true  "Datos del medicamento"
// @Success      201   {object}  dto.MedicamentoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/medicamentos [post]
func (h *MedicamentoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearMedicamentoRequest
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
// @Summary      Obtener medicamento por código
// @Tags         medicamentos
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "Código"
// @Success      200  {object}  dto.MedicamentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medicamentos/{codigo} [get]
func (h *MedicamentoHandler) Obtener(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	if codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo requerido"})
	}
	out, err := h.uc.Obtener(codigo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar medicamento
// @Tags         medicamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        codigo  path  string  true  "Código"
// @Param        body    body  dto.ActualizarMedicamentoRequest  true  "Cambios"
// @Success      200     {object}  dto.MedicamentoResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/medicamentos/{codigo} [put]
func (h *MedicamentoHandler) Actualizar(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	if codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo requerido"})
	}
	var in dto.ActualizarMedicamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(codigo, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar medicamento
// @Tags         medicamentos
// @Security     Bearer
// @Param        codigo  path  string  true  "Código"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medicamentos/{codigo} [delete]
func (h *MedicamentoHandler) Eliminar(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	if codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo requerido"})
	}
	if err := h.uc.Eliminar(codigo); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Listar godoc
// @Summary      Listar medicamentos
// @Description  Búsqueda por nombre insensible a mayúsculas y acentos.
// @Tags         medicamentos
// @Security     Bearer
// @Produce      json
// @Param        busqueda  query  string  false  "Texto a buscar en el nombre"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200       {object}  dto.MedicamentoListResponse
// @Router       /api/medicamentos [get]
func (h *MedicamentoHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.Listar(c.Query("busqueda"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
