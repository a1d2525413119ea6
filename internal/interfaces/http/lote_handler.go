package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/application/usecase"
)

// LoteHandler maneja los lotes de medicamentos (protegido).
type LoteHandler struct {
	uc *usecase.LoteUseCase
}

// NewLoteHandler construye el handler.
func NewLoteHandler(uc *usecase.LoteUseCase) *LoteHandler {
	return &LoteHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear lote
// @Tags         lotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearLoteRequest  true  "Datos del lote"
// @Success      201   {object}  dto.LoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/lotes [post]
func (h *LoteHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearLoteRequest
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
// @Summary      Obtener lote por código
// @Tags         lotes
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "Código del lote"
// @Success      200  {object}  dto.LoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lotes/{codigo} [get]
func (h *LoteHandler) Obtener(c *fiber.Ctx) error {
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

// ListarPorMedicamento godoc
// @Summary      Listar lotes de un medicamento
// @Tags         lotes
// @Security     Bearer
// @Produce      json
// @Param        medicamento  query  string  true   "Código del medicamento"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200          {array}  dto.LoteResponse
// @Router       /api/lotes [get]
func (h *LoteHandler) ListarPorMedicamento(c *fiber.Ctx) error {
	medicamento := c.Query("medicamento")
	if medicamento == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "medicamento requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.ListarPorMedicamento(medicamento, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar lote
// @Tags         lotes
// @Security     Bearer
// @Param        codigo  path  string  true  "Código del lote"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lotes/{codigo} [delete]
func (h *LoteHandler) Eliminar(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	if codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo requerido"})
	}
	if err := h.uc.Eliminar(codigo); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
