package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/application/inventario"
)

// InventarioHandler consultas de stock, histórico y ajustes (protegido).
type InventarioHandler struct {
	ajusteUC   *inventario.AjusteUseCase
	consultaUC *inventario.ConsultaUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(ajusteUC *inventario.AjusteUseCase, consultaUC *inventario.ConsultaUseCase) *InventarioHandler {
	return &InventarioHandler{ajusteUC: ajusteUC, consultaUC: consultaUC}
}

// Ajustar godoc
// @Summary      Ajuste administrativo de inventario
// @Description  Fija la cantidad literal de una celda (almacén + lote) y registra el movimiento AJUSTE.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AjusteInventarioRequest  true  "Celda y cantidad"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventario/ajustes [post]
func (h *InventarioHandler) Ajustar(c *fiber.Ctx) error {
	var in dto.AjusteInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ajusteUC.Ajustar(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockPorAlmacen godoc
// @Summary      Stock de un almacén
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del almacén"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/almacenes/{id}/stock [get]
func (h *InventarioHandler) StockPorAlmacen(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.consultaUC.StockPorAlmacen(id, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockPorMedicamento godoc
// @Summary      Stock de un medicamento en todos los almacenes
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "Código del medicamento"
// @Success      200     {array}  dto.StockResponse
// @Router       /api/inventario/medicamentos/{codigo}/stock [get]
func (h *InventarioHandler) StockPorMedicamento(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	if codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo requerido"})
	}
	out, err := h.consultaUC.StockPorMedicamento(codigo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Movimientos godoc
// @Summary      Histórico de movimientos de un medicamento
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        codigo  path   string  true   "Código del medicamento"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {array}  dto.MovimientoResponse
// @Router       /api/inventario/medicamentos/{codigo}/movimientos [get]
func (h *InventarioHandler) Movimientos(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	if codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.consultaUC.MovimientosPorMedicamento(codigo, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MovimientosPorReferencia godoc
// @Summary      Movimientos de una operación (despacho, donación o ajuste)
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        referencia  query  string  true  "Referencia, ej: despacho-12"
// @Success      200  {array}  dto.MovimientoResponse
// @Router       /api/inventario/movimientos [get]
func (h *InventarioHandler) MovimientosPorReferencia(c *fiber.Ctx) error {
	referencia := c.Query("referencia")
	if referencia == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "referencia requerida"})
	}
	out, err := h.consultaUC.MovimientosPorReferencia(referencia)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
