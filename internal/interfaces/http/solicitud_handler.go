package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/application/solicitud"
	"github.com/donamed/donamed-api/internal/domain/entity"
)

// SolicitudHandler maneja el ciclo de vida de las solicitudes (protegido).
type SolicitudHandler struct {
	uc *solicitud.UseCase
}

// NewSolicitudHandler construye el handler.
func NewSolicitudHandler(uc *solicitud.UseCase) *SolicitudHandler {
	return &SolicitudHandler{uc: uc}
}

// paramNumero parsea el parámetro :numero de la ruta.
func paramNumero(c *fiber.Ctx) (int64, bool) {
	n, err := strconv.ParseInt(c.Params("numero"), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Crear godoc
// @Summary      Crear solicitud de medicamentos
// @Tags         solicitudes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearSolicitudRequest  true  "Datos de la solicitud"
// @Success      201   {object}  dto.SolicitudResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/solicitudes [post]
func (h *SolicitudHandler) Crear(c *fiber.Ctx) error {
	usuarioID := GetUserID(c)
	if usuarioID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CrearSolicitudRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), usuarioID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Obtener godoc
// @Summary      Obtener solicitud por número
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Param        numero  path  int  true  "Número de solicitud"
// @Success      200  {object}  dto.SolicitudResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{numero} [get]
func (h *SolicitudHandler) Obtener(c *fiber.Ctx) error {
	numero, ok := paramNumero(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numero inválido"})
	}
	out, err := h.uc.Obtener(c.Context(), numero)
	if err != nil {
		return respondError(c, err)
	}
	// Los solicitantes solo ven sus propias solicitudes.
	if GetRol(c) == entity.RolSolicitante && out.UsuarioID != GetUserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
	return c.JSON(out)
}

// Listar godoc
// @Summary      Listar solicitudes
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "Filtrar por estado"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.SolicitudListResponse
// @Router       /api/solicitudes [get]
func (h *SolicitudHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	// Los solicitantes listan solo lo suyo; admin y almacenista ven todo.
	if GetRol(c) == entity.RolSolicitante {
		out, err := h.uc.ListarPorUsuario(c.Context(), GetUserID(c), page.Limit, page.Offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.Listar(c.Context(), c.Query("estado"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Transicionar godoc
// @Summary      Transicionar el estado de una solicitud
// @Tags         solicitudes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        numero  path  int  true  "Número de solicitud"
// @Param        body    body  dto.TransicionRequest  true  "Estado destino"
// @Success      200     {object}  dto.SolicitudResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{numero}/transicion [post]
func (h *SolicitudHandler) Transicionar(c *fiber.Ctx) error {
	numero, ok := paramNumero(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numero inválido"})
	}
	var in dto.TransicionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Transicionar(c.Context(), numero, in.Estado, in.Observaciones)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AgregarMedicamento godoc
// @Summary      Agregar medicamento solicitado (texto libre)
// @Tags         solicitudes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        numero  path  int  true  "Número de solicitud"
// @Param        body    body  dto.SolicitudMedicamentoInput  true  "Medicamento"
// @Success      200     {object}  dto.SolicitudResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{numero}/medicamentos [post]
func (h *SolicitudHandler) AgregarMedicamento(c *fiber.Ctx) error {
	numero, ok := paramNumero(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numero inválido"})
	}
	var in dto.SolicitudMedicamentoInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AgregarMedicamento(c.Context(), numero, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AgregarDetalle godoc
// @Summary      Agregar asignación concreta (almacén + lote + cantidad)
// @Tags         solicitudes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        numero  path  int  true  "Número de solicitud"
// @Param        body    body  dto.SolicitudDetalleInput  true  "Detalle"
// @Success      200     {object}  dto.SolicitudResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{numero}/detalles [post]
func (h *SolicitudHandler) AgregarDetalle(c *fiber.Ctx) error {
	numero, ok := paramNumero(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numero inválido"})
	}
	var in dto.SolicitudDetalleInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AgregarDetalle(c.Context(), numero, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
