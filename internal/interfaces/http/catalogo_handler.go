package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donamed/donamed-api/internal/application/usecase"
)

// CatalogoHandler expone los catálogos de solo lectura (público).
type CatalogoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// Provincias godoc
// @Summary      Listar provincias
// @Tags         catalogos
// @Produce      json
// @Success      200  {array}  dto.ProvinciaResponse
// @Router       /api/catalogos/provincias [get]
func (h *CatalogoHandler) Provincias(c *fiber.Ctx) error {
	out, err := h.uc.Provincias()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Municipios godoc
// @Summary      Listar municipios
// @Tags         catalogos
// @Produce      json
// @Param        provincia  query  string  false  "Filtrar por provincia"
// @Success      200  {array}  dto.MunicipioResponse
// @Router       /api/catalogos/municipios [get]
func (h *CatalogoHandler) Municipios(c *fiber.Ctx) error {
	out, err := h.uc.Municipios(c.Query("provincia"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Categorias godoc
// @Summary      Listar categorías de medicamentos
// @Tags         catalogos
// @Produce      json
// @Success      200  {array}  dto.CatalogoItemResponse
// @Router       /api/catalogos/categorias [get]
func (h *CatalogoHandler) Categorias(c *fiber.Ctx) error {
	out, err := h.uc.Categorias()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Enfermedades godoc
// @Summary      Listar enfermedades
// @Tags         catalogos
// @Produce      json
// @Success      200  {array}  dto.CatalogoItemResponse
// @Router       /api/catalogos/enfermedades [get]
func (h *CatalogoHandler) Enfermedades(c *fiber.Ctx) error {
	out, err := h.uc.Enfermedades()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Vias godoc
// @Summary      Listar vías de administración
// @Tags         catalogos
// @Produce      json
// @Success      200  {array}  dto.CatalogoItemResponse
// @Router       /api/catalogos/vias [get]
func (h *CatalogoHandler) Vias(c *fiber.Ctx) error {
	out, err := h.uc.Vias()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
