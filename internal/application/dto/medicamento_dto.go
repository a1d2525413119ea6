package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/donamed/donamed-api/internal/domain/entity"
)

// CrearMedicamentoRequest body para POST /api/medicamentos.
type CrearMedicamentoRequest struct {
	Codigo            string `json:"codigo"`
	Nombre            string `json:"nombre"`
	Descripcion       string `json:"descripcion,omitempty"`
	CategoriaID       string `json:"categoria_id,omitempty"`
	ViaAdministracion string `json:"via_administracion,omitempty"`
}

// ActualizarMedicamentoRequest body para PUT /api/medicamentos/:codigo.
type ActualizarMedicamentoRequest struct {
	Nombre      *string `json:"nombre,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
	Activo      *bool   `json:"activo,omitempty"`
}

// MedicamentoResponse medicamento en respuestas.
type MedicamentoResponse struct {
	Codigo             string          `json:"codigo"`
	Nombre             string          `json:"nombre"`
	Descripcion        string          `json:"descripcion,omitempty"`
	CategoriaID        string          `json:"categoria_id,omitempty"`
	ViaAdministracion  string          `json:"via_administracion,omitempty"`
	Activo             bool            `json:"activo"`
	CantidadDisponible decimal.Decimal `json:"cantidad_disponible"`
	CreadoEn           time.Time       `json:"creado_en"`
}

// ToMedicamentoResponse convierte la entidad al DTO de respuesta.
func ToMedicamentoResponse(m *entity.Medicamento) *MedicamentoResponse {
	return &MedicamentoResponse{
		Codigo:             m.Codigo,
		Nombre:             m.Nombre,
		Descripcion:        m.Descripcion,
		CategoriaID:        m.CategoriaID,
		ViaAdministracion:  m.ViaAdministracion,
		Activo:             m.Activo,
		CantidadDisponible: m.CantidadDisponible,
		CreadoEn:           m.CreadoEn,
	}
}

// MedicamentoListResponse listado paginado de medicamentos.
type MedicamentoListResponse struct {
	Items  []MedicamentoResponse `json:"items"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}
