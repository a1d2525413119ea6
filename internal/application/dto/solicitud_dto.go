package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/donamed/donamed-api/internal/domain/entity"
)

// CrearSolicitudRequest body para POST /api/solicitudes.
type CrearSolicitudRequest struct {
	CedulaRepresentante string                      `json:"cedula_representante,omitempty"`
	Medicamentos        []SolicitudMedicamentoInput `json:"medicamentos"`
}

// SolicitudMedicamentoInput línea de texto libre del solicitante.
type SolicitudMedicamentoInput struct {
	Nombre string `json:"nombre"`
	Dosis  string `json:"dosis,omitempty"`
}

// TransicionRequest body para POST /api/solicitudes/:numero/transicion.
type TransicionRequest struct {
	Estado        string `json:"estado"`
	Observaciones string `json:"observaciones,omitempty"`
}

// SolicitudDetalleInput asignación concreta del administrador.
type SolicitudDetalleInput struct {
	AlmacenID    string          `json:"almacen_id"`
	LoteCodigo   string          `json:"lote_codigo"`
	Cantidad     decimal.Decimal `json:"cantidad"`
	Indicaciones string          `json:"indicaciones,omitempty"`
}

// SolicitudMedicamentoResponse línea solicitada en respuestas.
type SolicitudMedicamentoResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Dosis  string `json:"dosis,omitempty"`
}

// SolicitudDetalleResponse asignación en respuestas.
type SolicitudDetalleResponse struct {
	ID           string          `json:"id"`
	AlmacenID    string          `json:"almacen_id"`
	LoteCodigo   string          `json:"lote_codigo"`
	Cantidad     decimal.Decimal `json:"cantidad"`
	Indicaciones string          `json:"indicaciones,omitempty"`
}

// SolicitudResponse agregado completo de la solicitud.
type SolicitudResponse struct {
	Numero              int64                          `json:"numero"`
	UsuarioID           string                         `json:"usuario_id"`
	CedulaRepresentante string                         `json:"cedula_representante,omitempty"`
	Estado              string                         `json:"estado"`
	Observaciones       string                         `json:"observaciones,omitempty"`
	Medicamentos        []SolicitudMedicamentoResponse `json:"medicamentos"`
	Detalles            []SolicitudDetalleResponse     `json:"detalles"`
	CreadoEn            time.Time                      `json:"creado_en"`
	ActualizadoEn       time.Time                      `json:"actualizado_en"`
}

// ToSolicitudResponse convierte la entidad al DTO de respuesta.
func ToSolicitudResponse(s *entity.Solicitud) *SolicitudResponse {
	out := &SolicitudResponse{
		Numero:              s.Numero,
		UsuarioID:           s.UsuarioID,
		CedulaRepresentante: s.CedulaRepresentante,
		Estado:              string(s.Estado),
		Observaciones:       s.Observaciones,
		Medicamentos:        make([]SolicitudMedicamentoResponse, 0, len(s.Medicamentos)),
		Detalles:            make([]SolicitudDetalleResponse, 0, len(s.Detalles)),
		CreadoEn:            s.CreadoEn,
		ActualizadoEn:       s.ActualizadoEn,
	}
	for _, m := range s.Medicamentos {
		out.Medicamentos = append(out.Medicamentos, SolicitudMedicamentoResponse{ID: m.ID, Nombre: m.Nombre, Dosis: m.Dosis})
	}
	for _, d := range s.Detalles {
		out.Detalles = append(out.Detalles, SolicitudDetalleResponse{
			ID: d.ID, AlmacenID: d.AlmacenID, LoteCodigo: d.LoteCodigo, Cantidad: d.Cantidad, Indicaciones: d.Indicaciones,
		})
	}
	return out
}

// SolicitudListResponse listado paginado de solicitudes.
type SolicitudListResponse struct {
	Items  []SolicitudResponse `json:"items"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}
