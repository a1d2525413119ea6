package dto

import (
	"time"

	"github.com/donamed/donamed-api/internal/domain/entity"
)

// CrearDespachoRequest body para POST /api/despachos.
type CrearDespachoRequest struct {
	SolicitudNumero int64  `json:"solicitud_numero"`
	CedulaReceptor  string `json:"cedula_receptor,omitempty"`
}

// DespachoResponse despacho en respuestas.
type DespachoResponse struct {
	Numero          int64     `json:"numero"`
	SolicitudNumero int64     `json:"solicitud_numero"`
	CedulaReceptor  string    `json:"cedula_receptor,omitempty"`
	FechaDespacho   time.Time `json:"fecha_despacho"`
}

// ToDespachoResponse convierte la entidad al DTO de respuesta.
func ToDespachoResponse(d *entity.Despacho) *DespachoResponse {
	return &DespachoResponse{
		Numero:          d.Numero,
		SolicitudNumero: d.SolicitudNumero,
		CedulaReceptor:  d.CedulaReceptor,
		FechaDespacho:   d.FechaDespacho,
	}
}
