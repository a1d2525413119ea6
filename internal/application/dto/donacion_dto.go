package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/donamed/donamed-api/internal/domain/entity"
)

// DonacionLineaInput línea de una donación entrante.
type DonacionLineaInput struct {
	AlmacenID  string          `json:"almacen_id"`
	LoteCodigo string          `json:"lote_codigo"`
	Cantidad   decimal.Decimal `json:"cantidad"`
}

// CrearDonacionRequest body para POST /api/donaciones.
type CrearDonacionRequest struct {
	ProveedorID string               `json:"proveedor_id,omitempty"`
	Descripcion string               `json:"descripcion,omitempty"`
	Lineas      []DonacionLineaInput `json:"lineas"`
}

// AgregarLineasRequest body para POST /api/donaciones/:numero/lineas.
type AgregarLineasRequest struct {
	Lineas []DonacionLineaInput `json:"lineas"`
}

// DonacionLineaResponse línea en respuestas.
type DonacionLineaResponse struct {
	ID         string          `json:"id"`
	AlmacenID  string          `json:"almacen_id"`
	LoteCodigo string          `json:"lote_codigo"`
	Cantidad   decimal.Decimal `json:"cantidad"`
}

// DonacionResponse donación con sus líneas.
type DonacionResponse struct {
	Numero      int64                   `json:"numero"`
	ProveedorID string                  `json:"proveedor_id,omitempty"`
	Descripcion string                  `json:"descripcion,omitempty"`
	Lineas      []DonacionLineaResponse `json:"lineas"`
	CreadoEn    time.Time               `json:"creado_en"`
}

// ToDonacionResponse convierte la entidad al DTO de respuesta.
func ToDonacionResponse(d *entity.Donacion) *DonacionResponse {
	out := &DonacionResponse{
		Numero:      d.Numero,
		ProveedorID: d.ProveedorID,
		Descripcion: d.Descripcion,
		Lineas:      make([]DonacionLineaResponse, 0, len(d.Medicamentos)),
		CreadoEn:    d.CreadoEn,
	}
	for _, l := range d.Medicamentos {
		out.Lineas = append(out.Lineas, DonacionLineaResponse{
			ID: l.ID, AlmacenID: l.AlmacenID, LoteCodigo: l.LoteCodigo, Cantidad: l.Cantidad,
		})
	}
	return out
}
