package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/donamed/donamed-api/internal/domain/entity"
)

// AjusteInventarioRequest body para POST /api/inventario/ajustes.
// Fija la cantidad literal de la celda (override administrativo).
type AjusteInventarioRequest struct {
	AlmacenID  string          `json:"almacen_id"`
	LoteCodigo string          `json:"lote_codigo"`
	Cantidad   decimal.Decimal `json:"cantidad"`
}

// StockResponse fila de inventario en respuestas.
type StockResponse struct {
	AlmacenID         string          `json:"almacen_id"`
	MedicamentoCodigo string          `json:"medicamento_codigo"`
	LoteCodigo        string          `json:"lote_codigo"`
	Cantidad          decimal.Decimal `json:"cantidad"`
	ActualizadoEn     time.Time       `json:"actualizado_en"`
}

// ToStockResponse convierte la entidad al DTO de respuesta.
func ToStockResponse(s *entity.Stock) *StockResponse {
	return &StockResponse{
		AlmacenID:         s.AlmacenID,
		MedicamentoCodigo: s.MedicamentoCodigo,
		LoteCodigo:        s.LoteCodigo,
		Cantidad:          s.Cantidad,
		ActualizadoEn:     s.ActualizadoEn,
	}
}

// MovimientoResponse movimiento del histórico de inventario.
type MovimientoResponse struct {
	ID                string          `json:"id"`
	Referencia        string          `json:"referencia"`
	Tipo              string          `json:"tipo"`
	AlmacenID         string          `json:"almacen_id"`
	MedicamentoCodigo string          `json:"medicamento_codigo"`
	LoteCodigo        string          `json:"lote_codigo"`
	Cantidad          decimal.Decimal `json:"cantidad"`
	Fecha             time.Time       `json:"fecha"`
	CreadoPor         string          `json:"creado_por,omitempty"`
}
