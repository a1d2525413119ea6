package entity

import "github.com/shopspring/decimal"

// SolicitudDetalle es una asignación concreta (lote, almacén, cantidad) que
// el administrador adjunta durante la revisión. El motor de despacho la
// consume para saber qué debitar del inventario.
type SolicitudDetalle struct {
	ID              string
	SolicitudNumero int64
	AlmacenID       string
	LoteCodigo      string
	Cantidad        decimal.Decimal
	Indicaciones    string
}
