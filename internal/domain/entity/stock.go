package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockKey identifica una celda de inventario: un lote de un medicamento en
// un almacén. Se usa como valor para evitar errores de orden de parámetros.
type StockKey struct {
	AlmacenID         string
	MedicamentoCodigo string
	LoteCodigo        string
}

// Stock representa la cantidad de un lote en un almacén (fila de inventario).
// Invariante: Cantidad >= 0; el libro de inventario rechaza débitos que la
// dejarían negativa. Se crea con la primera donación o ajuste y nunca se
// elimina implícitamente.
type Stock struct {
	AlmacenID         string
	MedicamentoCodigo string
	LoteCodigo        string
	Cantidad          decimal.Decimal
	ActualizadoEn     time.Time
}

// Key devuelve la llave compuesta de la fila.
func (s *Stock) Key() StockKey {
	return StockKey{AlmacenID: s.AlmacenID, MedicamentoCodigo: s.MedicamentoCodigo, LoteCodigo: s.LoteCodigo}
}
