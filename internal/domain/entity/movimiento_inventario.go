package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovimientoENTRADA = "ENTRADA" // crédito por donación
	MovimientoSALIDA  = "SALIDA"  // débito por despacho o reverso de donación
	MovimientoAJUSTE  = "AJUSTE"  // fijación administrativa de cantidad
)

// MovimientoInventario es el registro histórico de cada mutación de stock.
// Referencia apunta a la operación que lo justificó (número de donación o
// despacho, o el id del ajuste).
type MovimientoInventario struct {
	ID                string
	Referencia        string
	Tipo              string
	AlmacenID         string
	MedicamentoCodigo string
	LoteCodigo        string
	Cantidad          decimal.Decimal // con signo: negativa en SALIDA
	Fecha             time.Time
	CreadoPor         string
}
