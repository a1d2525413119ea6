package entity

import "github.com/shopspring/decimal"

// DonacionMedicamento es una línea de una donación: qué lote entró, a qué
// almacén y en qué cantidad. Inmutable salvo por la ruta de la propia donación.
type DonacionMedicamento struct {
	ID             string
	DonacionNumero int64
	AlmacenID      string
	LoteCodigo     string
	Cantidad       decimal.Decimal
}
