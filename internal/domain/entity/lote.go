package entity

import "time"

// Lote representa un lote de fabricación de un medicamento, la unidad
// granular contra la que se rastrea el inventario. Inmutable una vez creado;
// un lote con stock cero sigue siendo un registro histórico válido.
type Lote struct {
	Codigo            string // código único
	MedicamentoCodigo string
	FechaFabricacion  time.Time
	FechaVencimiento  time.Time
	CreadoEn          time.Time
}
