package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicamento representa un medicamento del programa de donaciones.
// CantidadDisponible es la suma del stock de todos los almacenes; solo el
// libro de inventario la modifica (incremento/decremento atómico).
type Medicamento struct {
	Codigo             string // código único
	Nombre             string
	Descripcion        string
	CategoriaID        string
	ViaAdministracion  string
	Activo             bool
	CantidadDisponible decimal.Decimal
	CreadoEn           time.Time
	ActualizadoEn      time.Time
}
