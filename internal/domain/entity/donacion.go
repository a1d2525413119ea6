package entity

import "time"

// Donacion representa una entrega entrante de medicamentos de un proveedor,
// que acredita inventario. Eliminarla revierte todos los créditos de stock
// de sus líneas.
type Donacion struct {
	Numero       int64  // número secuencial
	ProveedorID  string // opcional: RNC (9 dígitos) o cédula (11 dígitos)
	Descripcion  string
	Medicamentos []DonacionMedicamento
	CreadoEn     time.Time
}
