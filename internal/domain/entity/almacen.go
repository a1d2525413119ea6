package entity

import "time"

// Almacen representa un almacén donde se guarda el inventario donado.
type Almacen struct {
	ID            string
	Nombre        string
	Direccion     string
	MunicipioID   string
	CreadoEn      time.Time
	ActualizadoEn time.Time
}
