package entity

import "time"

// Proveedor representa una entidad que dona medicamentos al programa.
// ID es el RNC (9 dígitos) para empresas o la cédula (11 dígitos) para
// personas físicas.
type Proveedor struct {
	ID        string
	Nombre    string
	Telefono  string
	Email     string
	Direccion string
	CreadoEn  time.Time
}
