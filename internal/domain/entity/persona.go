package entity

import "time"

// Persona representa a una persona física registrada en el programa
// (beneficiarios, representantes, receptores de despachos).
type Persona struct {
	Cedula      string // cédula de 11 dígitos, identificador natural
	Nombre      string
	Apellido    string
	Telefono    string
	Direccion   string
	MunicipioID string
	CreadoEn    time.Time
}
