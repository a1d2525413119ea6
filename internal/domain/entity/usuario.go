package entity

import "time"

// Roles de usuario.
const (
	RolAdmin       = "admin"
	RolAlmacenista = "almacenista"
	RolSolicitante = "solicitante"
)

// Usuario representa una cuenta del sistema con acceso por email y password.
type Usuario struct {
	ID            string
	Email         string
	PasswordHash  string
	Nombre        string
	Rol           string // admin | almacenista | solicitante
	PersonaCedula string // opcional: vínculo con Persona
	Activo        bool
	CreadoEn      time.Time
	ActualizadoEn time.Time
}
