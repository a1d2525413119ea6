package dto

import (
	"time"

	"github.com/donamed/donamed-api/internal/domain/entity"
)

// CrearLoteRequest body para POST /api/lotes.
type CrearLoteRequest struct {
	Codigo            string    `json:"codigo"`
	MedicamentoCodigo string    `json:"medicamento_codigo"`
	FechaFabricacion  time.Time `json:"fecha_fabricacion"`
	FechaVencimiento  time.Time `json:"fecha_vencimiento"`
}

// LoteResponse lote en respuestas.
type LoteResponse struct {
	Codigo            string    `json:"codigo"`
	MedicamentoCodigo string    `json:"medicamento_codigo"`
	FechaFabricacion  time.Time `json:"fecha_fabricacion"`
	FechaVencimiento  time.Time `json:"fecha_vencimiento"`
}

// ToLoteResponse convierte la entidad al DTO de respuesta.
func ToLoteResponse(l *entity.Lote) *LoteResponse {
	return &LoteResponse{
		Codigo:            l.Codigo,
		MedicamentoCodigo: l.MedicamentoCodigo,
		FechaFabricacion:  l.FechaFabricacion,
		FechaVencimiento:  l.FechaVencimiento,
	}
}

// CrearAlmacenRequest body para POST /api/almacenes.
type CrearAlmacenRequest struct {
	Nombre      string `json:"nombre"`
	Direccion   string `json:"direccion,omitempty"`
	MunicipioID string `json:"municipio_id,omitempty"`
}

// ActualizarAlmacenRequest body para PUT /api/almacenes/:id.
// Los campos vacíos se dejan como están.
type ActualizarAlmacenRequest struct {
	Nombre      string `json:"nombre,omitempty"`
	Direccion   string `json:"direccion,omitempty"`
	MunicipioID string `json:"municipio_id,omitempty"`
}

// AlmacenResponse almacén en respuestas.
type AlmacenResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Direccion   string `json:"direccion,omitempty"`
	MunicipioID string `json:"municipio_id,omitempty"`
}

// ToAlmacenResponse convierte la entidad al DTO de respuesta.
func ToAlmacenResponse(a *entity.Almacen) *AlmacenResponse {
	return &AlmacenResponse{ID: a.ID, Nombre: a.Nombre, Direccion: a.Direccion, MunicipioID: a.MunicipioID}
}

// CrearProveedorRequest body para POST /api/proveedores.
type CrearProveedorRequest struct {
	ID        string `json:"id"` // RNC (9 dígitos) o cédula (11 dígitos)
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// ActualizarProveedorRequest body para PUT /api/proveedores/:id.
// Los campos vacíos se dejan como están.
type ActualizarProveedorRequest struct {
	Nombre    string `json:"nombre,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// ProveedorResponse proveedor en respuestas.
type ProveedorResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// ToProveedorResponse convierte la entidad al DTO de respuesta.
func ToProveedorResponse(p *entity.Proveedor) *ProveedorResponse {
	return &ProveedorResponse{ID: p.ID, Nombre: p.Nombre, Telefono: p.Telefono, Email: p.Email, Direccion: p.Direccion}
}

// CrearPersonaRequest body para POST /api/personas.
type CrearPersonaRequest struct {
	Cedula      string `json:"cedula"`
	Nombre      string `json:"nombre"`
	Apellido    string `json:"apellido"`
	Telefono    string `json:"telefono,omitempty"`
	Direccion   string `json:"direccion,omitempty"`
	MunicipioID string `json:"municipio_id,omitempty"`
}

// ActualizarPersonaRequest body para PUT /api/personas/:cedula.
// Los campos vacíos se dejan como están.
type ActualizarPersonaRequest struct {
	Nombre      string `json:"nombre,omitempty"`
	Apellido    string `json:"apellido,omitempty"`
	Telefono    string `json:"telefono,omitempty"`
	Direccion   string `json:"direccion,omitempty"`
	MunicipioID string `json:"municipio_id,omitempty"`
}

// PersonaResponse persona en respuestas.
type PersonaResponse struct {
	Cedula      string `json:"cedula"`
	Nombre      string `json:"nombre"`
	Apellido    string `json:"apellido"`
	Telefono    string `json:"telefono,omitempty"`
	Direccion   string `json:"direccion,omitempty"`
	MunicipioID string `json:"municipio_id,omitempty"`
}

// ToPersonaResponse convierte la entidad al DTO de respuesta.
func ToPersonaResponse(p *entity.Persona) *PersonaResponse {
	return &PersonaResponse{
		Cedula: p.Cedula, Nombre: p.Nombre, Apellido: p.Apellido,
		Telefono: p.Telefono, Direccion: p.Direccion, MunicipioID: p.MunicipioID,
	}
}

// ProvinciaResponse provincia del catálogo geográfico.
type ProvinciaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// MunicipioResponse municipio del catálogo geográfico.
type MunicipioResponse struct {
	ID          string `json:"id"`
	ProvinciaID string `json:"provincia_id"`
	Nombre      string `json:"nombre"`
}

// CatalogoItemResponse entrada genérica de catálogo (categorías, enfermedades, vías).
type CatalogoItemResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
