package entity

import (
	"time"

	"github.com/donamed/donamed-api/internal/domain/solicitud"
)

// Solicitud representa la petición de medicamentos de un beneficiario, con su
// propio ciclo de aprobación (ver domain/solicitud). Nunca se elimina
// físicamente en operación normal; solo cambia de estado.
type Solicitud struct {
	Numero              int64 // número secuencial
	UsuarioID           string
	CedulaRepresentante string // opcional: cédula de quien gestiona en nombre del beneficiario
	Estado              solicitud.Estado
	Observaciones       string
	Medicamentos        []SolicitudMedicamento // lo que el solicitante pide (texto libre)
	Detalles            []SolicitudDetalle     // asignaciones concretas del administrador
	CreadoEn            time.Time
	ActualizadoEn       time.Time
}
