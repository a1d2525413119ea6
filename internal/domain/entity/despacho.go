package entity

import "time"

// Despacho registra la entrega física de los medicamentos de una solicitud
// aprobada. Relación 1:1 con Solicitud (a lo sumo un despacho por solicitud).
// Su creación y la transición de la solicitud a DESPACHADA son atómicas.
type Despacho struct {
	Numero          int64 // número secuencial
	SolicitudNumero int64
	CedulaReceptor  string // opcional: cédula de quien recibió físicamente
	FechaDespacho   time.Time
}
