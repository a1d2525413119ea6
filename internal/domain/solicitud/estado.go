// Package solicitud define el ciclo de vida de una solicitud de medicamentos:
// el enum cerrado de estados y la tabla de transiciones permitidas.
//
//	PENDIENTE   -> EN_REVISION, CANCELADA
//	EN_REVISION -> APROBADA, RECHAZADA, INCOMPLETA, CANCELADA
//	INCOMPLETA  -> EN_REVISION, CANCELADA
//	APROBADA    -> DESPACHADA, CANCELADA
//	RECHAZADA   -> EN_REVISION
//	DESPACHADA  -> (terminal)
//	CANCELADA   -> (terminal)
//
// DESPACHADA solo se alcanza vía el motor de despacho; la transición directa
// se rechaza en el caso de uso aunque la tabla la contemple.
package solicitud

// Estado es el estado del ciclo de vida de una solicitud.
type Estado string

const (
	EstadoPendiente  Estado = "PENDIENTE"
	EstadoEnRevision Estado = "EN_REVISION"
	EstadoAprobada   Estado = "APROBADA"
	EstadoRechazada  Estado = "RECHAZADA"
	EstadoIncompleta Estado = "INCOMPLETA"
	EstadoDespachada Estado = "DESPACHADA"
	EstadoCancelada  Estado = "CANCELADA"
)

// transiciones es la tabla estática de transiciones permitidas.
// RECHAZADA -> EN_REVISION permite la reconsideración de una solicitud.
var transiciones = map[Estado][]Estado{
	EstadoPendiente:  {EstadoEnRevision, EstadoCancelada},
	EstadoEnRevision: {EstadoAprobada, EstadoRechazada, EstadoIncompleta, EstadoCancelada},
	EstadoIncompleta: {EstadoEnRevision, EstadoCancelada},
	EstadoAprobada:   {EstadoDespachada, EstadoCancelada},
	EstadoRechazada:  {EstadoEnRevision},
	EstadoDespachada: {},
	EstadoCancelada:  {},
}

// Valida indica si s es uno de los estados conocidos.
func (s Estado) Valida() bool {
	_, ok := transiciones[s]
	return ok
}

// Terminal indica si el estado no admite más transiciones.
func (s Estado) Terminal() bool {
	return len(transiciones[s]) == 0 && s.Valida()
}

// Editable indica si la solicitud aún admite agregar medicamentos solicitados.
func (s Estado) Editable() bool {
	switch s {
	case EstadoPendiente, EstadoEnRevision, EstadoIncompleta:
		return true
	}
	return false
}

// PuedeTransicionar indica si la transición s -> destino está permitida por la tabla.
func (s Estado) PuedeTransicionar(destino Estado) bool {
	for _, e := range transiciones[s] {
		if e == destino {
			return true
		}
	}
	return false
}

// Permitidas devuelve la lista de estados alcanzables desde s.
func (s Estado) Permitidas() []Estado {
	out := make([]Estado, len(transiciones[s]))
	copy(out, transiciones[s])
	return out
}

// Todos devuelve los estados conocidos (para validación y documentación).
func Todos() []Estado {
	return []Estado{
		EstadoPendiente, EstadoEnRevision, EstadoAprobada, EstadoRechazada,
		EstadoIncompleta, EstadoDespachada, EstadoCancelada,
	}
}
