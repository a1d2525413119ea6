package entity

// SolicitudMedicamento es una línea de texto libre de lo que el solicitante
// necesita. Solo editable mientras la solicitud está en PENDIENTE,
// EN_REVISION o INCOMPLETA.
type SolicitudMedicamento struct {
	ID              string
	SolicitudNumero int64
	Nombre          string
	Dosis           string
}
