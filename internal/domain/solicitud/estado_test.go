package solicitud_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donamed/donamed-api/internal/domain/solicitud"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de transiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestTransiciones_TablaCompleta(t *testing.T) {
	casos := []struct {
		desde     solicitud.Estado
		hacia     solicitud.Estado
		permitida bool
	}{
		{solicitud.EstadoPendiente, solicitud.EstadoEnRevision, true},
		{solicitud.EstadoPendiente, solicitud.EstadoCancelada, true},
		{solicitud.EstadoPendiente, solicitud.EstadoAprobada, false},
		{solicitud.EstadoPendiente, solicitud.EstadoDespachada, false},

		{solicitud.EstadoEnRevision, solicitud.EstadoAprobada, true},
		{solicitud.EstadoEnRevision, solicitud.EstadoRechazada, true},
		{solicitud.EstadoEnRevision, solicitud.EstadoIncompleta, true},
		{solicitud.EstadoEnRevision, solicitud.EstadoCancelada, true},
		{solicitud.EstadoEnRevision, solicitud.EstadoDespachada, false},
		{solicitud.EstadoEnRevision, solicitud.EstadoPendiente, false},

		{solicitud.EstadoIncompleta, solicitud.EstadoEnRevision, true},
		{solicitud.EstadoIncompleta, solicitud.EstadoCancelada, true},
		{solicitud.EstadoIncompleta, solicitud.EstadoAprobada, false},

		{solicitud.EstadoAprobada, solicitud.EstadoDespachada, true},
		{solicitud.EstadoAprobada, solicitud.EstadoCancelada, true},
		{solicitud.EstadoAprobada, solicitud.EstadoRechazada, false},

		// RECHAZADA admite reconsideración
		{solicitud.EstadoRechazada, solicitud.EstadoEnRevision, true},
		{solicitud.EstadoRechazada, solicitud.EstadoCancelada, false},

		// Terminales: nada sale de ellas
		{solicitud.EstadoDespachada, solicitud.EstadoAprobada, false},
		{solicitud.EstadoDespachada, solicitud.EstadoCancelada, false},
		{solicitud.EstadoCancelada, solicitud.EstadoEnRevision, false},
		{solicitud.EstadoCancelada, solicitud.EstadoPendiente, false},
	}

	for _, c := range casos {
		got := c.desde.PuedeTransicionar(c.hacia)
		assert.Equal(t, c.permitida, got,
			"transición %s -> %s: esperado %v", c.desde, c.hacia, c.permitida)
	}
}

// DESPACHADA solo es alcanzable desde APROBADA.
func TestTransiciones_DespachadaSoloDesdeAprobada(t *testing.T) {
	for _, e := range solicitud.Todos() {
		esperado := e == solicitud.EstadoAprobada
		assert.Equal(t, esperado, e.PuedeTransicionar(solicitud.EstadoDespachada),
			"DESPACHADA alcanzable desde %s", e)
	}
}

// Toda transición de la tabla lleva a un estado válido (cierre del grafo).
func TestTransiciones_CierreDelGrafo(t *testing.T) {
	for _, e := range solicitud.Todos() {
		for _, destino := range e.Permitidas() {
			assert.True(t, destino.Valida(),
				"destino %s desde %s debe ser un estado conocido", destino, e)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Predicados del estado
// ──────────────────────────────────────────────────────────────────────────────

func TestEstado_Terminal(t *testing.T) {
	terminales := map[solicitud.Estado]bool{
		solicitud.EstadoPendiente:  false,
		solicitud.EstadoEnRevision: false,
		solicitud.EstadoAprobada:   false,
		solicitud.EstadoRechazada:  false,
		solicitud.EstadoIncompleta: false,
		solicitud.EstadoDespachada: true,
		solicitud.EstadoCancelada:  true,
	}
	for e, esperado := range terminales {
		assert.Equal(t, esperado, e.Terminal(), "Terminal(%s)", e)
	}
}

func TestEstado_Editable(t *testing.T) {
	editables := map[solicitud.Estado]bool{
		solicitud.EstadoPendiente:  true,
		solicitud.EstadoEnRevision: true,
		solicitud.EstadoIncompleta: true,
		solicitud.EstadoAprobada:   false,
		solicitud.EstadoRechazada:  false,
		solicitud.EstadoDespachada: false,
		solicitud.EstadoCancelada:  false,
	}
	for e, esperado := range editables {
		assert.Equal(t, esperado, e.Editable(), "Editable(%s)", e)
	}
}

func TestEstado_Valida(t *testing.T) {
	for _, e := range solicitud.Todos() {
		assert.True(t, e.Valida(), "%s debe ser válido", e)
	}
	assert.False(t, solicitud.Estado("ENVIADA").Valida())
	assert.False(t, solicitud.Estado("").Valida())
	assert.False(t, solicitud.Estado("pendiente").Valida(), "los estados son case-sensitive")
}

// Un estado desconocido no puede transicionar a nada y no es terminal.
func TestEstado_DesconocidoNoTransiciona(t *testing.T) {
	e := solicitud.Estado("LIMBO")
	require.False(t, e.Valida())
	assert.False(t, e.Terminal(), "un estado inválido no cuenta como terminal")
	assert.Empty(t, e.Permitidas())
	for _, destino := range solicitud.Todos() {
		assert.False(t, e.PuedeTransicionar(destino))
	}
}

// Permitidas devuelve una copia: mutarla no debe alterar la tabla.
func TestEstado_PermitidasDevuelveCopia(t *testing.T) {
	p := solicitud.EstadoPendiente.Permitidas()
	require.NotEmpty(t, p)
	p[0] = solicitud.EstadoDespachada

	assert.False(t, solicitud.EstadoPendiente.PuedeTransicionar(solicitud.EstadoDespachada),
		"mutar el slice devuelto no debe tocar la tabla de transiciones")
}
