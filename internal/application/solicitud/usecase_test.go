package solicitud_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/application/inventario/inventariotest"
	appsolicitud "github.com/donamed/donamed-api/internal/application/solicitud"
	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/solicitud"
)

func nuevoUseCase(e *inventariotest.Entorno) *appsolicitud.UseCase {
	return appsolicitud.NewUseCase(e.Tx, e.Solicitudes, e.Almacenes, e.Lotes)
}

// sembrarSolicitud deja una solicitud en el estado dado, con o sin líneas.
func sembrarSolicitud(t *testing.T, e *inventariotest.Entorno, estado solicitud.Estado, conLineas bool) int64 {
	t.Helper()
	s := &entity.Solicitud{UsuarioID: "user-1", Estado: estado}
	require.NoError(t, e.Solicitudes.Create(s))
	if conLineas {
		require.NoError(t, e.Solicitudes.AddMedicamento(&entity.SolicitudMedicamento{
			ID: "linea-1", SolicitudNumero: s.Numero, Nombre: "Paracetamol 500mg",
		}))
	}
	return s.Numero
}

// ─────────────────────────────── crear ───────────────────────────────

func TestCrear_NaceEnPendienteConSusLineas(t *testing.T) {
	e := inventariotest.NewEntorno()
	uc := nuevoUseCase(e)

	out, err := uc.Crear(context.Background(), "user-1", dto.CrearSolicitudRequest{
		CedulaRepresentante: "00198765432",
		Medicamentos: []dto.SolicitudMedicamentoInput{
			{Nombre: "Amoxicilina 500mg", Dosis: "1 cada 8 horas"},
			{Nombre: "Loratadina 10mg"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.Numero, "la numeración arranca en 1")
	assert.Equal(t, string(solicitud.EstadoPendiente), out.Estado)
	assert.Len(t, out.Medicamentos, 2)

	guardada, err := e.Solicitudes.GetByNumero(out.Numero)
	require.NoError(t, err)
	require.NotNil(t, guardada)
	assert.Len(t, guardada.Medicamentos, 2, "las líneas se persisten junto a la cabecera")
}

func TestCrear_NumeracionSecuencial(t *testing.T) {
	e := inventariotest.NewEntorno()
	uc := nuevoUseCase(e)

	primera, err := uc.Crear(context.Background(), "user-1", dto.CrearSolicitudRequest{})
	require.NoError(t, err)
	segunda, err := uc.Crear(context.Background(), "user-2", dto.CrearSolicitudRequest{})
	require.NoError(t, err)

	assert.Equal(t, primera.Numero+1, segunda.Numero)
}

func TestCrear_RequiereUsuario(t *testing.T) {
	uc := nuevoUseCase(inventariotest.NewEntorno())

	_, err := uc.Crear(context.Background(), "", dto.CrearSolicitudRequest{})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestCrear_RechazaLineaSinNombre(t *testing.T) {
	uc := nuevoUseCase(inventariotest.NewEntorno())

	_, err := uc.Crear(context.Background(), "user-1", dto.CrearSolicitudRequest{
		Medicamentos: []dto.SolicitudMedicamentoInput{{Dosis: "1 al día"}},
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ──────────────────────────── transicionar ────────────────────────────

func TestTransicionar_PendienteARevision(t *testing.T) {
	e := inventariotest.NewEntorno()
	numero := sembrarSolicitud(t, e, solicitud.EstadoPendiente, true)
	uc := nuevoUseCase(e)

	out, err := uc.Transicionar(context.Background(), numero, "EN_REVISION", "pasando a revisión")
	require.NoError(t, err)

	assert.Equal(t, string(solicitud.EstadoEnRevision), out.Estado)
	assert.Equal(t, "pasando a revisión", out.Observaciones)
}

func TestTransicionar_ARevisionSinMedicamentos(t *testing.T) {
	e := inventariotest.NewEntorno()
	numero := sembrarSolicitud(t, e, solicitud.EstadoPendiente, false)
	uc := nuevoUseCase(e)

	_, err := uc.Transicionar(context.Background(), numero, "EN_REVISION", "")
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)

	s, err := e.Solicitudes.GetByNumero(numero)
	require.NoError(t, err)
	assert.Equal(t, solicitud.EstadoPendiente, s.Estado, "el estado no debe cambiar")
}

func TestTransicionar_SaltoInvalido(t *testing.T) {
	e := inventariotest.NewEntorno()
	numero := sembrarSolicitud(t, e, solicitud.EstadoPendiente, true)
	uc := nuevoUseCase(e)

	// PENDIENTE no puede saltar directo a APROBADA.
	_, err := uc.Transicionar(context.Background(), numero, "APROBADA", "")
	assert.ErrorIs(t, err, domain.ErrTransicionInvalida)
}

func TestTransicionar_DespachadaSoloViaDespacho(t *testing.T) {
	e := inventariotest.NewEntorno()
	numero := sembrarSolicitud(t, e, solicitud.EstadoAprobada, true)
	uc := nuevoUseCase(e)

	_, err := uc.Transicionar(context.Background(), numero, "DESPACHADA", "")
	require.ErrorIs(t, err, domain.ErrTransicionInvalida)

	s, err := e.Solicitudes.GetByNumero(numero)
	require.NoError(t, err)
	assert.Equal(t, solicitud.EstadoAprobada, s.Estado)
}

func TestTransicionar_EstadoDesconocido(t *testing.T) {
	e := inventariotest.NewEntorno()
	numero := sembrarSolicitud(t, e, solicitud.EstadoPendiente, true)
	uc := nuevoUseCase(e)

	_, err := uc.Transicionar(context.Background(), numero, "ARCHIVADA", "")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestTransicionar_SolicitudInexistente(t *testing.T) {
	uc := nuevoUseCase(inventariotest.NewEntorno())

	_, err := uc.Transicionar(context.Background(), 999, "EN_REVISION", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransicionar_DesdeEstadoTerminal(t *testing.T) {
	e := inventariotest.NewEntorno()
	numero := sembrarSolicitud(t, e, solicitud.EstadoCancelada, true)
	uc := nuevoUseCase(e)

	_, err := uc.Transicionar(context.Background(), numero, "EN_REVISION", "")
	assert.ErrorIs(t, err, domain.ErrTransicionInvalida)
}

func TestTransicionar_RechazadaVuelveARevision(t *testing.T) {
	e := inventariotest.NewEntorno()
	numero := sembrarSolicitud(t, e, solicitud.EstadoRechazada, true)
	uc := nuevoUseCase(e)

	out, err := uc.Transicionar(context.Background(), numero, "EN_REVISION", "reconsiderada")
	require.NoError(t, err)
	assert.Equal(t, string(solicitud.EstadoEnRevision), out.Estado)
}

// ──────────────────────── agregar medicamento ────────────────────────

func TestAgregarMedicamento_EnEstadoEditable(t *testing.T) {
	e := inventariotest.NewEntorno()
	numero := sembrarSolicitud(t, e, solicitud.EstadoIncompleta, true)
	uc := nuevoUseCase(e)

	out, err := uc.AgregarMedicamento(context.Background(), numero, dto.SolicitudMedicamentoInput{
		Nombre: "Ibuprofeno 400mg", Dosis: "1 cada 12 horas",
	})
	require.NoError(t, err)
	assert.Len(t, out.Medicamentos, 2)
}

func TestAgregarMedicamento_EnAprobadaNoSePuede(t *testing.T) {
	e := inventariotest.NewEntorno()
	numero := sembrarSolicitud(t, e, solicitud.EstadoAprobada, true)
	uc := nuevoUseCase(e)

	_, err := uc.AgregarMedicamento(context.Background(), numero, dto.SolicitudMedicamentoInput{Nombre: "Ibuprofeno"})
	assert.ErrorIs(t, err, domain.ErrEstadoInvalido)
}

func TestAgregarMedicamento_RequiereNombre(t *testing.T) {
	e := inventariotest.NewEntorno()
	numero := sembrarSolicitud(t, e, solicitud.EstadoPendiente, false)
	uc := nuevoUseCase(e)

	_, err := uc.AgregarMedicamento(context.Background(), numero, dto.SolicitudMedicamentoInput{})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ───────────────────────── agregar detalle ─────────────────────────

func entornoConCatalogo() *inventariotest.Entorno {
	return inventariotest.NewEntorno().
		ConMedicamento("MED-001", "Amoxicilina 500mg").
		ConLote("LOTE-A", "MED-001").
		ConAlmacen("ALM-1", "Almacén Central")
}

func TestAgregarDetalle_EnRevision(t *testing.T) {
	e := entornoConCatalogo()
	numero := sembrarSolicitud(t, e, solicitud.EstadoEnRevision, true)
	uc := nuevoUseCase(e)

	out, err := uc.AgregarDetalle(context.Background(), numero, dto.SolicitudDetalleInput{
		AlmacenID:    "ALM-1",
		LoteCodigo:   "LOTE-A",
		Cantidad:     decimal.NewFromInt(10),
		Indicaciones: "entregar en caja sellada",
	})
	require.NoError(t, err)
	require.Len(t, out.Detalles, 1)
	assert.Equal(t, "LOTE-A", out.Detalles[0].LoteCodigo)
}

func TestAgregarDetalle_SoloEnRevisionOAprobada(t *testing.T) {
	e := entornoConCatalogo()
	numero := sembrarSolicitud(t, e, solicitud.EstadoPendiente, true)
	uc := nuevoUseCase(e)

	_, err := uc.AgregarDetalle(context.Background(), numero, dto.SolicitudDetalleInput{
		AlmacenID: "ALM-1", LoteCodigo: "LOTE-A", Cantidad: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrEstadoInvalido)
}

func TestAgregarDetalle_AlmacenInexistente(t *testing.T) {
	e := entornoConCatalogo()
	numero := sembrarSolicitud(t, e, solicitud.EstadoEnRevision, true)
	uc := nuevoUseCase(e)

	_, err := uc.AgregarDetalle(context.Background(), numero, dto.SolicitudDetalleInput{
		AlmacenID: "ALM-X", LoteCodigo: "LOTE-A", Cantidad: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestAgregarDetalle_LoteInexistente(t *testing.T) {
	e := entornoConCatalogo()
	numero := sembrarSolicitud(t, e, solicitud.EstadoEnRevision, true)
	uc := nuevoUseCase(e)

	_, err := uc.AgregarDetalle(context.Background(), numero, dto.SolicitudDetalleInput{
		AlmacenID: "ALM-1", LoteCodigo: "LOTE-X", Cantidad: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestAgregarDetalle_CantidadNoPositiva(t *testing.T) {
	e := entornoConCatalogo()
	numero := sembrarSolicitud(t, e, solicitud.EstadoEnRevision, true)
	uc := nuevoUseCase(e)

	_, err := uc.AgregarDetalle(context.Background(), numero, dto.SolicitudDetalleInput{
		AlmacenID: "ALM-1", LoteCodigo: "LOTE-A", Cantidad: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ─────────────────────────────── listar ───────────────────────────────

func TestListar_FiltraPorEstado(t *testing.T) {
	e := inventariotest.NewEntorno()
	sembrarSolicitud(t, e, solicitud.EstadoPendiente, true)
	sembrarSolicitud(t, e, solicitud.EstadoAprobada, true)
	sembrarSolicitud(t, e, solicitud.EstadoPendiente, true)
	uc := nuevoUseCase(e)

	out, err := uc.Listar(context.Background(), "PENDIENTE", 20, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}

func TestListar_EstadoDesconocido(t *testing.T) {
	uc := nuevoUseCase(inventariotest.NewEntorno())

	_, err := uc.Listar(context.Background(), "LIMBO", 20, 0)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
