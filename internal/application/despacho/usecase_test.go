package despacho_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donamed/donamed-api/internal/application/despacho"
	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/application/inventario"
	"github.com/donamed/donamed-api/internal/application/inventario/inventariotest"
	appsolicitud "github.com/donamed/donamed-api/internal/application/solicitud"
	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/solicitud"
)

const (
	cedulaReceptor = "00187654321"
	despachadoPor  = "user-almacen"
)

// entornoDespachable deja una solicitud APROBADA con un detalle de 10
// unidades del LOTE-A en ALM-1, y 25 unidades en stock.
func entornoDespachable(t *testing.T) (*inventariotest.Entorno, int64) {
	t.Helper()
	e := inventariotest.NewEntorno().
		ConMedicamento("MED-001", "Amoxicilina 500mg").
		ConLote("LOTE-A", "MED-001").
		ConAlmacen("ALM-1", "Almacén Central").
		ConPersona(cedulaReceptor, "Juana").
		ConStock("ALM-1", "MED-001", "LOTE-A", decimal.NewFromInt(25))

	s := &entity.Solicitud{UsuarioID: "user-1", Estado: solicitud.EstadoAprobada}
	require.NoError(t, e.Solicitudes.Create(s))
	require.NoError(t, e.Solicitudes.AddDetalle(&entity.SolicitudDetalle{
		ID:              "det-1",
		SolicitudNumero: s.Numero,
		AlmacenID:       "ALM-1",
		LoteCodigo:      "LOTE-A",
		Cantidad:        decimal.NewFromInt(10),
	}))
	return e, s.Numero
}

func nuevoUseCase(e *inventariotest.Entorno) *despacho.UseCase {
	return despacho.NewUseCase(e.Tx, inventario.NewLedger(), e.Personas, e.Despachos)
}

// ─────────────────────────────── crear ───────────────────────────────

func TestCrear_DespachaSolicitudAprobada(t *testing.T) {
	e, numero := entornoDespachable(t)
	uc := nuevoUseCase(e)

	out, err := uc.Crear(context.Background(), numero, cedulaReceptor, despachadoPor)
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.Numero)
	assert.Equal(t, numero, out.SolicitudNumero)
	assert.Equal(t, cedulaReceptor, out.CedulaReceptor)

	// La solicitud queda DESPACHADA y el stock debitado en una operación.
	s, err := e.Solicitudes.GetByNumero(numero)
	require.NoError(t, err)
	assert.Equal(t, solicitud.EstadoDespachada, s.Estado)

	key := entity.StockKey{AlmacenID: "ALM-1", MedicamentoCodigo: "MED-001", LoteCodigo: "LOTE-A"}
	assert.True(t, e.Stock.Cantidad(key).Equal(decimal.NewFromInt(15)), "25 - 10 = 15")
	assert.True(t, e.Medicamentos.Disponible("MED-001").Equal(decimal.NewFromInt(15)))

	movs, err := e.Movimientos.ListByReferencia("despacho-1")
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimientoSALIDA, movs[0].Tipo)
	assert.Equal(t, despachadoPor, movs[0].CreadoPor)
}

func TestCrear_SinReceptorEsValido(t *testing.T) {
	e, numero := entornoDespachable(t)
	uc := nuevoUseCase(e)

	out, err := uc.Crear(context.Background(), numero, "", despachadoPor)
	require.NoError(t, err)
	assert.Empty(t, out.CedulaReceptor)
}

func TestCrear_SoloDesdeAprobada(t *testing.T) {
	e, _ := entornoDespachable(t)
	uc := nuevoUseCase(e)

	pendiente := &entity.Solicitud{UsuarioID: "user-2", Estado: solicitud.EstadoPendiente}
	require.NoError(t, e.Solicitudes.Create(pendiente))

	_, err := uc.Crear(context.Background(), pendiente.Numero, "", despachadoPor)
	assert.ErrorIs(t, err, domain.ErrEstadoInvalido)
}

func TestCrear_SolicitudInexistente(t *testing.T) {
	e, _ := entornoDespachable(t)
	uc := nuevoUseCase(e)

	_, err := uc.Crear(context.Background(), 999, "", despachadoPor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrear_UnSoloDespachoPorSolicitud(t *testing.T) {
	e, numero := entornoDespachable(t)
	uc := nuevoUseCase(e)

	_, err := uc.Crear(context.Background(), numero, "", despachadoPor)
	require.NoError(t, err)

	// La solicitud quedó DESPACHADA, pero el error es conflicto: el despacho
	// existente pesa más que el estado en que esté la solicitud.
	_, err = uc.Crear(context.Background(), numero, "", despachadoPor)
	assert.ErrorIs(t, err, domain.ErrConflicto)
}

func TestCrear_ConflictoConDespachoExistente(t *testing.T) {
	e, numero := entornoDespachable(t)
	uc := nuevoUseCase(e)

	_, err := uc.Crear(context.Background(), numero, "", despachadoPor)
	require.NoError(t, err)

	// La solicitud vuelve a APROBADA (eliminación parcial, carrera), pero el
	// despacho sigue existiendo: la relación 1:1 bloquea el segundo.
	require.NoError(t, e.Solicitudes.UpdateEstado(numero, solicitud.EstadoAprobada, "", time.Now()))

	_, err = uc.Crear(context.Background(), numero, "", despachadoPor)
	assert.ErrorIs(t, err, domain.ErrConflicto)
}

func TestCrear_CedulaMalFormada(t *testing.T) {
	e, numero := entornoDespachable(t)
	uc := nuevoUseCase(e)

	for _, cedula := range []string{"123", "abcdefghijk", "001876543210"} {
		_, err := uc.Crear(context.Background(), numero, cedula, despachadoPor)
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "cédula %q", cedula)
	}
}

func TestCrear_ReceptorDesconocido(t *testing.T) {
	e, numero := entornoDespachable(t)
	uc := nuevoUseCase(e)

	_, err := uc.Crear(context.Background(), numero, "00100000000", despachadoPor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrear_SinStockSuficiente(t *testing.T) {
	e, numero := entornoDespachable(t)
	uc := nuevoUseCase(e)

	// El detalle pide 10 pero solo quedan 4.
	require.NoError(t, e.Stock.Upsert(&entity.Stock{
		AlmacenID: "ALM-1", MedicamentoCodigo: "MED-001", LoteCodigo: "LOTE-A",
		Cantidad: decimal.NewFromInt(4),
	}))

	_, err := uc.Crear(context.Background(), numero, "", despachadoPor)
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
}

// TestFlujoCompleto recorre el ciclo entero: la solicitud nace PENDIENTE,
// pasa por revisión y aprobación, recibe su asignación y termina despachada
// con el inventario debitado.
func TestFlujoCompleto_DePendienteADespachada(t *testing.T) {
	e := inventariotest.NewEntorno().
		ConMedicamento("MED-001", "Amoxicilina 500mg").
		ConLote("L-1", "MED-001").
		ConAlmacen("ALM-10", "Almacén 10").
		ConStock("ALM-10", "MED-001", "L-1", decimal.NewFromInt(50))
	solicitudUC := appsolicitud.NewUseCase(e.Tx, e.Solicitudes, e.Almacenes, e.Lotes)
	despachoUC := nuevoUseCase(e)

	creada, err := solicitudUC.Crear(context.Background(), "user-1", dto.CrearSolicitudRequest{
		Medicamentos: []dto.SolicitudMedicamentoInput{{Nombre: "Amoxicilina 500mg"}},
	})
	require.NoError(t, err)

	_, err = solicitudUC.Transicionar(context.Background(), creada.Numero, "EN_REVISION", "")
	require.NoError(t, err)
	_, err = solicitudUC.Transicionar(context.Background(), creada.Numero, "APROBADA", "")
	require.NoError(t, err)

	_, err = solicitudUC.AgregarDetalle(context.Background(), creada.Numero, dto.SolicitudDetalleInput{
		AlmacenID: "ALM-10", LoteCodigo: "L-1", Cantidad: decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	_, err = despachoUC.Crear(context.Background(), creada.Numero, "", despachadoPor)
	require.NoError(t, err)

	s, err := e.Solicitudes.GetByNumero(creada.Numero)
	require.NoError(t, err)
	assert.Equal(t, solicitud.EstadoDespachada, s.Estado)

	key := entity.StockKey{AlmacenID: "ALM-10", MedicamentoCodigo: "MED-001", LoteCodigo: "L-1"}
	assert.True(t, e.Stock.Cantidad(key).Equal(decimal.NewFromInt(45)), "50 - 5 = 45")
	assert.True(t, e.Medicamentos.Disponible("MED-001").Equal(decimal.NewFromInt(45)))
}

// ────────────────────────────── eliminar ──────────────────────────────

func TestEliminar_RevierteLaSolicitudAAprobada(t *testing.T) {
	e, numero := entornoDespachable(t)
	uc := nuevoUseCase(e)

	out, err := uc.Crear(context.Background(), numero, "", despachadoPor)
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(context.Background(), out.Numero))

	s, err := e.Solicitudes.GetByNumero(numero)
	require.NoError(t, err)
	assert.Equal(t, solicitud.EstadoAprobada, s.Estado)

	d, err := e.Despachos.GetByNumero(out.Numero)
	require.NoError(t, err)
	assert.Nil(t, d)

	// El stock debitado no se reacredita: eso exige un ajuste manual.
	key := entity.StockKey{AlmacenID: "ALM-1", MedicamentoCodigo: "MED-001", LoteCodigo: "LOTE-A"}
	assert.True(t, e.Stock.Cantidad(key).Equal(decimal.NewFromInt(15)))
}

func TestEliminar_DespachoInexistente(t *testing.T) {
	e, _ := entornoDespachable(t)
	uc := nuevoUseCase(e)

	err := uc.Eliminar(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─────────────────────────────── acta ───────────────────────────────

// generadorStub captura los datos que el caso de uso resolvió para el acta.
type generadorStub struct {
	despacho *entity.Despacho
	receptor *entity.Persona
	lineas   []despacho.ActaLinea
}

func (g *generadorStub) GenerarActa(_ context.Context, d *entity.Despacho, _ *entity.Solicitud, receptor *entity.Persona, lineas []despacho.ActaLinea) ([]byte, error) {
	g.despacho, g.receptor, g.lineas = d, receptor, lineas
	return []byte("%PDF-stub"), nil
}

func TestGenerarActa_ResuelveNombresParaImpresion(t *testing.T) {
	e, numero := entornoDespachable(t)
	creado, err := nuevoUseCase(e).Crear(context.Background(), numero, cedulaReceptor, despachadoPor)
	require.NoError(t, err)

	stub := &generadorStub{}
	acta := despacho.NewActaUseCase(e.Despachos, e.Solicitudes, e.Personas, e.Lotes, e.Medicamentos, e.Almacenes, stub)

	pdf, err := acta.GenerarActa(context.Background(), creado.Numero)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	require.NotNil(t, stub.receptor)
	assert.Equal(t, cedulaReceptor, stub.receptor.Cedula)
	require.Len(t, stub.lineas, 1)
	assert.Equal(t, "Amoxicilina 500mg", stub.lineas[0].MedicamentoNombre)
	assert.Equal(t, "Almacén Central", stub.lineas[0].AlmacenNombre)
	assert.Equal(t, "LOTE-A", stub.lineas[0].LoteCodigo)
}

func TestGenerarActa_DespachoInexistente(t *testing.T) {
	e, _ := entornoDespachable(t)
	acta := despacho.NewActaUseCase(e.Despachos, e.Solicitudes, e.Personas, e.Lotes, e.Medicamentos, e.Almacenes, &generadorStub{})

	_, err := acta.GenerarActa(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
