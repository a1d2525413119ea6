package donacion_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donamed/donamed-api/internal/application/donacion"
	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/application/inventario"
	"github.com/donamed/donamed-api/internal/application/inventario/inventariotest"
	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
)

const (
	rncProveedor  = "131456789"
	registradoPor = "user-donaciones"
)

func entornoDonacion() *inventariotest.Entorno {
	return inventariotest.NewEntorno().
		ConMedicamento("MED-001", "Amoxicilina 500mg").
		ConMedicamento("MED-002", "Loratadina 10mg").
		ConLote("LOTE-A", "MED-001").
		ConLote("LOTE-B", "MED-002").
		ConAlmacen("ALM-1", "Almacén Central").
		ConProveedor(rncProveedor, "Farmacéutica del Caribe")
}

func nuevoUseCase(e *inventariotest.Entorno) *donacion.UseCase {
	return donacion.NewUseCase(e.Tx, inventario.NewLedger(), e.Donaciones, e.Proveedores, e.Almacenes, e.Lotes)
}

func keyLoteA() entity.StockKey {
	return entity.StockKey{AlmacenID: "ALM-1", MedicamentoCodigo: "MED-001", LoteCodigo: "LOTE-A"}
}

// ─────────────────────────────── crear ───────────────────────────────

func TestCrear_AcreditaCadaLinea(t *testing.T) {
	e := entornoDonacion()
	uc := nuevoUseCase(e)

	out, err := uc.Crear(context.Background(), dto.CrearDonacionRequest{
		ProveedorID: rncProveedor,
		Descripcion: "donación trimestral",
		Lineas: []dto.DonacionLineaInput{
			{AlmacenID: "ALM-1", LoteCodigo: "LOTE-A", Cantidad: decimal.NewFromInt(100)},
			{AlmacenID: "ALM-1", LoteCodigo: "LOTE-B", Cantidad: decimal.NewFromInt(50)},
		},
	}, registradoPor)
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.Numero)
	assert.Len(t, out.Lineas, 2)

	assert.True(t, e.Stock.Cantidad(keyLoteA()).Equal(decimal.NewFromInt(100)))
	assert.True(t, e.Medicamentos.Disponible("MED-001").Equal(decimal.NewFromInt(100)))
	assert.True(t, e.Medicamentos.Disponible("MED-002").Equal(decimal.NewFromInt(50)))

	movs, err := e.Movimientos.ListByReferencia("donacion-1")
	require.NoError(t, err)
	require.Len(t, movs, 2, "cada línea deja su movimiento ENTRADA")
	for _, m := range movs {
		assert.Equal(t, entity.MovimientoENTRADA, m.Tipo)
		assert.Equal(t, registradoPor, m.CreadoPor)
	}
}

func TestCrear_SinProveedorEsValido(t *testing.T) {
	e := entornoDonacion()
	uc := nuevoUseCase(e)

	out, err := uc.Crear(context.Background(), dto.CrearDonacionRequest{
		Lineas: []dto.DonacionLineaInput{
			{AlmacenID: "ALM-1", LoteCodigo: "LOTE-A", Cantidad: decimal.NewFromInt(10)},
		},
	}, registradoPor)
	require.NoError(t, err)
	assert.Empty(t, out.ProveedorID)
}

func TestCrear_SinLineas(t *testing.T) {
	uc := nuevoUseCase(entornoDonacion())

	_, err := uc.Crear(context.Background(), dto.CrearDonacionRequest{}, registradoPor)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestCrear_ProveedorMalFormado(t *testing.T) {
	uc := nuevoUseCase(entornoDonacion())

	// Ni RNC de 9 dígitos ni cédula de 11.
	for _, id := range []string{"12345", "1234567890", "abcdefghi"} {
		_, err := uc.Crear(context.Background(), dto.CrearDonacionRequest{
			ProveedorID: id,
			Lineas:      []dto.DonacionLineaInput{{AlmacenID: "ALM-1", LoteCodigo: "LOTE-A", Cantidad: decimal.NewFromInt(1)}},
		}, registradoPor)
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "proveedor %q", id)
	}
}

func TestCrear_ProveedorNoRegistrado(t *testing.T) {
	uc := nuevoUseCase(entornoDonacion())

	_, err := uc.Crear(context.Background(), dto.CrearDonacionRequest{
		ProveedorID: "999888777",
		Lineas:      []dto.DonacionLineaInput{{AlmacenID: "ALM-1", LoteCodigo: "LOTE-A", Cantidad: decimal.NewFromInt(1)}},
	}, registradoPor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrear_LoteInexistente(t *testing.T) {
	e := entornoDonacion()
	uc := nuevoUseCase(e)

	_, err := uc.Crear(context.Background(), dto.CrearDonacionRequest{
		Lineas: []dto.DonacionLineaInput{{AlmacenID: "ALM-1", LoteCodigo: "LOTE-X", Cantidad: decimal.NewFromInt(1)}},
	}, registradoPor)
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Empty(t, e.Movimientos.Filas, "la validación falla antes de cualquier escritura")
}

func TestCrear_AlmacenInexistente(t *testing.T) {
	uc := nuevoUseCase(entornoDonacion())

	_, err := uc.Crear(context.Background(), dto.CrearDonacionRequest{
		Lineas: []dto.DonacionLineaInput{{AlmacenID: "ALM-X", LoteCodigo: "LOTE-A", Cantidad: decimal.NewFromInt(1)}},
	}, registradoPor)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestCrear_CantidadNoPositiva(t *testing.T) {
	uc := nuevoUseCase(entornoDonacion())

	_, err := uc.Crear(context.Background(), dto.CrearDonacionRequest{
		Lineas: []dto.DonacionLineaInput{{AlmacenID: "ALM-1", LoteCodigo: "LOTE-A", Cantidad: decimal.Zero}},
	}, registradoPor)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ─────────────────────────── agregar líneas ───────────────────────────

func TestAgregarLineas_EsAditivo(t *testing.T) {
	e := entornoDonacion()
	uc := nuevoUseCase(e)

	creada, err := uc.Crear(context.Background(), dto.CrearDonacionRequest{
		Lineas: []dto.DonacionLineaInput{{AlmacenID: "ALM-1", LoteCodigo: "LOTE-A", Cantidad: decimal.NewFromInt(10)}},
	}, registradoPor)
	require.NoError(t, err)

	out, err := uc.AgregarLineas(context.Background(), creada.Numero, dto.AgregarLineasRequest{
		Lineas: []dto.DonacionLineaInput{{AlmacenID: "ALM-1", LoteCodigo: "LOTE-B", Cantidad: decimal.NewFromInt(5)}},
	}, registradoPor)
	require.NoError(t, err)

	assert.Len(t, out.Lineas, 2, "las líneas previas se conservan")
	assert.True(t, e.Medicamentos.Disponible("MED-002").Equal(decimal.NewFromInt(5)))

	movs, err := e.Movimientos.ListByReferencia("donacion-1")
	require.NoError(t, err)
	assert.Len(t, movs, 2, "el crédito nuevo usa la misma referencia de la donación")
}

func TestAgregarLineas_DonacionInexistente(t *testing.T) {
	uc := nuevoUseCase(entornoDonacion())

	_, err := uc.AgregarLineas(context.Background(), 999, dto.AgregarLineasRequest{
		Lineas: []dto.DonacionLineaInput{{AlmacenID: "ALM-1", LoteCodigo: "LOTE-A", Cantidad: decimal.NewFromInt(1)}},
	}, registradoPor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ────────────────────────────── eliminar ──────────────────────────────

func TestEliminar_RevierteElCreditoExacto(t *testing.T) {
	e := entornoDonacion()
	uc := nuevoUseCase(e)

	creada, err := uc.Crear(context.Background(), dto.CrearDonacionRequest{
		Lineas: []dto.DonacionLineaInput{
			{AlmacenID: "ALM-1", LoteCodigo: "LOTE-A", Cantidad: decimal.NewFromInt(30)},
			{AlmacenID: "ALM-1", LoteCodigo: "LOTE-B", Cantidad: decimal.NewFromInt(20)},
		},
	}, registradoPor)
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(context.Background(), creada.Numero, registradoPor))

	assert.True(t, e.Stock.Cantidad(keyLoteA()).IsZero(), "el crédito se revierte unidad por unidad")
	assert.True(t, e.Medicamentos.Disponible("MED-001").IsZero())
	assert.True(t, e.Medicamentos.Disponible("MED-002").IsZero())

	borrada, err := e.Donaciones.GetByNumero(creada.Numero)
	require.NoError(t, err)
	assert.Nil(t, borrada)

	reversos, err := e.Movimientos.ListByReferencia("donacion-1-reverso")
	require.NoError(t, err)
	require.Len(t, reversos, 2)
	for _, m := range reversos {
		assert.Equal(t, entity.MovimientoSALIDA, m.Tipo)
		assert.True(t, m.Cantidad.IsNegative())
	}
}

func TestEliminar_FallaSiElStockYaSalio(t *testing.T) {
	e := entornoDonacion()
	uc := nuevoUseCase(e)

	creada, err := uc.Crear(context.Background(), dto.CrearDonacionRequest{
		Lineas: []dto.DonacionLineaInput{{AlmacenID: "ALM-1", LoteCodigo: "LOTE-A", Cantidad: decimal.NewFromInt(10)}},
	}, registradoPor)
	require.NoError(t, err)

	// Parte del stock donado ya fue despachada: el reverso no alcanza.
	ledger := inventario.NewLedger()
	require.NoError(t, ledger.Debitar(e.Repos(), "ALM-1", "LOTE-A", decimal.NewFromInt(4), "despacho-1", "user-almacen", time.Now()))

	err = uc.Eliminar(context.Background(), creada.Numero, registradoPor)
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)

	sigue, err := e.Donaciones.GetByNumero(creada.Numero)
	require.NoError(t, err)
	assert.NotNil(t, sigue, "la donación no se borra si el reverso falla")
}

func TestEliminar_DonacionInexistente(t *testing.T) {
	uc := nuevoUseCase(entornoDonacion())

	err := uc.Eliminar(context.Background(), 999, registradoPor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
