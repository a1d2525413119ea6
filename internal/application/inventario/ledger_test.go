package inventario_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donamed/donamed-api/internal/application/inventario"
	"github.com/donamed/donamed-api/internal/application/inventario/inventariotest"
	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
)

var ahora = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

const usuarioLedger = "user-inventario"

func entornoConLote() *inventariotest.Entorno {
	return inventariotest.NewEntorno().
		ConMedicamento("MED-001", "Amoxicilina 500mg").
		ConLote("LOTE-A", "MED-001").
		ConAlmacen("ALM-1", "Almacén Central")
}

func llave() entity.StockKey {
	return entity.StockKey{AlmacenID: "ALM-1", MedicamentoCodigo: "MED-001", LoteCodigo: "LOTE-A"}
}

// ─────────────────────────────── acreditar ───────────────────────────────

func TestLedger_AcreditarCreaLaCelda(t *testing.T) {
	e := entornoConLote()
	ledger := inventario.NewLedger()

	err := ledger.Acreditar(e.Repos(), llave(), decimal.NewFromInt(40), "donacion-1", usuarioLedger, ahora)
	require.NoError(t, err)

	assert.True(t, e.Stock.Cantidad(llave()).Equal(decimal.NewFromInt(40)), "la celda debe quedar en 40")
	assert.True(t, e.Medicamentos.Disponible("MED-001").Equal(decimal.NewFromInt(40)), "el total del medicamento debe subir en 40")

	movs, err := e.Movimientos.ListByReferencia("donacion-1")
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimientoENTRADA, movs[0].Tipo)
	assert.True(t, movs[0].Cantidad.Equal(decimal.NewFromInt(40)), "la ENTRADA se registra con cantidad positiva")
	assert.Equal(t, usuarioLedger, movs[0].CreadoPor, "el movimiento queda atribuido a quien lo ejecuta")
}

func TestLedger_AcreditarAcumulaSobreCeldaExistente(t *testing.T) {
	e := entornoConLote().ConStock("ALM-1", "MED-001", "LOTE-A", decimal.NewFromInt(10))
	ledger := inventario.NewLedger()

	err := ledger.Acreditar(e.Repos(), llave(), decimal.NewFromInt(5), "donacion-2", usuarioLedger, ahora)
	require.NoError(t, err)

	assert.True(t, e.Stock.Cantidad(llave()).Equal(decimal.NewFromInt(15)))
	assert.True(t, e.Medicamentos.Disponible("MED-001").Equal(decimal.NewFromInt(15)))
}

func TestLedger_AcreditarRechazaCantidadNoPositiva(t *testing.T) {
	e := entornoConLote()
	ledger := inventario.NewLedger()

	for _, cantidad := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-3)} {
		err := ledger.Acreditar(e.Repos(), llave(), cantidad, "donacion-3", usuarioLedger, ahora)
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "cantidad %s", cantidad)
	}
	assert.Empty(t, e.Movimientos.Filas, "no debe registrarse ningún movimiento")
}

// ─────────────────────────────── debitar ───────────────────────────────

func TestLedger_DebitarRestaDeCeldaYTotal(t *testing.T) {
	e := entornoConLote().ConStock("ALM-1", "MED-001", "LOTE-A", decimal.NewFromInt(30))
	ledger := inventario.NewLedger()

	err := ledger.Debitar(e.Repos(), "ALM-1", "LOTE-A", decimal.NewFromInt(12), "despacho-7", usuarioLedger, ahora)
	require.NoError(t, err)

	assert.True(t, e.Stock.Cantidad(llave()).Equal(decimal.NewFromInt(18)))
	assert.True(t, e.Medicamentos.Disponible("MED-001").Equal(decimal.NewFromInt(18)))

	movs, err := e.Movimientos.ListByReferencia("despacho-7")
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimientoSALIDA, movs[0].Tipo)
	assert.True(t, movs[0].Cantidad.Equal(decimal.NewFromInt(-12)), "la SALIDA se registra con cantidad negativa")
}

func TestLedger_DebitarLoteInexistente(t *testing.T) {
	e := entornoConLote()
	ledger := inventario.NewLedger()

	err := ledger.Debitar(e.Repos(), "ALM-1", "LOTE-FANTASMA", decimal.NewFromInt(1), "despacho-8", usuarioLedger, ahora)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedger_DebitarSinStockSuficiente(t *testing.T) {
	e := entornoConLote().ConStock("ALM-1", "MED-001", "LOTE-A", decimal.NewFromInt(5))
	ledger := inventario.NewLedger()

	err := ledger.Debitar(e.Repos(), "ALM-1", "LOTE-A", decimal.NewFromInt(6), "despacho-9", usuarioLedger, ahora)
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)

	// La celda no debe haberse tocado: el débito falla antes de escribir.
	assert.True(t, e.Stock.Cantidad(llave()).Equal(decimal.NewFromInt(5)))
	assert.True(t, e.Medicamentos.Disponible("MED-001").Equal(decimal.NewFromInt(5)))
	assert.Empty(t, e.Movimientos.Filas)
}

func TestLedger_DebitarCeldaInexistenteEsInsuficiente(t *testing.T) {
	// El lote existe pero nunca entró stock en ese almacén: la celda vale cero.
	e := entornoConLote()
	ledger := inventario.NewLedger()

	err := ledger.Debitar(e.Repos(), "ALM-1", "LOTE-A", decimal.NewFromInt(1), "despacho-10", usuarioLedger, ahora)
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
}

func TestLedger_DebitarRechazaCantidadNoPositiva(t *testing.T) {
	e := entornoConLote().ConStock("ALM-1", "MED-001", "LOTE-A", decimal.NewFromInt(5))
	ledger := inventario.NewLedger()

	err := ledger.Debitar(e.Repos(), "ALM-1", "LOTE-A", decimal.Zero, "despacho-11", usuarioLedger, ahora)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ──────────────────────────── simetría ────────────────────────────

func TestLedger_CreditoYDebitoSonSimetricos(t *testing.T) {
	e := entornoConLote()
	ledger := inventario.NewLedger()

	require.NoError(t, ledger.Acreditar(e.Repos(), llave(), decimal.NewFromInt(25), "donacion-4", usuarioLedger, ahora))
	require.NoError(t, ledger.Debitar(e.Repos(), "ALM-1", "LOTE-A", decimal.NewFromInt(25), "despacho-12", usuarioLedger, ahora))

	assert.True(t, e.Stock.Cantidad(llave()).IsZero(), "la celda debe volver a cero")
	assert.True(t, e.Medicamentos.Disponible("MED-001").IsZero(), "el total debe volver a cero")
	assert.Len(t, e.Movimientos.Filas, 2, "cada mutación deja su movimiento")
}

func TestLedger_TotalDelMedicamentoEsLaSumaDeLasCeldas(t *testing.T) {
	e := inventariotest.NewEntorno().
		ConMedicamento("MED-001", "Amoxicilina 500mg").
		ConLote("LOTE-A", "MED-001").
		ConLote("LOTE-B", "MED-001").
		ConAlmacen("ALM-1", "Central").
		ConAlmacen("ALM-2", "Regional")
	ledger := inventario.NewLedger()

	keyA1 := entity.StockKey{AlmacenID: "ALM-1", MedicamentoCodigo: "MED-001", LoteCodigo: "LOTE-A"}
	keyB1 := entity.StockKey{AlmacenID: "ALM-1", MedicamentoCodigo: "MED-001", LoteCodigo: "LOTE-B"}
	keyA2 := entity.StockKey{AlmacenID: "ALM-2", MedicamentoCodigo: "MED-001", LoteCodigo: "LOTE-A"}

	require.NoError(t, ledger.Acreditar(e.Repos(), keyA1, decimal.NewFromInt(10), "donacion-5", usuarioLedger, ahora))
	require.NoError(t, ledger.Acreditar(e.Repos(), keyB1, decimal.NewFromInt(20), "donacion-5", usuarioLedger, ahora))
	require.NoError(t, ledger.Acreditar(e.Repos(), keyA2, decimal.NewFromInt(30), "donacion-6", usuarioLedger, ahora))
	require.NoError(t, ledger.Debitar(e.Repos(), "ALM-1", "LOTE-B", decimal.NewFromInt(5), "despacho-13", usuarioLedger, ahora))

	suma := decimal.Zero
	for _, key := range []entity.StockKey{keyA1, keyB1, keyA2} {
		suma = suma.Add(e.Stock.Cantidad(key))
	}
	assert.True(t, e.Medicamentos.Disponible("MED-001").Equal(suma),
		"el total disponible debe ser la suma de todas las celdas, es %s vs %s",
		e.Medicamentos.Disponible("MED-001"), suma)
	assert.True(t, suma.Equal(decimal.NewFromInt(55)))
}

// ─────────────────────────────── fijar ───────────────────────────────

func TestLedger_FijarEstableceValorLiteralYAjustaElTotal(t *testing.T) {
	e := entornoConLote().ConStock("ALM-1", "MED-001", "LOTE-A", decimal.NewFromInt(20))
	ledger := inventario.NewLedger()

	err := ledger.Fijar(e.Repos(), llave(), decimal.NewFromInt(8), "ajuste-abc", usuarioLedger, ahora)
	require.NoError(t, err)

	assert.True(t, e.Stock.Cantidad(llave()).Equal(decimal.NewFromInt(8)), "fijar no es un delta: la celda vale lo fijado")
	assert.True(t, e.Medicamentos.Disponible("MED-001").Equal(decimal.NewFromInt(8)), "el total se ajusta por la diferencia")

	movs, err := e.Movimientos.ListByReferencia("ajuste-abc")
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimientoAJUSTE, movs[0].Tipo)
	assert.True(t, movs[0].Cantidad.Equal(decimal.NewFromInt(-12)), "el AJUSTE registra el delta aplicado")
}

func TestLedger_FijarSobreCeldaInexistenteLaCrea(t *testing.T) {
	e := entornoConLote()
	ledger := inventario.NewLedger()

	err := ledger.Fijar(e.Repos(), llave(), decimal.NewFromInt(50), "ajuste-def", usuarioLedger, ahora)
	require.NoError(t, err)

	assert.True(t, e.Stock.Cantidad(llave()).Equal(decimal.NewFromInt(50)))
	assert.True(t, e.Medicamentos.Disponible("MED-001").Equal(decimal.NewFromInt(50)))
}

func TestLedger_FijarConDeltaCeroRegistraElMovimiento(t *testing.T) {
	e := entornoConLote().ConStock("ALM-1", "MED-001", "LOTE-A", decimal.NewFromInt(7))
	ledger := inventario.NewLedger()

	err := ledger.Fijar(e.Repos(), llave(), decimal.NewFromInt(7), "ajuste-ghi", usuarioLedger, ahora)
	require.NoError(t, err)

	assert.True(t, e.Medicamentos.Disponible("MED-001").Equal(decimal.NewFromInt(7)), "el total no cambia")
	movs, err := e.Movimientos.ListByReferencia("ajuste-ghi")
	require.NoError(t, err)
	require.Len(t, movs, 1, "aun sin delta el ajuste queda en el histórico")
	assert.True(t, movs[0].Cantidad.IsZero())
}

func TestLedger_FijarRechazaCantidadNegativa(t *testing.T) {
	e := entornoConLote()
	ledger := inventario.NewLedger()

	err := ledger.Fijar(e.Repos(), llave(), decimal.NewFromInt(-1), "ajuste-jkl", usuarioLedger, ahora)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestLedger_FijarACeroVaciaLaCelda(t *testing.T) {
	e := entornoConLote().ConStock("ALM-1", "MED-001", "LOTE-A", decimal.NewFromInt(9))
	ledger := inventario.NewLedger()

	err := ledger.Fijar(e.Repos(), llave(), decimal.Zero, "ajuste-mno", usuarioLedger, ahora)
	require.NoError(t, err)

	assert.True(t, e.Stock.Cantidad(llave()).IsZero())
	assert.True(t, e.Medicamentos.Disponible("MED-001").IsZero())
}
