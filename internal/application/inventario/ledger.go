package inventario

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
)

// Ledger es el libro de inventario: el único componente que muta cantidades
// de stock (fila almacén+medicamento+lote y total global del medicamento).
// Sus métodos deben invocarse dentro de la transacción que también registra
// la operación que justifica el cambio (donación, despacho, ajuste); aplicar
// el stock sin registrar la operación, o al revés, es el fallo que este
// diseño evita.
type Ledger struct{}

// NewLedger construye el libro de inventario.
func NewLedger() *Ledger { return &Ledger{} }

// Acreditar suma cantidad a la fila de stock (la crea si no existe) y al
// total disponible del medicamento. Registra un movimiento ENTRADA atribuido
// al usuario que ejecuta la operación.
func (l *Ledger) Acreditar(r Repos, key entity.StockKey, cantidad decimal.Decimal, referencia, creadoPor string, ahora time.Time) error {
	if !cantidad.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: la cantidad a acreditar debe ser positiva", domain.ErrEntradaInvalida)
	}
	// Bloquea la fila (SELECT FOR UPDATE) para evitar lost updates concurrentes
	stock, err := r.Stock.GetForUpdate(key)
	if err != nil {
		return err
	}
	stock.Cantidad = stock.Cantidad.Add(cantidad)
	stock.ActualizadoEn = ahora
	if err := r.Stock.Upsert(stock); err != nil {
		return err
	}
	if err := r.Medicamentos.IncrementarDisponible(key.MedicamentoCodigo, cantidad); err != nil {
		return err
	}
	return r.Movimientos.Create(&entity.MovimientoInventario{
		ID:                uuid.New().String(),
		Referencia:        referencia,
		Tipo:              entity.MovimientoENTRADA,
		AlmacenID:         key.AlmacenID,
		MedicamentoCodigo: key.MedicamentoCodigo,
		LoteCodigo:        key.LoteCodigo,
		Cantidad:          cantidad,
		Fecha:             ahora,
		CreadoPor:         creadoPor,
	})
}

// Debitar resta cantidad de la fila de stock del lote en el almacén dado y
// del total del medicamento (derivado del lote). Falla con ErrNotFound si el
// lote no existe y con ErrStockInsuficiente si la resta dejaría la fila en
// negativo. Registra un movimiento SALIDA con cantidad negativa.
func (l *Ledger) Debitar(r Repos, almacenID, loteCodigo string, cantidad decimal.Decimal, referencia, creadoPor string, ahora time.Time) error {
	if !cantidad.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: la cantidad a debitar debe ser positiva", domain.ErrEntradaInvalida)
	}
	lote, err := r.Lotes.GetByCodigo(loteCodigo)
	if err != nil {
		return err
	}
	if lote == nil {
		return fmt.Errorf("%w: lote %s", domain.ErrNotFound, loteCodigo)
	}
	key := entity.StockKey{AlmacenID: almacenID, MedicamentoCodigo: lote.MedicamentoCodigo, LoteCodigo: loteCodigo}
	stock, err := r.Stock.GetForUpdate(key)
	if err != nil {
		return err
	}
	if stock.Cantidad.LessThan(cantidad) {
		return fmt.Errorf("%w: lote %s en almacén %s tiene %s, se requieren %s",
			domain.ErrStockInsuficiente, loteCodigo, almacenID, stock.Cantidad, cantidad)
	}
	stock.Cantidad = stock.Cantidad.Sub(cantidad)
	stock.ActualizadoEn = ahora
	if err := r.Stock.Upsert(stock); err != nil {
		return err
	}
	if err := r.Medicamentos.IncrementarDisponible(lote.MedicamentoCodigo, cantidad.Neg()); err != nil {
		return err
	}
	return r.Movimientos.Create(&entity.MovimientoInventario{
		ID:                uuid.New().String(),
		Referencia:        referencia,
		Tipo:              entity.MovimientoSALIDA,
		AlmacenID:         almacenID,
		MedicamentoCodigo: lote.MedicamentoCodigo,
		LoteCodigo:        loteCodigo,
		Cantidad:          cantidad.Neg(),
		Fecha:             ahora,
		CreadoPor:         creadoPor,
	})
}

// Fijar establece la cantidad literal de la fila de stock (override
// administrativo, distinto de los deltas de crédito/débito) y ajusta el total
// del medicamento por la diferencia. Registra un movimiento AJUSTE.
func (l *Ledger) Fijar(r Repos, key entity.StockKey, cantidad decimal.Decimal, referencia, creadoPor string, ahora time.Time) error {
	if cantidad.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: la cantidad fijada no puede ser negativa", domain.ErrEntradaInvalida)
	}
	stock, err := r.Stock.GetForUpdate(key)
	if err != nil {
		return err
	}
	delta := cantidad.Sub(stock.Cantidad)
	stock.Cantidad = cantidad
	stock.ActualizadoEn = ahora
	if err := r.Stock.Upsert(stock); err != nil {
		return err
	}
	if !delta.IsZero() {
		if err := r.Medicamentos.IncrementarDisponible(key.MedicamentoCodigo, delta); err != nil {
			return err
		}
	}
	return r.Movimientos.Create(&entity.MovimientoInventario{
		ID:                uuid.New().String(),
		Referencia:        referencia,
		Tipo:              entity.MovimientoAJUSTE,
		AlmacenID:         key.AlmacenID,
		MedicamentoCodigo: key.MedicamentoCodigo,
		LoteCodigo:        key.LoteCodigo,
		Cantidad:          delta,
		Fecha:             ahora,
		CreadoPor:         creadoPor,
	})
}
