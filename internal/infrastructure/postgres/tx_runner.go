package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/donamed/donamed-api/internal/application/inventario"
)

// Ensure TxRunner implements inventario.TxRunner.
var _ inventario.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL, con los
// repositorios de los motores atados a esa tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos inventario.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := inventario.Repos{
		Stock:        NewStockRepository(tx),
		Medicamentos: NewMedicamentoRepository(tx),
		Lotes:        NewLoteRepository(tx),
		Movimientos:  NewMovimientoRepository(tx),
		Solicitudes:  NewSolicitudRepository(tx),
		Despachos:    NewDespachoRepository(tx),
		Donaciones:   NewDonacionRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
