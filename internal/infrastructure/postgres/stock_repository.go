package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockCols = `almacen_id, medicamento_codigo, lote_codigo, cantidad, actualizado_en`

// Get obtiene la fila de stock de la celda; si no existe devuelve una fila
// en cero lista para upsert.
func (r *StockRepo) Get(key entity.StockKey) (*entity.Stock, error) {
	query := `
		SELECT ` + stockCols + `
		FROM stock WHERE almacen_id = $1 AND medicamento_codigo = $2 AND lote_codigo = $3`
	return r.scanOne(key, query)
}

// GetForUpdate obtiene la fila y la bloquea para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(key entity.StockKey) (*entity.Stock, error) {
	query := `
		SELECT ` + stockCols + `
		FROM stock WHERE almacen_id = $1 AND medicamento_codigo = $2 AND lote_codigo = $3
		FOR UPDATE`
	return r.scanOne(key, query)
}

func (r *StockRepo) scanOne(key entity.StockKey, query string) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, key.AlmacenID, key.MedicamentoCodigo, key.LoteCodigo).Scan(
		&s.AlmacenID, &s.MedicamentoCodigo, &s.LoteCodigo, &s.Cantidad, &s.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{
				AlmacenID:         key.AlmacenID,
				MedicamentoCodigo: key.MedicamentoCodigo,
				LoteCodigo:        key.LoteCodigo,
				Cantidad:          decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad de la celda.
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (almacen_id, medicamento_codigo, lote_codigo, cantidad, actualizado_en)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (almacen_id, medicamento_codigo, lote_codigo)
		DO UPDATE SET cantidad = EXCLUDED.cantidad, actualizado_en = now()`
	_, err := r.q.Exec(context.Background(), query,
		stock.AlmacenID, stock.MedicamentoCodigo, stock.LoteCodigo, stock.Cantidad,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByAlmacen lista las filas de stock de un almacén.
func (r *StockRepo) ListByAlmacen(almacenID string, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT ` + stockCols + `
		FROM stock WHERE almacen_id = $1 ORDER BY medicamento_codigo, lote_codigo LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, almacenID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	return scanStockRows(rows)
}

// ListByMedicamento lista todas las filas de stock de un medicamento.
func (r *StockRepo) ListByMedicamento(medicamentoCodigo string) ([]*entity.Stock, error) {
	query := `
		SELECT ` + stockCols + `
		FROM stock WHERE medicamento_codigo = $1 ORDER BY almacen_id, lote_codigo`
	rows, err := r.q.Query(context.Background(), query, medicamentoCodigo)
	if err != nil {
		return nil, fmt.Errorf("list stock por medicamento: %w", err)
	}
	defer rows.Close()
	return scanStockRows(rows)
}

func scanStockRows(rows pgx.Rows) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.AlmacenID, &s.MedicamentoCodigo, &s.LoteCodigo, &s.Cantidad, &s.ActualizadoEn); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
