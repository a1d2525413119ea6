package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación sobre PostgreSQL (usable con pool o tx).
// Las filas son de solo inserción; no hay update ni delete.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

func (r *MovimientoRepo) Create(m *entity.MovimientoInventario) error {
	query := `
		INSERT INTO movimientos_inventario
			(id, referencia, tipo, almacen_id, medicamento_codigo, lote_codigo, cantidad, fecha, creado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Referencia, m.Tipo, m.AlmacenID, m.MedicamentoCodigo, m.LoteCodigo, m.Cantidad, m.Fecha, m.CreadoPor,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

func (r *MovimientoRepo) ListByReferencia(referencia string) ([]*entity.MovimientoInventario, error) {
	query := `
		SELECT id, referencia, tipo, almacen_id, medicamento_codigo, lote_codigo, cantidad, fecha, creado_por
		FROM movimientos_inventario WHERE referencia = $1 ORDER BY fecha`
	rows, err := r.q.Query(context.Background(), query, referencia)
	if err != nil {
		return nil, fmt.Errorf("list movimientos por referencia: %w", err)
	}
	defer rows.Close()
	return scanMovimientoRows(rows)
}

func (r *MovimientoRepo) ListByMedicamento(medicamentoCodigo string, limit, offset int) ([]*entity.MovimientoInventario, error) {
	query := `
		SELECT id, referencia, tipo, almacen_id, medicamento_codigo, lote_codigo, cantidad, fecha, creado_por
		FROM movimientos_inventario WHERE medicamento_codigo = $1
		ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, medicamentoCodigo, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos por medicamento: %w", err)
	}
	defer rows.Close()
	return scanMovimientoRows(rows)
}

func scanMovimientoRows(rows pgx.Rows) ([]*entity.MovimientoInventario, error) {
	var list []*entity.MovimientoInventario
	for rows.Next() {
		var m entity.MovimientoInventario
		err := rows.Scan(&m.ID, &m.Referencia, &m.Tipo, &m.AlmacenID, &m.MedicamentoCodigo, &m.LoteCodigo, &m.Cantidad, &m.Fecha, &m.CreadoPor)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
