package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
)

var _ repository.LoteRepository = (*LoteRepo)(nil)

// LoteRepo implementación sobre PostgreSQL (usable con pool o tx).
type LoteRepo struct {
	q Querier
}

// NewLoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

// Create persiste un lote nuevo. Traduce el código duplicado a ErrConflicto.
func (r *LoteRepo) Create(l *entity.Lote) error {
	query := `
		INSERT INTO lotes (codigo, medicamento_codigo, fecha_fabricacion, fecha_vencimiento, creado_en)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		l.Codigo, l.MedicamentoCodigo, l.FechaFabricacion, l.FechaVencimiento, l.CreadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: lote %s ya existe", domain.ErrConflicto, l.Codigo)
		}
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// GetByCodigo obtiene un lote por código.
func (r *LoteRepo) GetByCodigo(codigo string) (*entity.Lote, error) {
	query := `
		SELECT codigo, medicamento_codigo, fecha_fabricacion, fecha_vencimiento, creado_en
		FROM lotes WHERE codigo = $1`
	var l entity.Lote
	err := r.q.QueryRow(context.Background(), query, codigo).Scan(
		&l.Codigo, &l.MedicamentoCodigo, &l.FechaFabricacion, &l.FechaVencimiento, &l.CreadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return &l, nil
}

// ListByMedicamento lista lotes de un medicamento con paginación.
func (r *LoteRepo) ListByMedicamento(medicamentoCodigo string, limit, offset int) ([]*entity.Lote, error) {
	query := `
		SELECT codigo, medicamento_codigo, fecha_fabricacion, fecha_vencimiento, creado_en
		FROM lotes WHERE medicamento_codigo = $1 ORDER BY fecha_vencimiento LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, medicamentoCodigo, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lote
	for rows.Next() {
		var l entity.Lote
		if err := rows.Scan(&l.Codigo, &l.MedicamentoCodigo, &l.FechaFabricacion, &l.FechaVencimiento, &l.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete elimina un lote por código.
func (r *LoteRepo) Delete(codigo string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM lotes WHERE codigo = $1`, codigo)
	if err != nil {
		return fmt.Errorf("delete lote: %w", err)
	}
	return nil
}
