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

var _ repository.DonacionRepository = (*DonacionRepo)(nil)

// DonacionRepo implementación sobre PostgreSQL (usable con pool o tx).
type DonacionRepo struct {
	q Querier
}

// NewDonacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDonacionRepository(q Querier) *DonacionRepo {
	return &DonacionRepo{q: q}
}

func (r *DonacionRepo) Create(d *entity.Donacion) error {
	query := `
		INSERT INTO donaciones (proveedor_id, descripcion, creado_en)
		VALUES ($1, $2, $3)
		RETURNING numero`
	err := r.q.QueryRow(context.Background(), query, d.ProveedorID, d.Descripcion, d.CreadoEn).Scan(&d.Numero)
	if err != nil {
		return fmt.Errorf("insert donacion: %w", err)
	}
	return nil
}

// GetByNumero devuelve la donación con sus líneas cargadas.
func (r *DonacionRepo) GetByNumero(numero int64) (*entity.Donacion, error) {
	query := `SELECT numero, proveedor_id, descripcion, creado_en FROM donaciones WHERE numero = $1`
	var d entity.Donacion
	err := r.q.QueryRow(context.Background(), query, numero).Scan(&d.Numero, &d.ProveedorID, &d.Descripcion, &d.CreadoEn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get donacion: %w", err)
	}
	if d.Medicamentos, err = r.ListLineas(numero); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DonacionRepo) List(limit, offset int) ([]*entity.Donacion, error) {
	query := `
		SELECT numero, proveedor_id, descripcion, creado_en
		FROM donaciones ORDER BY numero DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list donaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Donacion
	for rows.Next() {
		var d entity.Donacion
		if err := rows.Scan(&d.Numero, &d.ProveedorID, &d.Descripcion, &d.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan donacion: %w", err)
		}
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, d := range list {
		if d.Medicamentos, err = r.ListLineas(d.Numero); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *DonacionRepo) Delete(numero int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM donaciones WHERE numero = $1`, numero)
	if err != nil {
		return fmt.Errorf("delete donacion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: donación %d", domain.ErrNotFound, numero)
	}
	return nil
}

func (r *DonacionRepo) AddLinea(l *entity.DonacionMedicamento) error {
	query := `
		INSERT INTO donacion_medicamentos (id, donacion_numero, almacen_id, lote_codigo, cantidad)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, l.ID, l.DonacionNumero, l.AlmacenID, l.LoteCodigo, l.Cantidad)
	if err != nil {
		return fmt.Errorf("insert donacion medicamento: %w", err)
	}
	return nil
}

func (r *DonacionRepo) ListLineas(numero int64) ([]entity.DonacionMedicamento, error) {
	query := `
		SELECT id, donacion_numero, almacen_id, lote_codigo, cantidad
		FROM donacion_medicamentos WHERE donacion_numero = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, numero)
	if err != nil {
		return nil, fmt.Errorf("list donacion medicamentos: %w", err)
	}
	defer rows.Close()
	var list []entity.DonacionMedicamento
	for rows.Next() {
		var l entity.DonacionMedicamento
		if err := rows.Scan(&l.ID, &l.DonacionNumero, &l.AlmacenID, &l.LoteCodigo, &l.Cantidad); err != nil {
			return nil, fmt.Errorf("scan donacion medicamento: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func (r *DonacionRepo) DeleteLineas(numero int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM donacion_medicamentos WHERE donacion_numero = $1`, numero)
	if err != nil {
		return fmt.Errorf("delete donacion medicamentos: %w", err)
	}
	return nil
}
