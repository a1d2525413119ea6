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

var _ repository.DespachoRepository = (*DespachoRepo)(nil)

// DespachoRepo implementación sobre PostgreSQL (usable con pool o tx).
type DespachoRepo struct {
	q Querier
}

// NewDespachoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDespachoRepository(q Querier) *DespachoRepo {
	return &DespachoRepo{q: q}
}

// Create inserta el despacho. El constraint único sobre solicitud_numero
// garantiza el 1:1 con la solicitud; su violación se traduce a ErrConflicto.
func (r *DespachoRepo) Create(d *entity.Despacho) error {
	query := `
		INSERT INTO despachos (solicitud_numero, cedula_receptor, fecha_despacho)
		VALUES ($1, $2, $3)
		RETURNING numero`
	err := r.q.QueryRow(context.Background(), query, d.SolicitudNumero, d.CedulaReceptor, d.FechaDespacho).Scan(&d.Numero)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la solicitud %d ya tiene despacho", domain.ErrConflicto, d.SolicitudNumero)
		}
		return fmt.Errorf("insert despacho: %w", err)
	}
	return nil
}

func (r *DespachoRepo) GetByNumero(numero int64) (*entity.Despacho, error) {
	query := `SELECT numero, solicitud_numero, cedula_receptor, fecha_despacho FROM despachos WHERE numero = $1`
	return r.scanOne(query, numero)
}

func (r *DespachoRepo) GetBySolicitud(solicitudNumero int64) (*entity.Despacho, error) {
	query := `SELECT numero, solicitud_numero, cedula_receptor, fecha_despacho FROM despachos WHERE solicitud_numero = $1`
	return r.scanOne(query, solicitudNumero)
}

func (r *DespachoRepo) scanOne(query string, arg any) (*entity.Despacho, error) {
	var d entity.Despacho
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&d.Numero, &d.SolicitudNumero, &d.CedulaReceptor, &d.FechaDespacho,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get despacho: %w", err)
	}
	return &d, nil
}

func (r *DespachoRepo) List(limit, offset int) ([]*entity.Despacho, error) {
	query := `
		SELECT numero, solicitud_numero, cedula_receptor, fecha_despacho
		FROM despachos ORDER BY numero DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list despachos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Despacho
	for rows.Next() {
		var d entity.Despacho
		if err := rows.Scan(&d.Numero, &d.SolicitudNumero, &d.CedulaReceptor, &d.FechaDespacho); err != nil {
			return nil, fmt.Errorf("scan despacho: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *DespachoRepo) Delete(numero int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM despachos WHERE numero = $1`, numero)
	if err != nil {
		return fmt.Errorf("delete despacho: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: despacho %d", domain.ErrNotFound, numero)
	}
	return nil
}
