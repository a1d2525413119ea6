package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
)

var _ repository.AlmacenRepository = (*AlmacenRepo)(nil)

// AlmacenRepo implementación sobre PostgreSQL (usable con pool o tx).
type AlmacenRepo struct {
	q Querier
}

// NewAlmacenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlmacenRepository(q Querier) *AlmacenRepo {
	return &AlmacenRepo{q: q}
}

// Create persiste un almacén nuevo.
func (r *AlmacenRepo) Create(a *entity.Almacen) error {
	query := `
		INSERT INTO almacenes (id, nombre, direccion, municipio_id, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Nombre, a.Direccion, a.MunicipioID, a.CreadoEn, a.ActualizadoEn,
	)
	if err != nil {
		return fmt.Errorf("insert almacen: %w", err)
	}
	return nil
}

// GetByID obtiene un almacén por ID.
func (r *AlmacenRepo) GetByID(id string) (*entity.Almacen, error) {
	query := `
		SELECT id, nombre, direccion, municipio_id, creado_en, actualizado_en
		FROM almacenes WHERE id = $1`
	var a entity.Almacen
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Nombre, &a.Direccion, &a.MunicipioID, &a.CreadoEn, &a.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get almacen: %w", err)
	}
	return &a, nil
}

// Update actualiza un almacén existente.
func (r *AlmacenRepo) Update(a *entity.Almacen) error {
	query := `
		UPDATE almacenes SET nombre = $2, direccion = $3, municipio_id = $4, actualizado_en = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, a.ID, a.Nombre, a.Direccion, a.MunicipioID, a.ActualizadoEn)
	if err != nil {
		return fmt.Errorf("update almacen: %w", err)
	}
	return nil
}

// List lista almacenes con paginación.
func (r *AlmacenRepo) List(limit, offset int) ([]*entity.Almacen, error) {
	query := `
		SELECT id, nombre, direccion, municipio_id, creado_en, actualizado_en
		FROM almacenes ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list almacenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Almacen
	for rows.Next() {
		var a entity.Almacen
		if err := rows.Scan(&a.ID, &a.Nombre, &a.Direccion, &a.MunicipioID, &a.CreadoEn, &a.ActualizadoEn); err != nil {
			return nil, fmt.Errorf("scan almacen: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina un almacén por ID.
func (r *AlmacenRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM almacenes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete almacen: %w", err)
	}
	return nil
}
