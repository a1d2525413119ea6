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

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación sobre PostgreSQL (usable con pool o tx).
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

func (r *ProveedorRepo) Create(p *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (id, nombre, telefono, email, direccion, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Nombre, p.Telefono, p.Email, p.Direccion, p.CreadoEn)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: proveedor %s ya registrado", domain.ErrConflicto, p.ID)
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	query := `SELECT id, nombre, telefono, email, direccion, creado_en FROM proveedores WHERE id = $1`
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Telefono, &p.Email, &p.Direccion, &p.CreadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

func (r *ProveedorRepo) List(limit, offset int) ([]*entity.Proveedor, error) {
	query := `
		SELECT id, nombre, telefono, email, direccion, creado_en
		FROM proveedores ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Telefono, &p.Email, &p.Direccion, &p.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProveedorRepo) Update(p *entity.Proveedor) error {
	query := `
		UPDATE proveedores
		SET nombre = $2, telefono = $3, email = $4, direccion = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, p.ID, p.Nombre, p.Telefono, p.Email, p.Direccion)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, p.ID)
	}
	return nil
}
