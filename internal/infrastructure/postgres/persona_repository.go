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

var _ repository.PersonaRepository = (*PersonaRepo)(nil)

// PersonaRepo implementación sobre PostgreSQL (usable con pool o tx).
type PersonaRepo struct {
	q Querier
}

// NewPersonaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPersonaRepository(q Querier) *PersonaRepo {
	return &PersonaRepo{q: q}
}

func (r *PersonaRepo) Create(p *entity.Persona) error {
	query := `
		INSERT INTO personas (cedula, nombre, apellido, telefono, direccion, municipio_id, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.Cedula, p.Nombre, p.Apellido, p.Telefono, p.Direccion, p.MunicipioID, p.CreadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: cédula %s ya registrada", domain.ErrConflicto, p.Cedula)
		}
		return fmt.Errorf("insert persona: %w", err)
	}
	return nil
}

func (r *PersonaRepo) GetByCedula(cedula string) (*entity.Persona, error) {
	query := `
		SELECT cedula, nombre, apellido, telefono, direccion, municipio_id, creado_en
		FROM personas WHERE cedula = $1`
	var p entity.Persona
	err := r.q.QueryRow(context.Background(), query, cedula).Scan(
		&p.Cedula, &p.Nombre, &p.Apellido, &p.Telefono, &p.Direccion, &p.MunicipioID, &p.CreadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get persona: %w", err)
	}
	return &p, nil
}

func (r *PersonaRepo) List(limit, offset int) ([]*entity.Persona, error) {
	query := `
		SELECT cedula, nombre, apellido, telefono, direccion, municipio_id, creado_en
		FROM personas ORDER BY apellido, nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Persona
	for rows.Next() {
		var p entity.Persona
		if err := rows.Scan(&p.Cedula, &p.Nombre, &p.Apellido, &p.Telefono, &p.Direccion, &p.MunicipioID, &p.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan persona: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PersonaRepo) Update(p *entity.Persona) error {
	query := `
		UPDATE personas
		SET nombre = $2, apellido = $3, telefono = $4, direccion = $5, municipio_id = $6
		WHERE cedula = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.Cedula, p.Nombre, p.Apellido, p.Telefono, p.Direccion, p.MunicipioID,
	)
	if err != nil {
		return fmt.Errorf("update persona: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: persona %s", domain.ErrNotFound, p.Cedula)
	}
	return nil
}
