package postgres

import (
	"context"
	"fmt"

	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
)

var _ repository.CatalogoRepository = (*CatalogoRepo)(nil)

// CatalogoRepo implementación de los catálogos simples sobre PostgreSQL.
// Todos los upserts son idempotentes (cmd/seed se puede correr varias veces).
type CatalogoRepo struct {
	q Querier
}

// NewCatalogoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogoRepository(q Querier) *CatalogoRepo {
	return &CatalogoRepo{q: q}
}

func (r *CatalogoRepo) UpsertProvincia(p *entity.Provincia) error {
	query := `
		INSERT INTO provincias (id, nombre) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET nombre = EXCLUDED.nombre`
	if _, err := r.q.Exec(context.Background(), query, p.ID, p.Nombre); err != nil {
		return fmt.Errorf("upsert provincia: %w", err)
	}
	return nil
}

func (r *CatalogoRepo) ListProvincias() ([]*entity.Provincia, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, nombre FROM provincias ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list provincias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Provincia
	for rows.Next() {
		var p entity.Provincia
		if err := rows.Scan(&p.ID, &p.Nombre); err != nil {
			return nil, fmt.Errorf("scan provincia: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *CatalogoRepo) UpsertMunicipio(m *entity.Municipio) error {
	query := `
		INSERT INTO municipios (id, provincia_id, nombre) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET provincia_id = EXCLUDED.provincia_id, nombre = EXCLUDED.nombre`
	if _, err := r.q.Exec(context.Background(), query, m.ID, m.ProvinciaID, m.Nombre); err != nil {
		return fmt.Errorf("upsert municipio: %w", err)
	}
	return nil
}

// ListMunicipios lista los municipios; con provinciaID vacío lista todos.
func (r *CatalogoRepo) ListMunicipios(provinciaID string) ([]*entity.Municipio, error) {
	query := `
		SELECT id, provincia_id, nombre FROM municipios
		WHERE ($1 = '' OR provincia_id = $1) ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, provinciaID)
	if err != nil {
		return nil, fmt.Errorf("list municipios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Municipio
	for rows.Next() {
		var m entity.Municipio
		if err := rows.Scan(&m.ID, &m.ProvinciaID, &m.Nombre); err != nil {
			return nil, fmt.Errorf("scan municipio: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *CatalogoRepo) UpsertCategoria(c *entity.Categoria) error {
	query := `
		INSERT INTO categorias (id, nombre) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET nombre = EXCLUDED.nombre`
	if _, err := r.q.Exec(context.Background(), query, c.ID, c.Nombre); err != nil {
		return fmt.Errorf("upsert categoria: %w", err)
	}
	return nil
}

func (r *CatalogoRepo) ListCategorias() ([]*entity.Categoria, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, nombre FROM categorias ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CatalogoRepo) UpsertEnfermedad(e *entity.Enfermedad) error {
	query := `
		INSERT INTO enfermedades (id, nombre) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET nombre = EXCLUDED.nombre`
	if _, err := r.q.Exec(context.Background(), query, e.ID, e.Nombre); err != nil {
		return fmt.Errorf("upsert enfermedad: %w", err)
	}
	return nil
}

func (r *CatalogoRepo) ListEnfermedades() ([]*entity.Enfermedad, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, nombre FROM enfermedades ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list enfermedades: %w", err)
	}
	defer rows.Close()
	var list []*entity.Enfermedad
	for rows.Next() {
		var e entity.Enfermedad
		if err := rows.Scan(&e.ID, &e.Nombre); err != nil {
			return nil, fmt.Errorf("scan enfermedad: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (r *CatalogoRepo) UpsertVia(v *entity.ViaAdministracion) error {
	query := `
		INSERT INTO vias_administracion (id, nombre) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET nombre = EXCLUDED.nombre`
	if _, err := r.q.Exec(context.Background(), query, v.ID, v.Nombre); err != nil {
		return fmt.Errorf("upsert via: %w", err)
	}
	return nil
}

func (r *CatalogoRepo) ListVias() ([]*entity.ViaAdministracion, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, nombre FROM vias_administracion ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list vias: %w", err)
	}
	defer rows.Close()
	var list []*entity.ViaAdministracion
	for rows.Next() {
		var v entity.ViaAdministracion
		if err := rows.Scan(&v.ID, &v.Nombre); err != nil {
			return nil, fmt.Errorf("scan via: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
