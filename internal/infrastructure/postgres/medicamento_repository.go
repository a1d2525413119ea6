package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
	"github.com/donamed/donamed-api/pkg/textutil"
)

var _ repository.MedicamentoRepository = (*MedicamentoRepo)(nil)

// MedicamentoRepo implementación sobre PostgreSQL (usable con pool o tx).
// nombre_busqueda guarda el nombre normalizado (minúsculas, sin acentos) para
// búsquedas insensibles a tildes.
type MedicamentoRepo struct {
	q Querier
}

// NewMedicamentoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMedicamentoRepository(q Querier) *MedicamentoRepo {
	return &MedicamentoRepo{q: q}
}

const medicamentoCols = `codigo, nombre, descripcion, categoria_id, via_administracion, activo, cantidad_disponible, creado_en, actualizado_en`

// Create persiste un medicamento nuevo. Traduce el código duplicado a ErrConflicto.
func (r *MedicamentoRepo) Create(m *entity.Medicamento) error {
	query := `
		INSERT INTO medicamentos (codigo, nombre, nombre_busqueda, descripcion, categoria_id, via_administracion, activo, cantidad_disponible, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		m.Codigo, m.Nombre, textutil.Normalizar(m.Nombre), m.Descripcion, m.CategoriaID,
		m.ViaAdministracion, m.Activo, m.CantidadDisponible, m.CreadoEn, m.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: medicamento %s ya existe", domain.ErrConflicto, m.Codigo)
		}
		return fmt.Errorf("insert medicamento: %w", err)
	}
	return nil
}

// GetByCodigo obtiene un medicamento por código.
func (r *MedicamentoRepo) GetByCodigo(codigo string) (*entity.Medicamento, error) {
	query := `SELECT ` + medicamentoCols + ` FROM medicamentos WHERE codigo = $1`
	var m entity.Medicamento
	err := r.q.QueryRow(context.Background(), query, codigo).Scan(
		&m.Codigo, &m.Nombre, &m.Descripcion, &m.CategoriaID, &m.ViaAdministracion,
		&m.Activo, &m.CantidadDisponible, &m.CreadoEn, &m.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicamento: %w", err)
	}
	return &m, nil
}

// Update actualiza nombre, descripción y estado activo.
func (r *MedicamentoRepo) Update(m *entity.Medicamento) error {
	query := `
		UPDATE medicamentos
		SET nombre = $2, nombre_busqueda = $3, descripcion = $4, activo = $5, actualizado_en = $6
		WHERE codigo = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.Codigo, m.Nombre, textutil.Normalizar(m.Nombre), m.Descripcion, m.Activo, m.ActualizadoEn,
	)
	if err != nil {
		return fmt.Errorf("update medicamento: %w", err)
	}
	return nil
}

// List lista medicamentos, opcionalmente filtrados por nombre (insensible a acentos).
func (r *MedicamentoRepo) List(busqueda string, limit, offset int) ([]*entity.Medicamento, error) {
	query := `
		SELECT ` + medicamentoCols + `
		FROM medicamentos
		WHERE ($1 = '' OR nombre_busqueda LIKE '%' || $1 || '%')
		ORDER BY nombre LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, textutil.Normalizar(busqueda), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list medicamentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Medicamento
	for rows.Next() {
		var m entity.Medicamento
		if err := rows.Scan(
			&m.Codigo, &m.Nombre, &m.Descripcion, &m.CategoriaID, &m.ViaAdministracion,
			&m.Activo, &m.CantidadDisponible, &m.CreadoEn, &m.ActualizadoEn,
		); err != nil {
			return nil, fmt.Errorf("scan medicamento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// IncrementarDisponible aplica el delta al total global en la capa de storage
// (cantidad = cantidad + delta), nunca read-modify-write de aplicación.
func (r *MedicamentoRepo) IncrementarDisponible(codigo string, delta decimal.Decimal) error {
	query := `
		UPDATE medicamentos
		SET cantidad_disponible = cantidad_disponible + $2, actualizado_en = now()
		WHERE codigo = $1`
	cmd, err := r.q.Exec(context.Background(), query, codigo, delta)
	if err != nil {
		return fmt.Errorf("incrementar disponible: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: medicamento %s", domain.ErrNotFound, codigo)
	}
	return nil
}

// Delete elimina un medicamento por código.
func (r *MedicamentoRepo) Delete(codigo string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM medicamentos WHERE codigo = $1`, codigo)
	if err != nil {
		return fmt.Errorf("delete medicamento: %w", err)
	}
	return nil
}
