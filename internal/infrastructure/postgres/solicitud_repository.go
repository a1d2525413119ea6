package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
	"github.com/donamed/donamed-api/internal/domain/solicitud"
)

var _ repository.SolicitudRepository = (*SolicitudRepo)(nil)

// SolicitudRepo implementación sobre PostgreSQL (usable con pool o tx).
type SolicitudRepo struct {
	q Querier
}

// NewSolicitudRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSolicitudRepository(q Querier) *SolicitudRepo {
	return &SolicitudRepo{q: q}
}

// Create persiste la cabecera; el número secuencial lo asigna la BD (BIGSERIAL).
func (r *SolicitudRepo) Create(s *entity.Solicitud) error {
	query := `
		INSERT INTO solicitudes (usuario_id, cedula_representante, estado, observaciones, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING numero`
	err := r.q.QueryRow(context.Background(), query,
		s.UsuarioID, s.CedulaRepresentante, string(s.Estado), s.Observaciones, s.CreadoEn, s.ActualizadoEn,
	).Scan(&s.Numero)
	if err != nil {
		return fmt.Errorf("insert solicitud: %w", err)
	}
	return nil
}

// GetByNumero devuelve el agregado con medicamentos y detalles cargados.
// Dentro de una tx, la fila cabecera queda bloqueada (FOR UPDATE) para que
// las transiciones concurrentes se serialicen sobre el estado actual.
func (r *SolicitudRepo) GetByNumero(numero int64) (*entity.Solicitud, error) {
	query := `
		SELECT numero, usuario_id, cedula_representante, estado, observaciones, creado_en, actualizado_en
		FROM solicitudes WHERE numero = $1
		FOR UPDATE`
	var s entity.Solicitud
	var estado string
	err := r.q.QueryRow(context.Background(), query, numero).Scan(
		&s.Numero, &s.UsuarioID, &s.CedulaRepresentante, &estado, &s.Observaciones, &s.CreadoEn, &s.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solicitud: %w", err)
	}
	s.Estado = solicitud.Estado(estado)

	if s.Medicamentos, err = r.ListMedicamentos(numero); err != nil {
		return nil, err
	}
	if s.Detalles, err = r.ListDetalles(numero); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateEstado escribe estado, observaciones y timestamp de la cabecera.
func (r *SolicitudRepo) UpdateEstado(numero int64, estado solicitud.Estado, observaciones string, actualizadoEn time.Time) error {
	query := `
		UPDATE solicitudes
		SET estado = $2,
		    observaciones = CASE WHEN $3 <> '' THEN $3 ELSE observaciones END,
		    actualizado_en = $4
		WHERE numero = $1`
	_, err := r.q.Exec(context.Background(), query, numero, string(estado), observaciones, actualizadoEn)
	if err != nil {
		return fmt.Errorf("update estado solicitud: %w", err)
	}
	return nil
}

// ListByUsuario lista solicitudes de un usuario (solo cabeceras con líneas).
func (r *SolicitudRepo) ListByUsuario(usuarioID string, limit, offset int) ([]*entity.Solicitud, error) {
	query := `
		SELECT numero, usuario_id, cedula_representante, estado, observaciones, creado_en, actualizado_en
		FROM solicitudes WHERE usuario_id = $1 ORDER BY numero DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, usuarioID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list solicitudes por usuario: %w", err)
	}
	defer rows.Close()
	return r.scanConLineas(rows)
}

// List lista solicitudes, opcionalmente filtradas por estado.
func (r *SolicitudRepo) List(estado solicitud.Estado, limit, offset int) ([]*entity.Solicitud, error) {
	query := `
		SELECT numero, usuario_id, cedula_representante, estado, observaciones, creado_en, actualizado_en
		FROM solicitudes
		WHERE ($1 = '' OR estado = $1)
		ORDER BY numero DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, string(estado), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list solicitudes: %w", err)
	}
	defer rows.Close()
	return r.scanConLineas(rows)
}

func (r *SolicitudRepo) scanConLineas(rows pgx.Rows) ([]*entity.Solicitud, error) {
	var list []*entity.Solicitud
	for rows.Next() {
		var s entity.Solicitud
		var estado string
		if err := rows.Scan(&s.Numero, &s.UsuarioID, &s.CedulaRepresentante, &estado, &s.Observaciones, &s.CreadoEn, &s.ActualizadoEn); err != nil {
			return nil, fmt.Errorf("scan solicitud: %w", err)
		}
		s.Estado = solicitud.Estado(estado)
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		var err error
		if s.Medicamentos, err = r.ListMedicamentos(s.Numero); err != nil {
			return nil, err
		}
		if s.Detalles, err = r.ListDetalles(s.Numero); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// AddMedicamento añade una línea de texto libre.
func (r *SolicitudRepo) AddMedicamento(m *entity.SolicitudMedicamento) error {
	query := `
		INSERT INTO solicitud_medicamentos (id, solicitud_numero, nombre, dosis)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.SolicitudNumero, m.Nombre, m.Dosis)
	if err != nil {
		return fmt.Errorf("insert solicitud medicamento: %w", err)
	}
	return nil
}

// ListMedicamentos lista las líneas de texto libre de una solicitud.
func (r *SolicitudRepo) ListMedicamentos(numero int64) ([]entity.SolicitudMedicamento, error) {
	query := `
		SELECT id, solicitud_numero, nombre, dosis
		FROM solicitud_medicamentos WHERE solicitud_numero = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, numero)
	if err != nil {
		return nil, fmt.Errorf("list solicitud medicamentos: %w", err)
	}
	defer rows.Close()
	var list []entity.SolicitudMedicamento
	for rows.Next() {
		var m entity.SolicitudMedicamento
		if err := rows.Scan(&m.ID, &m.SolicitudNumero, &m.Nombre, &m.Dosis); err != nil {
			return nil, fmt.Errorf("scan solicitud medicamento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// AddDetalle añade una asignación concreta.
func (r *SolicitudRepo) AddDetalle(d *entity.SolicitudDetalle) error {
	query := `
		INSERT INTO solicitud_detalles (id, solicitud_numero, almacen_id, lote_codigo, cantidad, indicaciones)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.SolicitudNumero, d.AlmacenID, d.LoteCodigo, d.Cantidad, d.Indicaciones,
	)
	if err != nil {
		return fmt.Errorf("insert solicitud detalle: %w", err)
	}
	return nil
}

// ListDetalles lista las asignaciones de una solicitud.
func (r *SolicitudRepo) ListDetalles(numero int64) ([]entity.SolicitudDetalle, error) {
	query := `
		SELECT id, solicitud_numero, almacen_id, lote_codigo, cantidad, indicaciones
		FROM solicitud_detalles WHERE solicitud_numero = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, numero)
	if err != nil {
		return nil, fmt.Errorf("list solicitud detalles: %w", err)
	}
	defer rows.Close()
	var list []entity.SolicitudDetalle
	for rows.Next() {
		var d entity.SolicitudDetalle
		if err := rows.Scan(&d.ID, &d.SolicitudNumero, &d.AlmacenID, &d.LoteCodigo, &d.Cantidad, &d.Indicaciones); err != nil {
			return nil, fmt.Errorf("scan solicitud detalle: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
