// Package solicitud implementa la máquina de estados de las solicitudes de
// medicamentos: creación, transiciones de ciclo de vida y adjuntos de líneas.
// Las transiciones leen el estado actual dentro de la transacción que lo
// escribe, de modo que dos administradores concurrentes no puedan aplicar
// transiciones contradictorias sobre una lectura obsoleta.
package solicitud

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/application/inventario"
	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
	"github.com/donamed/donamed-api/internal/domain/solicitud"
)

// UseCase casos de uso del ciclo de vida de solicitudes.
type UseCase struct {
	txRunner      inventario.TxRunner
	solicitudRepo repository.SolicitudRepository
	almacenRepo   repository.AlmacenRepository
	loteRepo      repository.LoteRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner inventario.TxRunner,
	solicitudRepo repository.SolicitudRepository,
	almacenRepo repository.AlmacenRepository,
	loteRepo repository.LoteRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, solicitudRepo: solicitudRepo, almacenRepo: almacenRepo, loteRepo: loteRepo}
}

// Crear registra una solicitud nueva en estado PENDIENTE con sus líneas de
// texto libre. Cabecera y líneas se escriben en una sola transacción.
func (uc *UseCase) Crear(ctx context.Context, usuarioID string, in dto.CrearSolicitudRequest) (*dto.SolicitudResponse, error) {
	if usuarioID == "" {
		return nil, fmt.Errorf("%w: usuario requerido", domain.ErrEntradaInvalida)
	}
	for _, m := range in.Medicamentos {
		if m.Nombre == "" {
			return nil, fmt.Errorf("%w: cada medicamento solicitado requiere nombre", domain.ErrEntradaInvalida)
		}
	}
	ahora := time.Now()
	s := &entity.Solicitud{
		UsuarioID:           usuarioID,
		CedulaRepresentante: in.CedulaRepresentante,
		Estado:              solicitud.EstadoPendiente,
		CreadoEn:            ahora,
		ActualizadoEn:       ahora,
	}
	err := uc.txRunner.Run(ctx, func(r inventario.Repos) error {
		if err := r.Solicitudes.Create(s); err != nil {
			return err
		}
		for _, m := range in.Medicamentos {
			linea := &entity.SolicitudMedicamento{
				ID:              uuid.New().String(),
				SolicitudNumero: s.Numero,
				Nombre:          m.Nombre,
				Dosis:           m.Dosis,
			}
			if err := r.Solicitudes.AddMedicamento(linea); err != nil {
				return err
			}
			s.Medicamentos = append(s.Medicamentos, *linea)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToSolicitudResponse(s), nil
}

// Transicionar aplica una transición del ciclo de vida según la tabla
// estática. El estado actual se relee dentro de la transacción; el perdedor
// de una carrera entre dos transiciones concurrentes ve el estado ya
// actualizado y falla con ErrTransicionInvalida.
//
// DESPACHADA no es alcanzable por esta vía: la única ruta es el motor de
// despacho, que además debita el inventario.
func (uc *UseCase) Transicionar(ctx context.Context, numero int64, destino string, observaciones string) (*dto.SolicitudResponse, error) {
	objetivo := solicitud.Estado(destino)
	if !objetivo.Valida() {
		return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrEntradaInvalida, destino)
	}
	if objetivo == solicitud.EstadoDespachada {
		return nil, fmt.Errorf("%w: DESPACHADA solo se alcanza creando un despacho", domain.ErrTransicionInvalida)
	}

	var actualizada *entity.Solicitud
	err := uc.txRunner.Run(ctx, func(r inventario.Repos) error {
		s, err := r.Solicitudes.GetByNumero(numero)
		if err != nil {
			return err
		}
		if s == nil {
			return fmt.Errorf("%w: solicitud %d", domain.ErrNotFound, numero)
		}
		if !s.Estado.PuedeTransicionar(objetivo) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrTransicionInvalida, s.Estado, objetivo)
		}
		if objetivo == solicitud.EstadoEnRevision && len(s.Medicamentos) == 0 {
			return fmt.Errorf("%w: la solicitud no tiene medicamentos solicitados", domain.ErrEntradaInvalida)
		}
		ahora := time.Now()
		if err := r.Solicitudes.UpdateEstado(numero, objetivo, observaciones, ahora); err != nil {
			return err
		}
		s.Estado = objetivo
		if observaciones != "" {
			s.Observaciones = observaciones
		}
		s.ActualizadoEn = ahora
		actualizada = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToSolicitudResponse(actualizada), nil
}

// AgregarMedicamento añade una línea de texto libre. Solo permitido mientras
// la solicitud está en un estado editable (PENDIENTE, EN_REVISION, INCOMPLETA).
func (uc *UseCase) AgregarMedicamento(ctx context.Context, numero int64, in dto.SolicitudMedicamentoInput) (*dto.SolicitudResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrEntradaInvalida)
	}
	s, err := uc.solicitudRepo.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: solicitud %d", domain.ErrNotFound, numero)
	}
	if !s.Estado.Editable() {
		return nil, fmt.Errorf("%w: la solicitud en %s no admite cambios", domain.ErrEstadoInvalido, s.Estado)
	}
	linea := &entity.SolicitudMedicamento{
		ID:              uuid.New().String(),
		SolicitudNumero: numero,
		Nombre:          in.Nombre,
		Dosis:           in.Dosis,
	}
	if err := uc.solicitudRepo.AddMedicamento(linea); err != nil {
		return nil, err
	}
	s.Medicamentos = append(s.Medicamentos, *linea)
	return dto.ToSolicitudResponse(s), nil
}

// AgregarDetalle adjunta una asignación concreta (lote, almacén, cantidad)
// durante la revisión o tras la aprobación. El motor de despacho la consumirá.
func (uc *UseCase) AgregarDetalle(ctx context.Context, numero int64, in dto.SolicitudDetalleInput) (*dto.SolicitudResponse, error) {
	if in.AlmacenID == "" || in.LoteCodigo == "" || !in.Cantidad.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: almacen_id, lote_codigo y cantidad positiva son requeridos", domain.ErrEntradaInvalida)
	}
	s, err := uc.solicitudRepo.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: solicitud %d", domain.ErrNotFound, numero)
	}
	if s.Estado != solicitud.EstadoEnRevision && s.Estado != solicitud.EstadoAprobada {
		return nil, fmt.Errorf("%w: los detalles se asignan en EN_REVISION o APROBADA, no en %s", domain.ErrEstadoInvalido, s.Estado)
	}
	almacen, err := uc.almacenRepo.GetByID(in.AlmacenID)
	if err != nil {
		return nil, err
	}
	if almacen == nil {
		return nil, fmt.Errorf("%w: almacén %s no existe", domain.ErrEntradaInvalida, in.AlmacenID)
	}
	lote, err := uc.loteRepo.GetByCodigo(in.LoteCodigo)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, fmt.Errorf("%w: lote %s no existe", domain.ErrEntradaInvalida, in.LoteCodigo)
	}
	detalle := &entity.SolicitudDetalle{
		ID:              uuid.New().String(),
		SolicitudNumero: numero,
		AlmacenID:       in.AlmacenID,
		LoteCodigo:      in.LoteCodigo,
		Cantidad:        in.Cantidad,
		Indicaciones:    in.Indicaciones,
	}
	if err := uc.solicitudRepo.AddDetalle(detalle); err != nil {
		return nil, err
	}
	s.Detalles = append(s.Detalles, *detalle)
	return dto.ToSolicitudResponse(s), nil
}

// Obtener devuelve el agregado completo por número.
func (uc *UseCase) Obtener(ctx context.Context, numero int64) (*dto.SolicitudResponse, error) {
	s, err := uc.solicitudRepo.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: solicitud %d", domain.ErrNotFound, numero)
	}
	return dto.ToSolicitudResponse(s), nil
}

// Listar lista solicitudes, opcionalmente filtradas por estado.
func (uc *UseCase) Listar(ctx context.Context, estado string, limit, offset int) (*dto.SolicitudListResponse, error) {
	filtro := solicitud.Estado(estado)
	if estado != "" && !filtro.Valida() {
		return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrEntradaInvalida, estado)
	}
	list, err := uc.solicitudRepo.List(filtro, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SolicitudListResponse{Items: make([]dto.SolicitudResponse, 0, len(list)), Limit: limit, Offset: offset}
	for _, s := range list {
		out.Items = append(out.Items, *dto.ToSolicitudResponse(s))
	}
	return out, nil
}

// ListarPorUsuario lista las solicitudes de un usuario.
func (uc *UseCase) ListarPorUsuario(ctx context.Context, usuarioID string, limit, offset int) (*dto.SolicitudListResponse, error) {
	list, err := uc.solicitudRepo.ListByUsuario(usuarioID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SolicitudListResponse{Items: make([]dto.SolicitudResponse, 0, len(list)), Limit: limit, Offset: offset}
	for _, s := range list {
		out.Items = append(out.Items, *dto.ToSolicitudResponse(s))
	}
	return out, nil
}
