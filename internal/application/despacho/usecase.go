// Package despacho implementa el motor de despacho: la entrega física de los
// medicamentos de una solicitud aprobada. Crear el despacho, pasar la
// solicitud a DESPACHADA y debitar el inventario de cada detalle ocurre en
// una sola transacción: o se aplica todo o no se aplica nada.
package despacho

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/application/inventario"
	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
	"github.com/donamed/donamed-api/internal/domain/solicitud"
)

var cedulaRx = regexp.MustCompile(`^\d{11}$`)

// UseCase casos de uso del motor de despacho.
type UseCase struct {
	txRunner     inventario.TxRunner
	ledger       *inventario.Ledger
	personaRepo  repository.PersonaRepository
	despachoRepo repository.DespachoRepository
}

// NewUseCase construye el caso de uso. despachoRepo se usa solo para lecturas
// fuera de transacción.
func NewUseCase(txRunner inventario.TxRunner, ledger *inventario.Ledger, personaRepo repository.PersonaRepository, despachoRepo repository.DespachoRepository) *UseCase {
	return &UseCase{txRunner: txRunner, ledger: ledger, personaRepo: personaRepo, despachoRepo: despachoRepo}
}

// Crear despacha una solicitud aprobada. Validaciones previas a la
// transacción: formato de cédula del receptor (11 dígitos) y existencia de la
// persona. Dentro de la transacción: la solicitud se relee, se rechaza con
// conflicto si ya tiene despacho (el constraint único sobre solicitud_numero
// respalda la relación 1:1), se revalida el estado, se crea el despacho, la
// solicitud pasa a DESPACHADA y se debita cada detalle vía el libro de
// inventario. creadoPor es el usuario que ejecuta el despacho y queda
// registrado en cada movimiento.
func (uc *UseCase) Crear(ctx context.Context, solicitudNumero int64, cedulaReceptor, creadoPor string) (*dto.DespachoResponse, error) {
	if cedulaReceptor != "" {
		if !cedulaRx.MatchString(cedulaReceptor) {
			return nil, fmt.Errorf("%w: la cédula del receptor debe tener 11 dígitos", domain.ErrEntradaInvalida)
		}
		persona, err := uc.personaRepo.GetByCedula(cedulaReceptor)
		if err != nil {
			return nil, err
		}
		if persona == nil {
			return nil, fmt.Errorf("%w: persona con cédula %s", domain.ErrNotFound, cedulaReceptor)
		}
	}

	ahora := time.Now()
	var despacho *entity.Despacho
	err := uc.txRunner.Run(ctx, func(r inventario.Repos) error {
		s, err := r.Solicitudes.GetByNumero(solicitudNumero)
		if err != nil {
			return err
		}
		if s == nil {
			return fmt.Errorf("%w: solicitud %d", domain.ErrNotFound, solicitudNumero)
		}
		// La relación 1:1 se verifica antes que el estado: un despacho
		// existente es conflicto sin importar en qué estado esté la solicitud.
		existente, err := r.Despachos.GetBySolicitud(solicitudNumero)
		if err != nil {
			return err
		}
		if existente != nil {
			return fmt.Errorf("%w: la solicitud %d ya tiene el despacho %d", domain.ErrConflicto, solicitudNumero, existente.Numero)
		}
		if s.Estado != solicitud.EstadoAprobada {
			return fmt.Errorf("%w: la solicitud %d está en %s, se requiere APROBADA", domain.ErrEstadoInvalido, solicitudNumero, s.Estado)
		}

		despacho = &entity.Despacho{
			SolicitudNumero: solicitudNumero,
			CedulaReceptor:  cedulaReceptor,
			FechaDespacho:   ahora,
		}
		if err := r.Despachos.Create(despacho); err != nil {
			return err
		}
		if err := r.Solicitudes.UpdateEstado(solicitudNumero, solicitud.EstadoDespachada, s.Observaciones, ahora); err != nil {
			return err
		}

		referencia := fmt.Sprintf("despacho-%d", despacho.Numero)
		for _, d := range s.Detalles {
			if err := uc.ledger.Debitar(r, d.AlmacenID, d.LoteCodigo, d.Cantidad, referencia, creadoPor, ahora); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToDespachoResponse(despacho), nil
}

// Eliminar borra un despacho y revierte la solicitud a APROBADA en la misma
// transacción. El stock debitado no se reacredita automáticamente: si la
// mercancía vuelve al almacén debe registrarse un ajuste manual.
func (uc *UseCase) Eliminar(ctx context.Context, numero int64) error {
	return uc.txRunner.Run(ctx, func(r inventario.Repos) error {
		d, err := r.Despachos.GetByNumero(numero)
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("%w: despacho %d", domain.ErrNotFound, numero)
		}
		if err := r.Despachos.Delete(numero); err != nil {
			return err
		}
		return r.Solicitudes.UpdateEstado(d.SolicitudNumero, solicitud.EstadoAprobada, "", time.Now())
	})
}

// Obtener devuelve un despacho por número.
func (uc *UseCase) Obtener(ctx context.Context, numero int64) (*dto.DespachoResponse, error) {
	d, err := uc.despachoRepo.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: despacho %d", domain.ErrNotFound, numero)
	}
	return dto.ToDespachoResponse(d), nil
}

// Listar lista despachos con paginación.
func (uc *UseCase) Listar(ctx context.Context, limit, offset int) ([]dto.DespachoResponse, error) {
	list, err := uc.despachoRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DespachoResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *dto.ToDespachoResponse(d))
	}
	return out, nil
}
