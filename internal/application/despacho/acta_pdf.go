package despacho

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
)

// ActaLinea es una línea del acta con los nombres ya resueltos para impresión.
type ActaLinea struct {
	MedicamentoNombre string
	LoteCodigo        string
	AlmacenNombre     string
	Cantidad          decimal.Decimal
}

// ActaPDFGenerator genera el acta de despacho en PDF.
type ActaPDFGenerator interface {
	GenerarActa(ctx context.Context, despacho *entity.Despacho, sol *entity.Solicitud, receptor *entity.Persona, lineas []ActaLinea) ([]byte, error)
}

// ActaUseCase arma los datos del acta de despacho y delega el render al
// generador PDF.
type ActaUseCase struct {
	despachoRepo  repository.DespachoRepository
	solicitudRepo repository.SolicitudRepository
	personaRepo   repository.PersonaRepository
	loteRepo      repository.LoteRepository
	medRepo       repository.MedicamentoRepository
	almacenRepo   repository.AlmacenRepository
	generator     ActaPDFGenerator
}

// NewActaUseCase construye el caso de uso.
func NewActaUseCase(
	despachoRepo repository.DespachoRepository,
	solicitudRepo repository.SolicitudRepository,
	personaRepo repository.PersonaRepository,
	loteRepo repository.LoteRepository,
	medRepo repository.MedicamentoRepository,
	almacenRepo repository.AlmacenRepository,
	generator ActaPDFGenerator,
) *ActaUseCase {
	return &ActaUseCase{
		despachoRepo:  despachoRepo,
		solicitudRepo: solicitudRepo,
		personaRepo:   personaRepo,
		loteRepo:      loteRepo,
		medRepo:       medRepo,
		almacenRepo:   almacenRepo,
		generator:     generator,
	}
}

// GenerarActa devuelve los bytes del PDF del acta de un despacho.
func (uc *ActaUseCase) GenerarActa(ctx context.Context, numero int64) ([]byte, error) {
	d, err := uc.despachoRepo.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: despacho %d", domain.ErrNotFound, numero)
	}
	s, err := uc.solicitudRepo.GetByNumero(d.SolicitudNumero)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: solicitud %d", domain.ErrNotFound, d.SolicitudNumero)
	}

	var receptor *entity.Persona
	if d.CedulaReceptor != "" {
		receptor, err = uc.personaRepo.GetByCedula(d.CedulaReceptor)
		if err != nil {
			return nil, err
		}
	}

	lineas := make([]ActaLinea, 0, len(s.Detalles))
	for _, det := range s.Detalles {
		linea := ActaLinea{LoteCodigo: det.LoteCodigo, Cantidad: det.Cantidad}
		if lote, err := uc.loteRepo.GetByCodigo(det.LoteCodigo); err == nil && lote != nil {
			if med, err := uc.medRepo.GetByCodigo(lote.MedicamentoCodigo); err == nil && med != nil {
				linea.MedicamentoNombre = med.Nombre
			}
		}
		if alm, err := uc.almacenRepo.GetByID(det.AlmacenID); err == nil && alm != nil {
			linea.AlmacenNombre = alm.Nombre
		}
		lineas = append(lineas, linea)
	}
	return uc.generator.GenerarActa(ctx, d, s, receptor, lineas)
}
