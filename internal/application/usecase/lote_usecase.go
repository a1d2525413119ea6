package usecase

import (
	"fmt"
	"time"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
)

// LoteUseCase casos de uso para lotes de fabricación.
type LoteUseCase struct {
	repo    repository.LoteRepository
	medRepo repository.MedicamentoRepository
}

// NewLoteUseCase construye el caso de uso.
func NewLoteUseCase(repo repository.LoteRepository, medRepo repository.MedicamentoRepository) *LoteUseCase {
	return &LoteUseCase{repo: repo, medRepo: medRepo}
}

// Crear registra un lote nuevo de un medicamento existente.
func (uc *LoteUseCase) Crear(in dto.CrearLoteRequest) (*dto.LoteResponse, error) {
	if in.Codigo == "" || in.MedicamentoCodigo == "" {
		return nil, fmt.Errorf("%w: codigo y medicamento_codigo son requeridos", domain.ErrEntradaInvalida)
	}
	if !in.FechaVencimiento.After(in.FechaFabricacion) {
		return nil, fmt.Errorf("%w: la fecha de vencimiento debe ser posterior a la fabricación", domain.ErrEntradaInvalida)
	}
	med, err := uc.medRepo.GetByCodigo(in.MedicamentoCodigo)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, fmt.Errorf("%w: medicamento %s", domain.ErrNotFound, in.MedicamentoCodigo)
	}
	l := &entity.Lote{
		Codigo:            in.Codigo,
		MedicamentoCodigo: in.MedicamentoCodigo,
		FechaFabricacion:  in.FechaFabricacion,
		FechaVencimiento:  in.FechaVencimiento,
		CreadoEn:          time.Now(),
	}
	if err := uc.repo.Create(l); err != nil {
		return nil, err
	}
	return dto.ToLoteResponse(l), nil
}

// Obtener devuelve un lote por código.
func (uc *LoteUseCase) Obtener(codigo string) (*dto.LoteResponse, error) {
	l, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("%w: lote %s", domain.ErrNotFound, codigo)
	}
	return dto.ToLoteResponse(l), nil
}

// ListarPorMedicamento lista los lotes de un medicamento.
func (uc *LoteUseCase) ListarPorMedicamento(medicamentoCodigo string, limit, offset int) ([]dto.LoteResponse, error) {
	list, err := uc.repo.ListByMedicamento(medicamentoCodigo, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LoteResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *dto.ToLoteResponse(l))
	}
	return out, nil
}

// Eliminar borra un lote (solo registros históricos sin stock deberían borrarse).
func (uc *LoteUseCase) Eliminar(codigo string) error {
	l, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return err
	}
	if l == nil {
		return fmt.Errorf("%w: lote %s", domain.ErrNotFound, codigo)
	}
	return uc.repo.Delete(codigo)
}
