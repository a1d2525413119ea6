package inventario

import (
	"fmt"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
)

// ConsultaUseCase consultas de solo lectura sobre inventario y su histórico.
// Trabaja directo sobre el pool, sin transacción.
type ConsultaUseCase struct {
	stockRepo      repository.StockRepository
	movimientoRepo repository.MovimientoRepository
	almacenRepo    repository.AlmacenRepository
}

// NewConsultaUseCase construye el caso de uso.
func NewConsultaUseCase(stockRepo repository.StockRepository, movimientoRepo repository.MovimientoRepository, almacenRepo repository.AlmacenRepository) *ConsultaUseCase {
	return &ConsultaUseCase{stockRepo: stockRepo, movimientoRepo: movimientoRepo, almacenRepo: almacenRepo}
}

// StockPorAlmacen lista las filas de stock de un almacén.
func (uc *ConsultaUseCase) StockPorAlmacen(almacenID string, limit, offset int) ([]dto.StockResponse, error) {
	alm, err := uc.almacenRepo.GetByID(almacenID)
	if err != nil {
		return nil, err
	}
	if alm == nil {
		return nil, fmt.Errorf("%w: almacén %s", domain.ErrNotFound, almacenID)
	}
	list, err := uc.stockRepo.ListByAlmacen(almacenID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toStockResponses(list), nil
}

// StockPorMedicamento lista las filas de stock de un medicamento en todos los
// almacenes y lotes.
func (uc *ConsultaUseCase) StockPorMedicamento(medicamentoCodigo string) ([]dto.StockResponse, error) {
	list, err := uc.stockRepo.ListByMedicamento(medicamentoCodigo)
	if err != nil {
		return nil, err
	}
	return toStockResponses(list), nil
}

// MovimientosPorMedicamento lista el histórico de un medicamento, más
// reciente primero.
func (uc *ConsultaUseCase) MovimientosPorMedicamento(medicamentoCodigo string, limit, offset int) ([]dto.MovimientoResponse, error) {
	list, err := uc.movimientoRepo.ListByMedicamento(medicamentoCodigo, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovimientoResponse{
			ID:                m.ID,
			Referencia:        m.Referencia,
			Tipo:              m.Tipo,
			AlmacenID:         m.AlmacenID,
			MedicamentoCodigo: m.MedicamentoCodigo,
			LoteCodigo:        m.LoteCodigo,
			Cantidad:          m.Cantidad,
			Fecha:             m.Fecha,
			CreadoPor:         m.CreadoPor,
		})
	}
	return out, nil
}

// MovimientosPorReferencia lista los movimientos de una operación concreta
// (por ejemplo "despacho-12" o "donacion-7").
func (uc *ConsultaUseCase) MovimientosPorReferencia(referencia string) ([]dto.MovimientoResponse, error) {
	list, err := uc.movimientoRepo.ListByReferencia(referencia)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovimientoResponse{
			ID:                m.ID,
			Referencia:        m.Referencia,
			Tipo:              m.Tipo,
			AlmacenID:         m.AlmacenID,
			MedicamentoCodigo: m.MedicamentoCodigo,
			LoteCodigo:        m.LoteCodigo,
			Cantidad:          m.Cantidad,
			Fecha:             m.Fecha,
			CreadoPor:         m.CreadoPor,
		})
	}
	return out, nil
}

func toStockResponses(list []*entity.Stock) []dto.StockResponse {
	out := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *dto.ToStockResponse(s))
	}
	return out
}
