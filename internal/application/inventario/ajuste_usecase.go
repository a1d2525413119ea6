package inventario

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
)

// AjusteUseCase ejecuta el ajuste manual de inventario: fija la cantidad
// literal de una celda (almacén, medicamento, lote) vía el libro de
// inventario, en su propia transacción.
type AjusteUseCase struct {
	txRunner    TxRunner
	ledger      *Ledger
	almacenRepo repository.AlmacenRepository
	loteRepo    repository.LoteRepository
}

// NewAjusteUseCase construye el caso de uso.
func NewAjusteUseCase(txRunner TxRunner, ledger *Ledger, almacenRepo repository.AlmacenRepository, loteRepo repository.LoteRepository) *AjusteUseCase {
	return &AjusteUseCase{txRunner: txRunner, ledger: ledger, almacenRepo: almacenRepo, loteRepo: loteRepo}
}

// Ajustar valida almacén y lote, y fija la cantidad dentro de una transacción.
// La validación ocurre completa antes de cualquier escritura. creadoPor queda
// registrado en el movimiento AJUSTE.
func (uc *AjusteUseCase) Ajustar(ctx context.Context, in dto.AjusteInventarioRequest, creadoPor string) (*dto.StockResponse, error) {
	if in.AlmacenID == "" || in.LoteCodigo == "" {
		return nil, fmt.Errorf("%w: almacen_id y lote_codigo son requeridos", domain.ErrEntradaInvalida)
	}
	if in.Cantidad.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrEntradaInvalida)
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

	key := entity.StockKey{AlmacenID: in.AlmacenID, MedicamentoCodigo: lote.MedicamentoCodigo, LoteCodigo: in.LoteCodigo}
	ahora := time.Now()
	referencia := "ajuste-" + uuid.New().String()

	var resultado *entity.Stock
	err = uc.txRunner.Run(ctx, func(r Repos) error {
		if err := uc.ledger.Fijar(r, key, in.Cantidad, referencia, creadoPor, ahora); err != nil {
			return err
		}
		s, err := r.Stock.Get(key)
		if err != nil {
			return err
		}
		resultado = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToStockResponse(resultado), nil
}
