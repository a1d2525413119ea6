package repository

import "github.com/donamed/donamed-api/internal/domain/entity"

// MovimientoRepository define el puerto del histórico de movimientos de
// inventario. Solo el libro de inventario crea filas.
type MovimientoRepository interface {
	Create(m *entity.MovimientoInventario) error
	ListByReferencia(referencia string) ([]*entity.MovimientoInventario, error)
	ListByMedicamento(medicamentoCodigo string, limit, offset int) ([]*entity.MovimientoInventario, error)
}
