package repository

import "github.com/donamed/donamed-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar las filas de
// inventario (almacén + medicamento + lote). Usado dentro de transacciones
// para garantizar consistencia.
type StockRepository interface {
	// Get devuelve la fila; una celda inexistente se devuelve en cero, nunca nil.
	Get(key entity.StockKey) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Mismo
	// contrato de celda inexistente que Get.
	GetForUpdate(key entity.StockKey) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	ListByAlmacen(almacenID string, limit, offset int) ([]*entity.Stock, error)
	ListByMedicamento(medicamentoCodigo string) ([]*entity.Stock, error)
}
