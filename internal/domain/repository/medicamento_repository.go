package repository

import (
	"github.com/shopspring/decimal"

	"github.com/donamed/donamed-api/internal/domain/entity"
)

// MedicamentoRepository define el puerto de persistencia para Medicamento.
// IncrementarDisponible debe ser un incremento atómico en la capa de storage
// (quantity = quantity + delta), no un read-modify-write de aplicación.
type MedicamentoRepository interface {
	Create(m *entity.Medicamento) error
	GetByCodigo(codigo string) (*entity.Medicamento, error)
	Update(m *entity.Medicamento) error
	List(busqueda string, limit, offset int) ([]*entity.Medicamento, error)
	IncrementarDisponible(codigo string, delta decimal.Decimal) error
	Delete(codigo string) error
}
