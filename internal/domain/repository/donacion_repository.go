package repository

import "github.com/donamed/donamed-api/internal/domain/entity"

// DonacionRepository define el puerto de persistencia para Donacion y sus líneas.
type DonacionRepository interface {
	Create(d *entity.Donacion) error
	GetByNumero(numero int64) (*entity.Donacion, error)
	List(limit, offset int) ([]*entity.Donacion, error)
	Delete(numero int64) error

	AddLinea(l *entity.DonacionMedicamento) error
	ListLineas(numero int64) ([]entity.DonacionMedicamento, error)
	DeleteLineas(numero int64) error
}
