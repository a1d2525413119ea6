package repository

import "github.com/donamed/donamed-api/internal/domain/entity"

// DespachoRepository define el puerto de persistencia para Despacho.
// La unicidad por solicitud (1:1) se respalda con un constraint único sobre
// solicitud_numero; Create debe traducir esa violación a domain.ErrConflicto.
type DespachoRepository interface {
	Create(d *entity.Despacho) error
	GetByNumero(numero int64) (*entity.Despacho, error)
	GetBySolicitud(solicitudNumero int64) (*entity.Despacho, error)
	List(limit, offset int) ([]*entity.Despacho, error)
	Delete(numero int64) error
}
