package repository

import "github.com/donamed/donamed-api/internal/domain/entity"

// AlmacenRepository define el puerto de persistencia para Almacen.
type AlmacenRepository interface {
	Create(a *entity.Almacen) error
	GetByID(id string) (*entity.Almacen, error)
	Update(a *entity.Almacen) error
	List(limit, offset int) ([]*entity.Almacen, error)
	Delete(id string) error
}
