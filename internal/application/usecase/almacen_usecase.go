package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
)

// AlmacenUseCase casos de uso CRUD para almacenes.
type AlmacenUseCase struct {
	repo repository.AlmacenRepository
}

// NewAlmacenUseCase construye el caso de uso.
func NewAlmacenUseCase(repo repository.AlmacenRepository) *AlmacenUseCase {
	return &AlmacenUseCase{repo: repo}
}

// Crear registra un almacén nuevo.
func (uc *AlmacenUseCase) Crear(in dto.CrearAlmacenRequest) (*dto.AlmacenResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrEntradaInvalida)
	}
	ahora := time.Now()
	a := &entity.Almacen{
		ID:            uuid.New().String(),
		Nombre:        in.Nombre,
		Direccion:     in.Direccion,
		MunicipioID:   in.MunicipioID,
		CreadoEn:      ahora,
		ActualizadoEn: ahora,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return dto.ToAlmacenResponse(a), nil
}

// Obtener devuelve un almacén por ID.
func (uc *AlmacenUseCase) Obtener(id string) (*dto.AlmacenResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("%w: almacén %s", domain.ErrNotFound, id)
	}
	return dto.ToAlmacenResponse(a), nil
}

// Actualizar modifica los datos de un almacén. Los campos vacíos no cambian.
func (uc *AlmacenUseCase) Actualizar(id string, in dto.ActualizarAlmacenRequest) (*dto.AlmacenResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("%w: almacén %s", domain.ErrNotFound, id)
	}
	if in.Nombre != "" {
		a.Nombre = in.Nombre
	}
	if in.Direccion != "" {
		a.Direccion = in.Direccion
	}
	if in.MunicipioID != "" {
		a.MunicipioID = in.MunicipioID
	}
	a.ActualizadoEn = time.Now()
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return dto.ToAlmacenResponse(a), nil
}

// Eliminar borra un almacén.
func (uc *AlmacenUseCase) Eliminar(id string) error {
	return uc.repo.Delete(id)
}

// Listar lista almacenes con paginación.
func (uc *AlmacenUseCase) Listar(limit, offset int) ([]dto.AlmacenResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlmacenResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *dto.ToAlmacenResponse(a))
	}
	return out, nil
}
