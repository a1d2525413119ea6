package usecase

import (
	"fmt"
	"regexp"
	"time"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
)

var proveedorIDRx = regexp.MustCompile(`^(\d{9}|\d{11})$`)

// ProveedorUseCase casos de uso CRUD para proveedores de donaciones.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Crear registra un proveedor. El ID es su RNC (9 dígitos) o cédula (11).
func (uc *ProveedorUseCase) Crear(in dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrEntradaInvalida)
	}
	if !proveedorIDRx.MatchString(in.ID) {
		return nil, fmt.Errorf("%w: id debe ser RNC de 9 dígitos o cédula de 11", domain.ErrEntradaInvalida)
	}
	p := &entity.Proveedor{
		ID:        in.ID,
		Nombre:    in.Nombre,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Direccion: in.Direccion,
		CreadoEn:  time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return dto.ToProveedorResponse(p), nil
}

// Obtener devuelve un proveedor por ID.
func (uc *ProveedorUseCase) Obtener(id string) (*dto.ProveedorResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
	}
	return dto.ToProveedorResponse(p), nil
}

// Actualizar modifica los datos de contacto; el ID no cambia.
func (uc *ProveedorUseCase) Actualizar(id string, in dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
	}
	if in.Nombre != "" {
		p.Nombre = in.Nombre
	}
	if in.Telefono != "" {
		p.Telefono = in.Telefono
	}
	if in.Email != "" {
		p.Email = in.Email
	}
	if in.Direccion != "" {
		p.Direccion = in.Direccion
	}
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return dto.ToProveedorResponse(p), nil
}

// Listar lista proveedores con paginación.
func (uc *ProveedorUseCase) Listar(limit, offset int) ([]dto.ProveedorResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *dto.ToProveedorResponse(p))
	}
	return out, nil
}
