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

var cedulaRx = regexp.MustCompile(`^\d{11}$`)

// PersonaUseCase casos de uso CRUD para personas del programa.
type PersonaUseCase struct {
	repo repository.PersonaRepository
}

// NewPersonaUseCase construye el caso de uso.
func NewPersonaUseCase(repo repository.PersonaRepository) *PersonaUseCase {
	return &PersonaUseCase{repo: repo}
}

// Crear registra una persona. La cédula (11 dígitos) es el identificador natural.
func (uc *PersonaUseCase) Crear(in dto.CrearPersonaRequest) (*dto.PersonaResponse, error) {
	if in.Nombre == "" || in.Apellido == "" {
		return nil, fmt.Errorf("%w: nombre y apellido son requeridos", domain.ErrEntradaInvalida)
	}
	if !cedulaRx.MatchString(in.Cedula) {
		return nil, fmt.Errorf("%w: la cédula debe tener 11 dígitos", domain.ErrEntradaInvalida)
	}
	p := &entity.Persona{
		Cedula:      in.Cedula,
		Nombre:      in.Nombre,
		Apellido:    in.Apellido,
		Telefono:    in.Telefono,
		Direccion:   in.Direccion,
		MunicipioID: in.MunicipioID,
		CreadoEn:    time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return dto.ToPersonaResponse(p), nil
}

// Obtener devuelve una persona por cédula.
func (uc *PersonaUseCase) Obtener(cedula string) (*dto.PersonaResponse, error) {
	p, err := uc.repo.GetByCedula(cedula)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: persona %s", domain.ErrNotFound, cedula)
	}
	return dto.ToPersonaResponse(p), nil
}

// Actualizar modifica los datos de contacto; la cédula no cambia.
func (uc *PersonaUseCase) Actualizar(cedula string, in dto.ActualizarPersonaRequest) (*dto.PersonaResponse, error) {
	p, err := uc.repo.GetByCedula(cedula)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: persona %s", domain.ErrNotFound, cedula)
	}
	if in.Nombre != "" {
		p.Nombre = in.Nombre
	}
	if in.Apellido != "" {
		p.Apellido = in.Apellido
	}
	if in.Telefono != "" {
		p.Telefono = in.Telefono
	}
	if in.Direccion != "" {
		p.Direccion = in.Direccion
	}
	if in.MunicipioID != "" {
		p.MunicipioID = in.MunicipioID
	}
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return dto.ToPersonaResponse(p), nil
}

// Listar lista personas con paginación.
func (uc *PersonaUseCase) Listar(limit, offset int) ([]dto.PersonaResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PersonaResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *dto.ToPersonaResponse(p))
	}
	return out, nil
}
