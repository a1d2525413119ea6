package usecase

import (
	"fmt"
	"time"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
)

// MedicamentoUseCase casos de uso CRUD para medicamentos del catálogo.
// La cantidad disponible no se toca aquí: solo el libro de inventario la muta.
type MedicamentoUseCase struct {
	repo repository.MedicamentoRepository
}

// NewMedicamentoUseCase construye el caso de uso.
func NewMedicamentoUseCase(repo repository.MedicamentoRepository) *MedicamentoUseCase {
	return &MedicamentoUseCase{repo: repo}
}

// Crear registra un medicamento nuevo con disponibilidad cero.
func (uc *MedicamentoUseCase) Crear(in dto.CrearMedicamentoRequest) (*dto.MedicamentoResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, fmt.Errorf("%w: codigo y nombre son requeridos", domain.ErrEntradaInvalida)
	}
	ahora := time.Now()
	m := &entity.Medicamento{
		Codigo:            in.Codigo,
		Nombre:            in.Nombre,
		Descripcion:       in.Descripcion,
		CategoriaID:       in.CategoriaID,
		ViaAdministracion: in.ViaAdministracion,
		Activo:            true,
		CreadoEn:          ahora,
		ActualizadoEn:     ahora,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return dto.ToMedicamentoResponse(m), nil
}

// Obtener devuelve un medicamento por código.
func (uc *MedicamentoUseCase) Obtener(codigo string) (*dto.MedicamentoResponse, error) {
	m, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: medicamento %s", domain.ErrNotFound, codigo)
	}
	return dto.ToMedicamentoResponse(m), nil
}

// Actualizar modifica nombre, descripción o estado activo.
func (uc *MedicamentoUseCase) Actualizar(codigo string, in dto.ActualizarMedicamentoRequest) (*dto.MedicamentoResponse, error) {
	m, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: medicamento %s", domain.ErrNotFound, codigo)
	}
	if in.Nombre != nil {
		m.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		m.Descripcion = *in.Descripcion
	}
	if in.Activo != nil {
		m.Activo = *in.Activo
	}
	m.ActualizadoEn = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return dto.ToMedicamentoResponse(m), nil
}

// Eliminar borra un medicamento del catálogo.
func (uc *MedicamentoUseCase) Eliminar(codigo string) error {
	return uc.repo.Delete(codigo)
}

// Listar lista medicamentos; la búsqueda por nombre ignora acentos.
func (uc *MedicamentoUseCase) Listar(busqueda string, limit, offset int) (*dto.MedicamentoListResponse, error) {
	list, err := uc.repo.List(busqueda, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.MedicamentoListResponse{Items: make([]dto.MedicamentoResponse, 0, len(list)), Limit: limit, Offset: offset}
	for _, m := range list {
		out.Items = append(out.Items, *dto.ToMedicamentoResponse(m))
	}
	return out, nil
}
