package usecase

import (
	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/domain/repository"
)

// CatalogoUseCase expone los catálogos de consulta (geográficos y clínicos).
type CatalogoUseCase struct {
	repo repository.CatalogoRepository
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(repo repository.CatalogoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{repo: repo}
}

// Provincias lista todas las provincias.
func (uc *CatalogoUseCase) Provincias() ([]dto.ProvinciaResponse, error) {
	list, err := uc.repo.ListProvincias()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProvinciaResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProvinciaResponse{ID: p.ID, Nombre: p.Nombre})
	}
	return out, nil
}

// Municipios lista los municipios, opcionalmente filtrados por provincia.
func (uc *CatalogoUseCase) Municipios(provinciaID string) ([]dto.MunicipioResponse, error) {
	list, err := uc.repo.ListMunicipios(provinciaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MunicipioResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MunicipioResponse{ID: m.ID, ProvinciaID: m.ProvinciaID, Nombre: m.Nombre})
	}
	return out, nil
}

// Categorias lista las categorías de medicamentos.
func (uc *CatalogoUseCase) Categorias() ([]dto.CatalogoItemResponse, error) {
	list, err := uc.repo.ListCategorias()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogoItemResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CatalogoItemResponse{ID: c.ID, Nombre: c.Nombre})
	}
	return out, nil
}

// Enfermedades lista las enfermedades registradas.
func (uc *CatalogoUseCase) Enfermedades() ([]dto.CatalogoItemResponse, error) {
	list, err := uc.repo.ListEnfermedades()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogoItemResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.CatalogoItemResponse{ID: e.ID, Nombre: e.Nombre})
	}
	return out, nil
}

// Vias lista las vías de administración.
func (uc *CatalogoUseCase) Vias() ([]dto.CatalogoItemResponse, error) {
	list, err := uc.repo.ListVias()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogoItemResponse, 0, len(list))
	for _, v := range list {
		out = append(out, dto.CatalogoItemResponse{ID: v.ID, Nombre: v.Nombre})
	}
	return out, nil
}
