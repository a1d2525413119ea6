package repository

import "github.com/donamed/donamed-api/internal/domain/entity"

// CatalogoRepository agrupa los puertos de lectura/siembra de los catálogos
// simples (provincias, municipios, categorías, enfermedades, vías).
type CatalogoRepository interface {
	UpsertProvincia(p *entity.Provincia) error
	ListProvincias() ([]*entity.Provincia, error)
	UpsertMunicipio(m *entity.Municipio) error
	ListMunicipios(provinciaID string) ([]*entity.Municipio, error)
	UpsertCategoria(c *entity.Categoria) error
	ListCategorias() ([]*entity.Categoria, error)
	UpsertEnfermedad(e *entity.Enfermedad) error
	ListEnfermedades() ([]*entity.Enfermedad, error)
	UpsertVia(v *entity.ViaAdministracion) error
	ListVias() ([]*entity.ViaAdministracion, error)
}
