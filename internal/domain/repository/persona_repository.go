package repository

import "github.com/donamed/donamed-api/internal/domain/entity"

// PersonaRepository define el puerto de persistencia para Persona.
type PersonaRepository interface {
	Create(p *entity.Persona) error
	GetByCedula(cedula string) (*entity.Persona, error)
	List(limit, offset int) ([]*entity.Persona, error)
	Update(p *entity.Persona) error
}
