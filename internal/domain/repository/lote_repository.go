package repository

import "github.com/donamed/donamed-api/internal/domain/entity"

// LoteRepository define el puerto de persistencia para Lote.
type LoteRepository interface {
	Create(l *entity.Lote) error
	GetByCodigo(codigo string) (*entity.Lote, error)
	ListByMedicamento(medicamentoCodigo string, limit, offset int) ([]*entity.Lote, error)
	Delete(codigo string) error
}
