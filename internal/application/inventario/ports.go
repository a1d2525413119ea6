package inventario

import (
	"context"

	"github.com/donamed/donamed-api/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma transacción de BD.
// Los motores (despacho, donación, ajuste) reciben este conjunto dentro del
// callback del TxRunner y nunca mezclan repos de transacciones distintas.
type Repos struct {
	Stock        repository.StockRepository
	Medicamentos repository.MedicamentoRepository
	Lotes        repository.LoteRepository
	Movimientos  repository.MovimientoRepository
	Solicitudes  repository.SolicitudRepository
	Despachos    repository.DespachoRepository
	Donaciones   repository.DonacionRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad todo-o-nada para las
// operaciones multi-escritura de los motores.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
