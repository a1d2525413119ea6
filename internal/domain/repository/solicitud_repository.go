package repository

import (
	"time"

	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/solicitud"
)

// SolicitudRepository define el puerto de persistencia para Solicitud y sus
// líneas. GetByNumero devuelve el agregado con Medicamentos y Detalles
// cargados; UpdateEstado debe leer/escribir dentro de la transacción del
// caller cuando forma parte de una operación mayor (despacho).
type SolicitudRepository interface {
	Create(s *entity.Solicitud) error
	GetByNumero(numero int64) (*entity.Solicitud, error)
	UpdateEstado(numero int64, estado solicitud.Estado, observaciones string, actualizadoEn time.Time) error
	ListByUsuario(usuarioID string, limit, offset int) ([]*entity.Solicitud, error)
	List(estado solicitud.Estado, limit, offset int) ([]*entity.Solicitud, error)

	AddMedicamento(m *entity.SolicitudMedicamento) error
	ListMedicamentos(numero int64) ([]entity.SolicitudMedicamento, error)
	AddDetalle(d *entity.SolicitudDetalle) error
	ListDetalles(numero int64) ([]entity.SolicitudDetalle, error)
}
