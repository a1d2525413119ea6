// Package donacion implementa el motor de recepción de donaciones: alta de la
// donación con sus líneas y el crédito de inventario correspondiente, todo en
// una transacción. Toda la validación de líneas ocurre antes de la primera
// escritura.
package donacion

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/application/inventario"
	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
)

// RNC de 9 dígitos (empresas) o cédula de 11 (personas físicas).
var proveedorIDRx = regexp.MustCompile(`^(\d{9}|\d{11})$`)

// UseCase casos de uso del motor de donaciones.
type UseCase struct {
	txRunner      inventario.TxRunner
	ledger        *inventario.Ledger
	donacionRepo  repository.DonacionRepository
	proveedorRepo repository.ProveedorRepository
	almacenRepo   repository.AlmacenRepository
	loteRepo      repository.LoteRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner inventario.TxRunner,
	ledger *inventario.Ledger,
	donacionRepo repository.DonacionRepository,
	proveedorRepo repository.ProveedorRepository,
	almacenRepo repository.AlmacenRepository,
	loteRepo repository.LoteRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		ledger:        ledger,
		donacionRepo:  donacionRepo,
		proveedorRepo: proveedorRepo,
		almacenRepo:   almacenRepo,
		loteRepo:      loteRepo,
	}
}

// lineaValidada es una línea ya verificada, con el medicamento del lote resuelto.
type lineaValidada struct {
	almacenID         string
	loteCodigo        string
	medicamentoCodigo string
	cantidad          decimal.Decimal
}

// validarLineas verifica lote, almacén y cantidad de cada línea antes de
// cualquier escritura, y resuelve el medicamento dueño de cada lote.
func (uc *UseCase) validarLineas(lineas []dto.DonacionLineaInput) ([]lineaValidada, error) {
	if len(lineas) == 0 {
		return nil, fmt.Errorf("%w: la donación requiere al menos una línea", domain.ErrEntradaInvalida)
	}
	out := make([]lineaValidada, 0, len(lineas))
	for _, l := range lineas {
		if !l.Cantidad.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: la cantidad de cada línea debe ser positiva", domain.ErrEntradaInvalida)
		}
		lote, err := uc.loteRepo.GetByCodigo(l.LoteCodigo)
		if err != nil {
			return nil, err
		}
		if lote == nil {
			return nil, fmt.Errorf("%w: lote %s no existe", domain.ErrEntradaInvalida, l.LoteCodigo)
		}
		almacen, err := uc.almacenRepo.GetByID(l.AlmacenID)
		if err != nil {
			return nil, err
		}
		if almacen == nil {
			return nil, fmt.Errorf("%w: almacén %s no existe", domain.ErrEntradaInvalida, l.AlmacenID)
		}
		out = append(out, lineaValidada{
			almacenID:         l.AlmacenID,
			loteCodigo:        l.LoteCodigo,
			medicamentoCodigo: lote.MedicamentoCodigo,
			cantidad:          l.Cantidad,
		})
	}
	return out, nil
}

// validarProveedor verifica forma (RNC o cédula) y existencia del proveedor.
func (uc *UseCase) validarProveedor(id string) error {
	if id == "" {
		return nil
	}
	if !proveedorIDRx.MatchString(id) {
		return fmt.Errorf("%w: proveedor debe ser RNC de 9 dígitos o cédula de 11", domain.ErrEntradaInvalida)
	}
	p, err := uc.proveedorRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
	}
	return nil
}

// Crear registra una donación: cabecera, líneas y crédito de stock por cada
// línea, en una sola transacción. creadoPor queda registrado en cada
// movimiento de inventario.
func (uc *UseCase) Crear(ctx context.Context, in dto.CrearDonacionRequest, creadoPor string) (*dto.DonacionResponse, error) {
	if err := uc.validarProveedor(in.ProveedorID); err != nil {
		return nil, err
	}
	lineas, err := uc.validarLineas(in.Lineas)
	if err != nil {
		return nil, err
	}

	ahora := time.Now()
	donacion := &entity.Donacion{
		ProveedorID: in.ProveedorID,
		Descripcion: in.Descripcion,
		CreadoEn:    ahora,
	}
	err = uc.txRunner.Run(ctx, func(r inventario.Repos) error {
		if err := r.Donaciones.Create(donacion); err != nil {
			return err
		}
		referencia := fmt.Sprintf("donacion-%d", donacion.Numero)
		for _, l := range lineas {
			linea := &entity.DonacionMedicamento{
				ID:             uuid.New().String(),
				DonacionNumero: donacion.Numero,
				AlmacenID:      l.almacenID,
				LoteCodigo:     l.loteCodigo,
				Cantidad:       l.cantidad,
			}
			if err := r.Donaciones.AddLinea(linea); err != nil {
				return err
			}
			key := entity.StockKey{AlmacenID: l.almacenID, MedicamentoCodigo: l.medicamentoCodigo, LoteCodigo: l.loteCodigo}
			if err := uc.ledger.Acreditar(r, key, l.cantidad, referencia, creadoPor, ahora); err != nil {
				return err
			}
			donacion.Medicamentos = append(donacion.Medicamentos, *linea)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToDonacionResponse(donacion), nil
}

// AgregarLineas añade líneas a una donación existente y acredita su stock.
// Aditivo: nunca reemplaza líneas previas.
func (uc *UseCase) AgregarLineas(ctx context.Context, numero int64, in dto.AgregarLineasRequest, creadoPor string) (*dto.DonacionResponse, error) {
	donacion, err := uc.donacionRepo.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if donacion == nil {
		return nil, fmt.Errorf("%w: donación %d", domain.ErrNotFound, numero)
	}
	lineas, err := uc.validarLineas(in.Lineas)
	if err != nil {
		return nil, err
	}

	ahora := time.Now()
	referencia := fmt.Sprintf("donacion-%d", numero)
	err = uc.txRunner.Run(ctx, func(r inventario.Repos) error {
		for _, l := range lineas {
			linea := &entity.DonacionMedicamento{
				ID:             uuid.New().String(),
				DonacionNumero: numero,
				AlmacenID:      l.almacenID,
				LoteCodigo:     l.loteCodigo,
				Cantidad:       l.cantidad,
			}
			if err := r.Donaciones.AddLinea(linea); err != nil {
				return err
			}
			key := entity.StockKey{AlmacenID: l.almacenID, MedicamentoCodigo: l.medicamentoCodigo, LoteCodigo: l.loteCodigo}
			if err := uc.ledger.Acreditar(r, key, l.cantidad, referencia, creadoPor, ahora); err != nil {
				return err
			}
			donacion.Medicamentos = append(donacion.Medicamentos, *linea)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToDonacionResponse(donacion), nil
}

// Eliminar revierte el crédito de stock de cada línea, borra las líneas y la
// donación, todo-o-nada. Si el stock donado ya fue despachado, el débito de
// reverso falla con ErrStockInsuficiente y nada se borra.
func (uc *UseCase) Eliminar(ctx context.Context, numero int64, creadoPor string) error {
	ahora := time.Now()
	referencia := fmt.Sprintf("donacion-%d-reverso", numero)
	return uc.txRunner.Run(ctx, func(r inventario.Repos) error {
		donacion, err := r.Donaciones.GetByNumero(numero)
		if err != nil {
			return err
		}
		if donacion == nil {
			return fmt.Errorf("%w: donación %d", domain.ErrNotFound, numero)
		}
		for _, l := range donacion.Medicamentos {
			if err := uc.ledger.Debitar(r, l.AlmacenID, l.LoteCodigo, l.Cantidad, referencia, creadoPor, ahora); err != nil {
				return err
			}
		}
		if err := r.Donaciones.DeleteLineas(numero); err != nil {
			return err
		}
		return r.Donaciones.Delete(numero)
	})
}

// Obtener devuelve una donación por número.
func (uc *UseCase) Obtener(ctx context.Context, numero int64) (*dto.DonacionResponse, error) {
	donacion, err := uc.donacionRepo.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if donacion == nil {
		return nil, fmt.Errorf("%w: donación %d", domain.ErrNotFound, numero)
	}
	return dto.ToDonacionResponse(donacion), nil
}

// Listar lista donaciones con paginación.
func (uc *UseCase) Listar(ctx context.Context, limit, offset int) ([]dto.DonacionResponse, error) {
	list, err := uc.donacionRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DonacionResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *dto.ToDonacionResponse(d))
	}
	return out, nil
}
