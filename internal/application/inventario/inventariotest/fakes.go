// Package inventariotest provee dobles en memoria de los puertos de
// persistencia para probar los motores de aplicación sin base de datos.
//
// El TxRunner de este paquete NO simula rollback: ejecuta el callback sobre
// los mismos repos en memoria. Los tests verifican que los errores se
// propaguen, no el estado intermedio tras un fallo a mitad de transacción.
package inventariotest

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/donamed/donamed-api/internal/application/inventario"
	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/solicitud"
)

// ─────────────────────────────── stock ───────────────────────────────

// StockRepo guarda las filas de inventario en un mapa por llave compuesta.
type StockRepo struct {
	filas map[entity.StockKey]*entity.Stock
}

func NewStockRepo() *StockRepo {
	return &StockRepo{filas: make(map[entity.StockKey]*entity.Stock)}
}

// Get imita al repo real: una celda inexistente se devuelve en cero, nunca nil.
func (r *StockRepo) Get(key entity.StockKey) (*entity.Stock, error) {
	s, ok := r.filas[key]
	if !ok {
		return &entity.Stock{
			AlmacenID:         key.AlmacenID,
			MedicamentoCodigo: key.MedicamentoCodigo,
			LoteCodigo:        key.LoteCodigo,
			Cantidad:          decimal.Zero,
		}, nil
	}
	c := *s
	return &c, nil
}

// GetForUpdate imita al repo real: una celda inexistente se devuelve en cero.
func (r *StockRepo) GetForUpdate(key entity.StockKey) (*entity.Stock, error) {
	s, ok := r.filas[key]
	if !ok {
		return &entity.Stock{
			AlmacenID:         key.AlmacenID,
			MedicamentoCodigo: key.MedicamentoCodigo,
			LoteCodigo:        key.LoteCodigo,
			Cantidad:          decimal.Zero,
		}, nil
	}
	c := *s
	return &c, nil
}

func (r *StockRepo) Upsert(s *entity.Stock) error {
	c := *s
	r.filas[s.Key()] = &c
	return nil
}

func (r *StockRepo) ListByAlmacen(almacenID string, limit, offset int) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.filas {
		if s.AlmacenID == almacenID {
			c := *s
			out = append(out, &c)
		}
	}
	ordenarStock(out)
	return paginar(out, limit, offset), nil
}

func (r *StockRepo) ListByMedicamento(medicamentoCodigo string) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.filas {
		if s.MedicamentoCodigo == medicamentoCodigo {
			c := *s
			out = append(out, &c)
		}
	}
	ordenarStock(out)
	return out, nil
}

// Cantidad devuelve la cantidad actual de una celda (cero si no existe).
func (r *StockRepo) Cantidad(key entity.StockKey) decimal.Decimal {
	s, ok := r.filas[key]
	if !ok {
		return decimal.Zero
	}
	return s.Cantidad
}

func ordenarStock(filas []*entity.Stock) {
	sort.Slice(filas, func(i, j int) bool {
		a, b := filas[i], filas[j]
		if a.AlmacenID != b.AlmacenID {
			return a.AlmacenID < b.AlmacenID
		}
		return a.LoteCodigo < b.LoteCodigo
	})
}

// ──────────────────────────── medicamentos ───────────────────────────

// MedicamentoRepo guarda los medicamentos por código.
type MedicamentoRepo struct {
	porCodigo map[string]*entity.Medicamento
}

func NewMedicamentoRepo() *MedicamentoRepo {
	return &MedicamentoRepo{porCodigo: make(map[string]*entity.Medicamento)}
}

func (r *MedicamentoRepo) Create(m *entity.Medicamento) error {
	if _, ok := r.porCodigo[m.Codigo]; ok {
		return fmt.Errorf("%w: medicamento %s", domain.ErrConflicto, m.Codigo)
	}
	c := *m
	r.porCodigo[m.Codigo] = &c
	return nil
}

func (r *MedicamentoRepo) GetByCodigo(codigo string) (*entity.Medicamento, error) {
	m, ok := r.porCodigo[codigo]
	if !ok {
		return nil, nil
	}
	c := *m
	return &c, nil
}

func (r *MedicamentoRepo) Update(m *entity.Medicamento) error {
	if _, ok := r.porCodigo[m.Codigo]; !ok {
		return fmt.Errorf("%w: medicamento %s", domain.ErrNotFound, m.Codigo)
	}
	c := *m
	r.porCodigo[m.Codigo] = &c
	return nil
}

func (r *MedicamentoRepo) List(_ string, limit, offset int) ([]*entity.Medicamento, error) {
	var out []*entity.Medicamento
	for _, m := range r.porCodigo {
		c := *m
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo < out[j].Codigo })
	return paginar(out, limit, offset), nil
}

func (r *MedicamentoRepo) IncrementarDisponible(codigo string, delta decimal.Decimal) error {
	m, ok := r.porCodigo[codigo]
	if !ok {
		return fmt.Errorf("%w: medicamento %s", domain.ErrNotFound, codigo)
	}
	m.CantidadDisponible = m.CantidadDisponible.Add(delta)
	return nil
}

func (r *MedicamentoRepo) Delete(codigo string) error {
	if _, ok := r.porCodigo[codigo]; !ok {
		return fmt.Errorf("%w: medicamento %s", domain.ErrNotFound, codigo)
	}
	delete(r.porCodigo, codigo)
	return nil
}

// Disponible devuelve el total disponible de un medicamento (cero si no existe).
func (r *MedicamentoRepo) Disponible(codigo string) decimal.Decimal {
	m, ok := r.porCodigo[codigo]
	if !ok {
		return decimal.Zero
	}
	return m.CantidadDisponible
}

// ─────────────────────────────── lotes ───────────────────────────────

// LoteRepo guarda los lotes por código.
type LoteRepo struct {
	porCodigo map[string]*entity.Lote
}

func NewLoteRepo() *LoteRepo {
	return &LoteRepo{porCodigo: make(map[string]*entity.Lote)}
}

func (r *LoteRepo) Create(l *entity.Lote) error {
	if _, ok := r.porCodigo[l.Codigo]; ok {
		return fmt.Errorf("%w: lote %s", domain.ErrConflicto, l.Codigo)
	}
	c := *l
	r.porCodigo[l.Codigo] = &c
	return nil
}

func (r *LoteRepo) GetByCodigo(codigo string) (*entity.Lote, error) {
	l, ok := r.porCodigo[codigo]
	if !ok {
		return nil, nil
	}
	c := *l
	return &c, nil
}

func (r *LoteRepo) ListByMedicamento(medicamentoCodigo string, limit, offset int) ([]*entity.Lote, error) {
	var out []*entity.Lote
	for _, l := range r.porCodigo {
		if l.MedicamentoCodigo == medicamentoCodigo {
			c := *l
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo < out[j].Codigo })
	return paginar(out, limit, offset), nil
}

func (r *LoteRepo) Delete(codigo string) error {
	if _, ok := r.porCodigo[codigo]; !ok {
		return fmt.Errorf("%w: lote %s", domain.ErrNotFound, codigo)
	}
	delete(r.porCodigo, codigo)
	return nil
}

// ──────────────────────────── movimientos ────────────────────────────

// MovimientoRepo acumula los movimientos en orden de creación.
type MovimientoRepo struct {
	Filas []*entity.MovimientoInventario
}

func NewMovimientoRepo() *MovimientoRepo { return &MovimientoRepo{} }

func (r *MovimientoRepo) Create(m *entity.MovimientoInventario) error {
	c := *m
	r.Filas = append(r.Filas, &c)
	return nil
}

func (r *MovimientoRepo) ListByReferencia(referencia string) ([]*entity.MovimientoInventario, error) {
	var out []*entity.MovimientoInventario
	for _, m := range r.Filas {
		if m.Referencia == referencia {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *MovimientoRepo) ListByMedicamento(medicamentoCodigo string, limit, offset int) ([]*entity.MovimientoInventario, error) {
	var out []*entity.MovimientoInventario
	for _, m := range r.Filas {
		if m.MedicamentoCodigo == medicamentoCodigo {
			c := *m
			out = append(out, &c)
		}
	}
	return paginar(out, limit, offset), nil
}

// ──────────────────────────── solicitudes ────────────────────────────

// SolicitudRepo guarda cabeceras y líneas, con numeración secuencial.
type SolicitudRepo struct {
	seq          int64
	cabeceras    map[int64]*entity.Solicitud
	medicamentos map[int64][]entity.SolicitudMedicamento
	detalles     map[int64][]entity.SolicitudDetalle
}

func NewSolicitudRepo() *SolicitudRepo {
	return &SolicitudRepo{
		cabeceras:    make(map[int64]*entity.Solicitud),
		medicamentos: make(map[int64][]entity.SolicitudMedicamento),
		detalles:     make(map[int64][]entity.SolicitudDetalle),
	}
}

func (r *SolicitudRepo) Create(s *entity.Solicitud) error {
	r.seq++
	s.Numero = r.seq
	c := *s
	c.Medicamentos, c.Detalles = nil, nil
	r.cabeceras[s.Numero] = &c
	return nil
}

func (r *SolicitudRepo) GetByNumero(numero int64) (*entity.Solicitud, error) {
	s, ok := r.cabeceras[numero]
	if !ok {
		return nil, nil
	}
	c := *s
	c.Medicamentos = append([]entity.SolicitudMedicamento(nil), r.medicamentos[numero]...)
	c.Detalles = append([]entity.SolicitudDetalle(nil), r.detalles[numero]...)
	return &c, nil
}

func (r *SolicitudRepo) UpdateEstado(numero int64, estado solicitud.Estado, observaciones string, actualizadoEn time.Time) error {
	s, ok := r.cabeceras[numero]
	if !ok {
		return fmt.Errorf("%w: solicitud %d", domain.ErrNotFound, numero)
	}
	s.Estado = estado
	if observaciones != "" {
		s.Observaciones = observaciones
	}
	s.ActualizadoEn = actualizadoEn
	return nil
}

func (r *SolicitudRepo) ListByUsuario(usuarioID string, limit, offset int) ([]*entity.Solicitud, error) {
	return r.listar(func(s *entity.Solicitud) bool { return s.UsuarioID == usuarioID }, limit, offset)
}

func (r *SolicitudRepo) List(estado solicitud.Estado, limit, offset int) ([]*entity.Solicitud, error) {
	return r.listar(func(s *entity.Solicitud) bool { return estado == "" || s.Estado == estado }, limit, offset)
}

func (r *SolicitudRepo) listar(filtro func(*entity.Solicitud) bool, limit, offset int) ([]*entity.Solicitud, error) {
	var out []*entity.Solicitud
	for numero, s := range r.cabeceras {
		if !filtro(s) {
			continue
		}
		c, _ := r.GetByNumero(numero)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Numero > out[j].Numero })
	return paginar(out, limit, offset), nil
}

func (r *SolicitudRepo) AddMedicamento(m *entity.SolicitudMedicamento) error {
	r.medicamentos[m.SolicitudNumero] = append(r.medicamentos[m.SolicitudNumero], *m)
	return nil
}

func (r *SolicitudRepo) ListMedicamentos(numero int64) ([]entity.SolicitudMedicamento, error) {
	return append([]entity.SolicitudMedicamento(nil), r.medicamentos[numero]...), nil
}

func (r *SolicitudRepo) AddDetalle(d *entity.SolicitudDetalle) error {
	r.detalles[d.SolicitudNumero] = append(r.detalles[d.SolicitudNumero], *d)
	return nil
}

func (r *SolicitudRepo) ListDetalles(numero int64) ([]entity.SolicitudDetalle, error) {
	return append([]entity.SolicitudDetalle(nil), r.detalles[numero]...), nil
}

// ───────────────────────────── despachos ─────────────────────────────

// DespachoRepo guarda los despachos con numeración secuencial y unicidad
// por solicitud, como el constraint del esquema real.
type DespachoRepo struct {
	seq       int64
	despachos map[int64]*entity.Despacho
}

func NewDespachoRepo() *DespachoRepo {
	return &DespachoRepo{despachos: make(map[int64]*entity.Despacho)}
}

func (r *DespachoRepo) Create(d *entity.Despacho) error {
	for _, e := range r.despachos {
		if e.SolicitudNumero == d.SolicitudNumero {
			return fmt.Errorf("%w: la solicitud %d ya tiene despacho", domain.ErrConflicto, d.SolicitudNumero)
		}
	}
	r.seq++
	d.Numero = r.seq
	c := *d
	r.despachos[d.Numero] = &c
	return nil
}

func (r *DespachoRepo) GetByNumero(numero int64) (*entity.Despacho, error) {
	d, ok := r.despachos[numero]
	if !ok {
		return nil, nil
	}
	c := *d
	return &c, nil
}

func (r *DespachoRepo) GetBySolicitud(solicitudNumero int64) (*entity.Despacho, error) {
	for _, d := range r.despachos {
		if d.SolicitudNumero == solicitudNumero {
			c := *d
			return &c, nil
		}
	}
	return nil, nil
}

func (r *DespachoRepo) List(limit, offset int) ([]*entity.Despacho, error) {
	var out []*entity.Despacho
	for _, d := range r.despachos {
		c := *d
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Numero > out[j].Numero })
	return paginar(out, limit, offset), nil
}

func (r *DespachoRepo) Delete(numero int64) error {
	if _, ok := r.despachos[numero]; !ok {
		return fmt.Errorf("%w: despacho %d", domain.ErrNotFound, numero)
	}
	delete(r.despachos, numero)
	return nil
}

// ───────────────────────────── donaciones ────────────────────────────

// DonacionRepo guarda cabeceras y líneas de donación.
type DonacionRepo struct {
	seq        int64
	donaciones map[int64]*entity.Donacion
	lineas     map[int64][]entity.DonacionMedicamento
}

func NewDonacionRepo() *DonacionRepo {
	return &DonacionRepo{
		donaciones: make(map[int64]*entity.Donacion),
		lineas:     make(map[int64][]entity.DonacionMedicamento),
	}
}

func (r *DonacionRepo) Create(d *entity.Donacion) error {
	r.seq++
	d.Numero = r.seq
	c := *d
	c.Medicamentos = nil
	r.donaciones[d.Numero] = &c
	return nil
}

func (r *DonacionRepo) GetByNumero(numero int64) (*entity.Donacion, error) {
	d, ok := r.donaciones[numero]
	if !ok {
		return nil, nil
	}
	c := *d
	c.Medicamentos = append([]entity.DonacionMedicamento(nil), r.lineas[numero]...)
	return &c, nil
}

func (r *DonacionRepo) List(limit, offset int) ([]*entity.Donacion, error) {
	var out []*entity.Donacion
	for numero := range r.donaciones {
		c, _ := r.GetByNumero(numero)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Numero > out[j].Numero })
	return paginar(out, limit, offset), nil
}

func (r *DonacionRepo) Delete(numero int64) error {
	if _, ok := r.donaciones[numero]; !ok {
		return fmt.Errorf("%w: donación %d", domain.ErrNotFound, numero)
	}
	delete(r.donaciones, numero)
	return nil
}

func (r *DonacionRepo) AddLinea(l *entity.DonacionMedicamento) error {
	r.lineas[l.DonacionNumero] = append(r.lineas[l.DonacionNumero], *l)
	return nil
}

func (r *DonacionRepo) ListLineas(numero int64) ([]entity.DonacionMedicamento, error) {
	return append([]entity.DonacionMedicamento(nil), r.lineas[numero]...), nil
}

func (r *DonacionRepo) DeleteLineas(numero int64) error {
	delete(r.lineas, numero)
	return nil
}

// ────────────────────── almacenes / personas / proveedores ──────────────────────

// AlmacenRepo guarda los almacenes por ID.
type AlmacenRepo struct {
	porID map[string]*entity.Almacen
}

func NewAlmacenRepo() *AlmacenRepo {
	return &AlmacenRepo{porID: make(map[string]*entity.Almacen)}
}

func (r *AlmacenRepo) Create(a *entity.Almacen) error {
	c := *a
	r.porID[a.ID] = &c
	return nil
}

func (r *AlmacenRepo) GetByID(id string) (*entity.Almacen, error) {
	a, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	c := *a
	return &c, nil
}

func (r *AlmacenRepo) Update(a *entity.Almacen) error {
	if _, ok := r.porID[a.ID]; !ok {
		return fmt.Errorf("%w: almacén %s", domain.ErrNotFound, a.ID)
	}
	c := *a
	r.porID[a.ID] = &c
	return nil
}

func (r *AlmacenRepo) List(limit, offset int) ([]*entity.Almacen, error) {
	var out []*entity.Almacen
	for _, a := range r.porID {
		c := *a
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginar(out, limit, offset), nil
}

func (r *AlmacenRepo) Delete(id string) error {
	if _, ok := r.porID[id]; !ok {
		return fmt.Errorf("%w: almacén %s", domain.ErrNotFound, id)
	}
	delete(r.porID, id)
	return nil
}

// PersonaRepo guarda las personas por cédula.
type PersonaRepo struct {
	porCedula map[string]*entity.Persona
}

func NewPersonaRepo() *PersonaRepo {
	return &PersonaRepo{porCedula: make(map[string]*entity.Persona)}
}

func (r *PersonaRepo) Create(p *entity.Persona) error {
	if _, ok := r.porCedula[p.Cedula]; ok {
		return fmt.Errorf("%w: cédula %s ya registrada", domain.ErrConflicto, p.Cedula)
	}
	c := *p
	r.porCedula[p.Cedula] = &c
	return nil
}

func (r *PersonaRepo) GetByCedula(cedula string) (*entity.Persona, error) {
	p, ok := r.porCedula[cedula]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *PersonaRepo) List(limit, offset int) ([]*entity.Persona, error) {
	var out []*entity.Persona
	for _, p := range r.porCedula {
		c := *p
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cedula < out[j].Cedula })
	return paginar(out, limit, offset), nil
}

func (r *PersonaRepo) Update(p *entity.Persona) error {
	if _, ok := r.porCedula[p.Cedula]; !ok {
		return fmt.Errorf("%w: persona %s", domain.ErrNotFound, p.Cedula)
	}
	c := *p
	r.porCedula[p.Cedula] = &c
	return nil
}

// ProveedorRepo guarda los proveedores por ID.
type ProveedorRepo struct {
	porID map[string]*entity.Proveedor
}

func NewProveedorRepo() *ProveedorRepo {
	return &ProveedorRepo{porID: make(map[string]*entity.Proveedor)}
}

func (r *ProveedorRepo) Create(p *entity.Proveedor) error {
	if _, ok := r.porID[p.ID]; ok {
		return fmt.Errorf("%w: proveedor %s", domain.ErrConflicto, p.ID)
	}
	c := *p
	r.porID[p.ID] = &c
	return nil
}

func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	p, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *ProveedorRepo) List(limit, offset int) ([]*entity.Proveedor, error) {
	var out []*entity.Proveedor
	for _, p := range r.porID {
		c := *p
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginar(out, limit, offset), nil
}

func (r *ProveedorRepo) Update(p *entity.Proveedor) error {
	if _, ok := r.porID[p.ID]; !ok {
		return fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, p.ID)
	}
	c := *p
	r.porID[p.ID] = &c
	return nil
}

// ───────────────────────────── tx runner ─────────────────────────────

// TxRunner ejecuta el callback directamente sobre los repos en memoria.
type TxRunner struct {
	Repos inventario.Repos
}

func (t *TxRunner) Run(_ context.Context, fn func(r inventario.Repos) error) error {
	return fn(t.Repos)
}

// ───────────────────────────── entorno ───────────────────────────────

// Entorno agrupa todos los dobles y un TxRunner atado a ellos.
type Entorno struct {
	Stock        *StockRepo
	Medicamentos *MedicamentoRepo
	Lotes        *LoteRepo
	Movimientos  *MovimientoRepo
	Solicitudes  *SolicitudRepo
	Despachos    *DespachoRepo
	Donaciones   *DonacionRepo
	Almacenes    *AlmacenRepo
	Personas     *PersonaRepo
	Proveedores  *ProveedorRepo
	Tx           *TxRunner
}

// NewEntorno construye un entorno vacío.
func NewEntorno() *Entorno {
	e := &Entorno{
		Stock:        NewStockRepo(),
		Medicamentos: NewMedicamentoRepo(),
		Lotes:        NewLoteRepo(),
		Movimientos:  NewMovimientoRepo(),
		Solicitudes:  NewSolicitudRepo(),
		Despachos:    NewDespachoRepo(),
		Donaciones:   NewDonacionRepo(),
		Almacenes:    NewAlmacenRepo(),
		Personas:     NewPersonaRepo(),
		Proveedores:  NewProveedorRepo(),
	}
	e.Tx = &TxRunner{Repos: e.Repos()}
	return e
}

// Repos devuelve el conjunto de repos en la forma que esperan los motores.
func (e *Entorno) Repos() inventario.Repos {
	return inventario.Repos{
		Stock:        e.Stock,
		Medicamentos: e.Medicamentos,
		Lotes:        e.Lotes,
		Movimientos:  e.Movimientos,
		Solicitudes:  e.Solicitudes,
		Despachos:    e.Despachos,
		Donaciones:   e.Donaciones,
	}
}

// ConMedicamento siembra un medicamento activo con total disponible cero.
func (e *Entorno) ConMedicamento(codigo, nombre string) *Entorno {
	_ = e.Medicamentos.Create(&entity.Medicamento{
		Codigo:             codigo,
		Nombre:             nombre,
		Activo:             true,
		CantidadDisponible: decimal.Zero,
	})
	return e
}

// ConLote siembra un lote de un medicamento.
func (e *Entorno) ConLote(codigo, medicamentoCodigo string) *Entorno {
	_ = e.Lotes.Create(&entity.Lote{Codigo: codigo, MedicamentoCodigo: medicamentoCodigo})
	return e
}

// ConAlmacen siembra un almacén.
func (e *Entorno) ConAlmacen(id, nombre string) *Entorno {
	_ = e.Almacenes.Create(&entity.Almacen{ID: id, Nombre: nombre})
	return e
}

// ConPersona siembra una persona.
func (e *Entorno) ConPersona(cedula, nombre string) *Entorno {
	_ = e.Personas.Create(&entity.Persona{Cedula: cedula, Nombre: nombre})
	return e
}

// ConProveedor siembra un proveedor.
func (e *Entorno) ConProveedor(id, nombre string) *Entorno {
	_ = e.Proveedores.Create(&entity.Proveedor{ID: id, Nombre: nombre})
	return e
}

// ConStock siembra una celda de inventario y suma al total del medicamento.
func (e *Entorno) ConStock(almacenID, medicamentoCodigo, loteCodigo string, cantidad decimal.Decimal) *Entorno {
	_ = e.Stock.Upsert(&entity.Stock{
		AlmacenID:         almacenID,
		MedicamentoCodigo: medicamentoCodigo,
		LoteCodigo:        loteCodigo,
		Cantidad:          cantidad,
	})
	_ = e.Medicamentos.IncrementarDisponible(medicamentoCodigo, cantidad)
	return e
}

// paginar aplica limit/offset al estilo de los repos reales (limit<=0 = todo).
func paginar[T any](in []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(in) {
			return nil
		}
		in = in[offset:]
	}
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
