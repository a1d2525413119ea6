package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donamed/donamed-api/internal/application/auth"
	"github.com/donamed/donamed-api/internal/application/despacho"
	"github.com/donamed/donamed-api/internal/application/donacion"
	"github.com/donamed/donamed-api/internal/application/inventario"
	"github.com/donamed/donamed-api/internal/application/solicitud"
	"github.com/donamed/donamed-api/internal/application/usecase"
	"github.com/donamed/donamed-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	SolicitudUC   *solicitud.UseCase
	DespachoUC    *despacho.UseCase
	ActaUC        *despacho.ActaUseCase
	DonacionUC    *donacion.UseCase
	AjusteUC      *inventario.AjusteUseCase
	ConsultaUC    *inventario.ConsultaUseCase
	MedicamentoUC *usecase.MedicamentoUseCase
	LoteUC        *usecase.LoteUseCase
	AlmacenUC     *usecase.AlmacenUseCase
	ProveedorUC   *usecase.ProveedorUseCase
	PersonaUC     *usecase.PersonaUseCase
	CatalogoUC    *usecase.CatalogoUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogos (público: los necesita el formulario de registro)
	catalogos := api.Group("/catalogos")
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	catalogos.Get("/provincias", catalogoHandler.Provincias)
	catalogos.Get("/municipios", catalogoHandler.Municipios)
	catalogos.Get("/categorias", catalogoHandler.Categorias)
	catalogos.Get("/enfermedades", catalogoHandler.Enfermedades)
	catalogos.Get("/vias", catalogoHandler.Vias)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	soloStaff := RequireRole(entity.RolAdmin, entity.RolAlmacenista)
	soloAdmin := RequireRole(entity.RolAdmin)

	// Solicitudes: cualquier usuario autenticado crea y consulta las suyas;
	// las transiciones y los detalles son del personal.
	solicitudes := protected.Group("/solicitudes")
	solicitudHandler := NewSolicitudHandler(deps.SolicitudUC)
	solicitudes.Post("/", solicitudHandler.Crear)
	solicitudes.Get("/", solicitudHandler.Listar)
	solicitudes.Get("/:numero", solicitudHandler.Obtener)
	solicitudes.Post("/:numero/medicamentos", solicitudHandler.AgregarMedicamento)
	solicitudes.Post("/:numero/transicion", soloStaff, solicitudHandler.Transicionar)
	solicitudes.Post("/:numero/detalles", soloStaff, solicitudHandler.AgregarDetalle)

	// Despachos (personal)
	despachos := protected.Group("/despachos", soloStaff)
	despachoHandler := NewDespachoHandler(deps.DespachoUC, deps.ActaUC)
	despachos.Post("/", despachoHandler.Crear)
	despachos.Get("/", despachoHandler.Listar)
	despachos.Get("/:numero", despachoHandler.Obtener)
	despachos.Get("/:numero/acta", despachoHandler.Acta)
	despachos.Delete("/:numero", soloAdmin, despachoHandler.Eliminar)

	// Donaciones (personal)
	donaciones := protected.Group("/donaciones", soloStaff)
	donacionHandler := NewDonacionHandler(deps.DonacionUC)
	donaciones.Post("/", donacionHandler.Crear)
	donaciones.Get("/", donacionHandler.Listar)
	donaciones.Get("/:numero", donacionHandler.Obtener)
	donaciones.Post("/:numero/lineas", donacionHandler.AgregarLineas)
	donaciones.Delete("/:numero", soloAdmin, donacionHandler.Eliminar)

	// Inventario: consultas para el personal, ajustes solo admin
	invGroup := protected.Group("/inventario", soloStaff)
	inventarioHandler := NewInventarioHandler(deps.AjusteUC, deps.ConsultaUC)
	invGroup.Post("/ajustes", soloAdmin, inventarioHandler.Ajustar)
	invGroup.Get("/almacenes/:id/stock", inventarioHandler.StockPorAlmacen)
	invGroup.Get("/medicamentos/:codigo/stock", inventarioHandler.StockPorMedicamento)
	invGroup.Get("/medicamentos/:codigo/movimientos", inventarioHandler.Movimientos)
	invGroup.Get("/movimientos", inventarioHandler.MovimientosPorReferencia)

	// Medicamentos: lectura autenticada, escritura del personal
	medicamentos := protected.Group("/medicamentos")
	medicamentoHandler := NewMedicamentoHandler(deps.MedicamentoUC)
	medicamentos.Get("/", medicamentoHandler.Listar)
	medicamentos.Get("/:codigo", medicamentoHandler.Obtener)
	medicamentos.Post("/", soloStaff, medicamentoHandler.Crear)
	medicamentos.Put("/:codigo", soloStaff, medicamentoHandler.Actualizar)
	medicamentos.Delete("/:codigo", soloAdmin, medicamentoHandler.Eliminar)

	// Lotes (personal)
	lotes := protected.Group("/lotes", soloStaff)
	loteHandler := NewLoteHandler(deps.LoteUC)
	lotes.Post("/", loteHandler.Crear)
	lotes.Get("/", loteHandler.ListarPorMedicamento)
	lotes.Get("/:codigo", loteHandler.Obtener)
	lotes.Delete("/:codigo", soloAdmin, loteHandler.Eliminar)

	// Almacenes (personal)
	almacenes := protected.Group("/almacenes", soloStaff)
	almacenHandler := NewAlmacenHandler(deps.AlmacenUC)
	almacenes.Post("/", almacenHandler.Crear)
	almacenes.Get("/", almacenHandler.Listar)
	almacenes.Get("/:id", almacenHandler.Obtener)
	almacenes.Put("/:id", almacenHandler.Actualizar)
	almacenes.Delete("/:id", soloAdmin, almacenHandler.Eliminar)

	// Proveedores (personal)
	proveedores := protected.Group("/proveedores", soloStaff)
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Crear)
	proveedores.Get("/", proveedorHandler.Listar)
	proveedores.Get("/:id", proveedorHandler.Obtener)
	proveedores.Put("/:id", proveedorHandler.Actualizar)

	// Personas: cualquier usuario autenticado registra y consulta
	personas := protected.Group("/personas")
	personaHandler := NewPersonaHandler(deps.PersonaUC)
	personas.Post("/", personaHandler.Crear)
	personas.Get("/", soloStaff, personaHandler.Listar)
	personas.Get("/:cedula", personaHandler.Obtener)
	personas.Put("/:cedula", personaHandler.Actualizar)
}
