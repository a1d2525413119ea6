package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEntradaInvalida    = errors.New("entrada inválida")
	ErrTransicionInvalida = errors.New("transición de estado no permitida")
	ErrEstadoInvalido     = errors.New("estado actual no permite la operación")
	ErrConflicto          = errors.New("conflicto con el estado actual")
	ErrStockInsuficiente  = errors.New("stock insuficiente")
	ErrEmailRegistrado    = errors.New("el email ya está registrado")
	ErrNoAutorizado       = errors.New("no autorizado")
	ErrAccesoDenegado     = errors.New("acceso denegado")
)
