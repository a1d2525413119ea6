package entity

// Catálogos geográficos y clínicos: tablas de consulta simples sin lógica
// propia, sembradas por cmd/seed.

// Provincia es una división territorial de primer nivel.
type Provincia struct {
	ID     string
	Nombre string
}

// Municipio pertenece a una provincia.
type Municipio struct {
	ID          string
	ProvinciaID string
	Nombre      string
}

// Categoria agrupa medicamentos (analgésicos, antibióticos, ...).
type Categoria struct {
	ID     string
	Nombre string
}

// Enfermedad es una condición para la que puede solicitarse medicación.
type Enfermedad struct {
	ID     string
	Nombre string
}

// ViaAdministracion indica cómo se administra un medicamento (oral, IV, ...).
type ViaAdministracion struct {
	ID     string
	Nombre string
}
