package dto

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	Nombre        string `json:"nombre,omitempty"`
	Rol           string `json:"rol,omitempty"`
	PersonaCedula string `json:"persona_cedula,omitempty"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario en respuestas (sin hash).
type UserResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

// LoginResponse token + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
