package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
	"github.com/donamed/donamed-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro y login.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailRegistrado si el email ya existe.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existing, _ := uc.usuarioRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailRegistrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolSolicitante
	}
	nombre := in.Nombre
	if nombre == "" {
		nombre = in.Email
	}
	ahora := time.Now()
	u := &entity.Usuario{
		ID:            uuid.New().String(),
		Email:         in.Email,
		PasswordHash:  string(hash),
		Nombre:        nombre,
		Rol:           rol,
		PersonaCedula: in.PersonaCedula,
		Activo:        true,
		CreadoEn:      ahora,
		ActualizadoEn: ahora,
	}
	if err := uc.usuarioRepo.Create(u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Login verifica email/password, genera el JWT y retorna token + usuario.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrNoAutorizado
	}
	if !u.Activo {
		return nil, domain.ErrAccesoDenegado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.PersonaCedula, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(u)}, nil
}

func toUserResponse(u *entity.Usuario) *dto.UserResponse {
	return &dto.UserResponse{ID: u.ID, Email: u.Email, Nombre: u.Nombre, Rol: u.Rol}
}
