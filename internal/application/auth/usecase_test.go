package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donamed/donamed-api/internal/application/auth"
	"github.com/donamed/donamed-api/internal/application/dto"
	"github.com/donamed/donamed-api/internal/domain"
	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/pkg/jwt"
)

// usuarioRepoMem es un doble en memoria del puerto de usuarios.
type usuarioRepoMem struct {
	porID map[string]*entity.Usuario
}

func nuevoUsuarioRepo() *usuarioRepoMem {
	return &usuarioRepoMem{porID: make(map[string]*entity.Usuario)}
}

func (r *usuarioRepoMem) Create(u *entity.Usuario) error {
	for _, e := range r.porID {
		if strings.EqualFold(e.Email, u.Email) {
			return domain.ErrEmailRegistrado
		}
	}
	c := *u
	r.porID[u.ID] = &c
	return nil
}

func (r *usuarioRepoMem) GetByID(id string) (*entity.Usuario, error) {
	u, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *usuarioRepoMem) FindByEmail(email string) (*entity.Usuario, error) {
	for _, u := range r.porID {
		if strings.EqualFold(u.Email, email) {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

var cfg = auth.JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "donamed-test"}

func TestRegister_CreaUsuarioConRolPorDefecto(t *testing.T) {
	repo := nuevoUsuarioRepo()
	uc := auth.NewUseCase(repo, cfg)

	out, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "clave123"})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, entity.RolSolicitante, out.Rol, "sin rol explícito el usuario es solicitante")

	guardado, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, guardado)
	assert.NotEqual(t, "clave123", guardado.PasswordHash, "el password nunca se guarda en claro")
	assert.True(t, guardado.Activo)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := auth.NewUseCase(nuevoUsuarioRepo(), cfg)

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "clave123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrEmailRegistrado)
}

func TestRegister_RequiereEmailYPassword(t *testing.T) {
	uc := auth.NewUseCase(nuevoUsuarioRepo(), cfg)

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = uc.Register(dto.RegisterRequest{Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestLogin_DevuelveTokenConClaims(t *testing.T) {
	repo := nuevoUsuarioRepo()
	uc := auth.NewUseCase(repo, cfg)

	registrado, err := uc.Register(dto.RegisterRequest{
		Email: "luis@example.com", Password: "clave123", Rol: entity.RolAlmacenista, PersonaCedula: "00112345678",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "luis@example.com", Password: "clave123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, registrado.ID, out.User.ID)

	userID, cedula, rol, err := jwt.Parse(cfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registrado.ID, userID)
	assert.Equal(t, "00112345678", cedula)
	assert.Equal(t, entity.RolAlmacenista, rol)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := auth.NewUseCase(nuevoUsuarioRepo(), cfg)

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "clave123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewUseCase(nuevoUsuarioRepo(), cfg)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "clave"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo := nuevoUsuarioRepo()
	uc := auth.NewUseCase(repo, cfg)

	registrado, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "clave123"})
	require.NoError(t, err)
	repo.porID[registrado.ID].Activo = false

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrAccesoDenegado)
}
