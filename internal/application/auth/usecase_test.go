package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrmz/chipsmanager-api/internal/application/auth"
	"github.com/davidrmz/chipsmanager-api/internal/application/dto"
	"github.com/davidrmz/chipsmanager-api/internal/domain"
	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
	"github.com/davidrmz/chipsmanager-api/pkg/jwt"
)

type stubUserRepo struct {
	users map[string]*entity.User // por email
}

func newStubUserRepo() *stubUserRepo { return &stubUserRepo{users: make(map[string]*entity.User)} }

func (r *stubUserRepo) Create(u *entity.User) error { r.users[u.Email] = u; return nil }
func (r *stubUserRepo) Update(u *entity.User) error { r.users[u.Email] = u; return nil }
func (r *stubUserRepo) Delete(id string) error      { return nil }

func (r *stubUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func testJWTCfg() auth.JWTConfig {
	return auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "chipsmanager-test"}
}

// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_RolPorDefectoVendedor(t *testing.T) {
	uc := auth.NewUseCase(newStubUserRepo(), testJWTCfg())

	user, err := uc.Register(dto.RegisterRequest{
		Email: " Ana@Tienda.MX ", Password: "secreta1", Name: "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@tienda.mx", user.Email, "el email se normaliza")
	assert.Equal(t, entity.RoleVendedor, user.Role)
	assert.Equal(t, "active", user.Status)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := auth.NewUseCase(newStubUserRepo(), testJWTCfg())

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@tienda.mx", Password: "secreta1"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@tienda.mx", Password: "otraclave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_Validaciones(t *testing.T) {
	uc := auth.NewUseCase(newStubUserRepo(), testJWTCfg())

	_, err := uc.Register(dto.RegisterRequest{Email: "", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@tienda.mx", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@tienda.mx", Password: "secreta1", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol fuera del catálogo")
}

func TestLogin_EmiteTokenConRol(t *testing.T) {
	repo := newStubUserRepo()
	cfg := testJWTCfg()
	uc := auth.NewUseCase(repo, cfg)

	registered, err := uc.Register(dto.RegisterRequest{
		Email: "ana@tienda.mx", Password: "secreta1", Role: entity.RoleBodeguero,
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@tienda.mx", Password: "secreta1"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, registered.ID, resp.User.ID)

	userID, role, err := jwt.Parse(cfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, entity.RoleBodeguero, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := auth.NewUseCase(newStubUserRepo(), testJWTCfg())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@tienda.mx", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@tienda.mx", Password: "secreta1"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@tienda.mx", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
