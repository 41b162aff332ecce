package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dguzman/staffing-api/internal/application/auth"
	"github.com/dguzman/staffing-api/internal/application/dto"
	"github.com/dguzman/staffing-api/internal/domain"
	"github.com/dguzman/staffing-api/internal/domain/entity"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) GetByCPF(cpf string) (*entity.User, error) {
	for _, u := range r.users {
		if u.CPF == cpf {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

// fakeLimiter contador en memoria, sin ventana de expiración.
type fakeLimiter struct {
	counts map[string]int
	resets int
}

func newFakeLimiter() *fakeLimiter { return &fakeLimiter{counts: map[string]int{}} }

func (l *fakeLimiter) FailedAttempts(_ context.Context, email string) (int, error) {
	return l.counts[email], nil
}
func (l *fakeLimiter) RegisterFailure(_ context.Context, email string) (int, error) {
	l.counts[email]++
	return l.counts[email], nil
}
func (l *fakeLimiter) Reset(_ context.Context, email string) error {
	delete(l.counts, email)
	l.resets++
	return nil
}

var jwtCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 30, Issuer: "staffing-test"}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:           "user-" + email,
		FirstName:    "Ana",
		LastName:     "Gómez",
		Email:        email,
		CPF:          "12345678901",
		PasswordHash: string(hash),
		Role:         entity.RoleEmployee,
		IsActive:     active,
	}
	require.NoError(t, repo.Create(u))
	return u
}

func TestRegister_CreaEmpleadoPorDefecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, newFakeLimiter(), jwtCfg)

	out, err := uc.Register(dto.RegisterRequest{
		FirstName: "Ana", LastName: "Gómez",
		Email: "ana@example.com", CPF: "12345678901",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, out.Role)
	assert.True(t, out.IsActive)

	stored, _ := repo.GetByEmail("ana@example.com")
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestRegister_EmailYCPFUnicos(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ana@example.com", "secreto123", true)
	uc := auth.NewAuthUseCase(repo, newFakeLimiter(), jwtCfg)

	_, err := uc.Register(dto.RegisterRequest{
		FirstName: "Otra", LastName: "Ana",
		Email: "ana@example.com", CPF: "99999999999",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = uc.Register(dto.RegisterRequest{
		FirstName: "Otra", LastName: "Ana",
		Email: "otra@example.com", CPF: "12345678901",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrCPFAlreadyExists)
}

func TestLogin_Exitoso(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ana@example.com", "secreto123", true)
	limiter := newFakeLimiter()
	uc := auth.NewAuthUseCase(repo, limiter, jwtCfg)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, "ana@example.com", out.User.Email)
	assert.Equal(t, 1, limiter.resets, "el éxito resetea el contador")
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ana@example.com", "secreto123", true)
	limiter := newFakeLimiter()
	uc := auth.NewAuthUseCase(repo, limiter, jwtCfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 1, limiter.counts["ana@example.com"])
}

func TestLogin_EmailDesconocidoTambienCuenta(t *testing.T) {
	// El fallo se registra aunque el email no exista: no filtrar qué emails hay.
	limiter := newFakeLimiter()
	uc := auth.NewAuthUseCase(newFakeUserRepo(), limiter, jwtCfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 1, limiter.counts["nadie@example.com"])
}

func TestLogin_BloqueoTrasCincoFallos(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ana@example.com", "secreto123", true)
	limiter := newFakeLimiter()
	uc := auth.NewAuthUseCase(repo, limiter, jwtCfg)

	for i := 0; i < auth.MaxFailedAttempts; i++ {
		_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "incorrecto"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	}

	// Con el contador lleno, ni siquiera el password correcto entra.
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrTooManyAttempts)
}

func TestLogin_VentanaExpiradaPermiteReintentar(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ana@example.com", "secreto123", true)
	limiter := newFakeLimiter()
	uc := auth.NewAuthUseCase(repo, limiter, jwtCfg)

	for i := 0; i < auth.MaxFailedAttempts; i++ {
		_, _ = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "incorrecto"})
	}
	// Simular expiración de la clave en Redis.
	delete(limiter.counts, "ana@example.com")

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ana@example.com", "secreto123", false)
	limiter := newFakeLimiter()
	uc := auth.NewAuthUseCase(repo, limiter, jwtCfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, limiter.counts["ana@example.com"], "credenciales correctas: no cuenta como fallo")
}
