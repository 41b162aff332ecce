package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dguzman/staffing-api/internal/application/dto"
	"github.com/dguzman/staffing-api/internal/domain"
	"github.com/dguzman/staffing-api/internal/domain/entity"
	"github.com/dguzman/staffing-api/internal/domain/repository"
	"github.com/dguzman/staffing-api/pkg/jwt"
)

// MaxFailedAttempts intentos fallidos permitidos antes del bloqueo temporal.
const MaxFailedAttempts = 5

// LoginLimiter lleva la cuenta de intentos fallidos por email.
// La implementación (infrastructure/redis) aplica una ventana de expiración.
type LoginLimiter interface {
	// FailedAttempts devuelve el número de intentos fallidos acumulados.
	FailedAttempts(ctx context.Context, email string) (int, error)
	// RegisterFailure incrementa el contador y devuelve el nuevo total.
	RegisterFailure(ctx context.Context, email string) (int, error)
	// Reset limpia el contador tras un login exitoso.
	Reset(ctx context.Context, email string) error
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login con throttling
// de intentos fallidos.
type AuthUseCase struct {
	userRepo repository.UserRepository
	limiter  LoginLimiter
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, limiter LoginLimiter, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, limiter: limiter, jwtCfg: jwtCfg}
}

// Register crea un usuario: valida unicidad de email y CPF, hashea el password
// con bcrypt y persiste. El rol por defecto es employee.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if existing, _ := uc.userRepo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if existing, _ := uc.userRepo.GetByCPF(in.CPF); existing != nil {
		return nil, domain.ErrCPFAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		CPF:          in.CPF,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica credenciales con throttling: con MaxFailedAttempts fallos
// acumulados el usuario queda bloqueado hasta que expire la ventana del
// limiter. Un login exitoso resetea el contador y emite el JWT.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	attempts, err := uc.limiter.FailedAttempts(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if attempts >= MaxFailedAttempts {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		// El fallo cuenta aunque el email no exista: no filtrar qué emails hay.
		if _, err := uc.limiter.RegisterFailure(ctx, in.Email); err != nil {
			return nil, err
		}
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}

	if err := uc.limiter.Reset(ctx, in.Email); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		TokenType: "bearer",
		User:      *ToUserResponse(user),
	}, nil
}

// ToUserResponse mapea la entidad a DTO sin exponer el hash.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CPF:       u.CPF,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
