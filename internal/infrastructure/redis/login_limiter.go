// Package redis implementa el throttling de intentos de login sobre Redis:
// un contador por email con ventana de expiración. El contador arranca su TTL
// en el primer fallo; al expirar, el usuario vuelve a tener intentos limpios.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dguzman/staffing-api/internal/application/auth"
	"github.com/dguzman/staffing-api/pkg/config"
)

// Ensure LoginLimiter implements auth.LoginLimiter.
var _ auth.LoginLimiter = (*LoginLimiter)(nil)

// blockWindow ventana del bloqueo temporal tras acumular fallos.
const blockWindow = 5 * time.Minute

// LoginLimiter contador de intentos fallidos por email.
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter construye el limiter y verifica la conexión.
func NewLoginLimiter(ctx context.Context, cfg config.RedisConfig) (*LoginLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &LoginLimiter{client: client}, nil
}

// Close libera la conexión.
func (l *LoginLimiter) Close() error {
	return l.client.Close()
}

func key(email string) string {
	return "failed_attempts:" + email
}

// FailedAttempts devuelve el número de fallos acumulados (0 si la clave no existe).
func (l *LoginLimiter) FailedAttempts(ctx context.Context, email string) (int, error) {
	n, err := l.client.Get(ctx, key(email)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get failed_attempts: %w", err)
	}
	return n, nil
}

// RegisterFailure incrementa el contador. El TTL se fija solo en el primer
// fallo para que la ventana no se renueve con cada intento.
func (l *LoginLimiter) RegisterFailure(ctx context.Context, email string) (int, error) {
	k := key(email)
	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, fmt.Errorf("incr failed_attempts: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, blockWindow).Err(); err != nil {
			return int(n), fmt.Errorf("expire failed_attempts: %w", err)
		}
	}
	return int(n), nil
}

// Reset limpia el contador tras un login exitoso.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	if err := l.client.Del(ctx, key(email)).Err(); err != nil {
		return fmt.Errorf("del failed_attempts: %w", err)
	}
	return nil
}
