// Package redisstore guarda los blobs del almacén de registros como cadenas de Redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Warrick-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/Warrick-api/pkg/config"
)

var _ kvstore.Backend = (*Backend)(nil)

// Backend kvstore.Backend sobre un cliente go-redis. Las claves llevan un prefijo opcional.
type Backend struct {
	client redis.UniversalClient
	prefix string
}

// New construye el backend sobre un cliente existente.
func New(client redis.UniversalClient, prefix string) *Backend {
	return &Backend{client: client, prefix: prefix}
}

// Connect abre un cliente con la configuración de la app y verifica la conexión.
func Connect(ctx context.Context, cfg config.RedisConfig) (*Backend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return New(client, cfg.Prefix), nil
}

// Key devuelve la clave física para una clave lógica.
func (b *Backend) Key(key string) string {
	return b.prefix + key
}

// Get implementa kvstore.Backend.
func (b *Backend) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := b.client.Get(ctx, b.Key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

// Set implementa kvstore.Backend. Los blobs no expiran.
func (b *Backend) Set(ctx context.Context, key, value string) error {
	if err := b.client.Set(ctx, b.Key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete implementa kvstore.Backend.
func (b *Backend) Delete(ctx context.Context, key string) error {
	if err := b.client.Del(ctx, b.Key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Close cierra el cliente.
func (b *Backend) Close() error {
	return b.client.Close()
}
