// Package cache implementa la señal de invalidación hacia el cache externo de
// reportes (Redis). La señal es best-effort: un Redis caído jamás hace fallar
// ni revierte la mutación que la disparó.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// NewRedisClient crea y valida la conexión a Redis a partir de la URL
// (redis://host:port/db).
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// RedisInvalidator borra la clave fija del cache de reportes cuando cambia el
// estado autoritativo (catálogo o ledger).
type RedisInvalidator struct {
	rdb *redis.Client
	key string
	log *logger.Logger
}

// NewRedisInvalidator construye la señal con la clave configurada (por defecto "product-cache").
func NewRedisInvalidator(rdb *redis.Client, key string, log *logger.Logger) *RedisInvalidator {
	return &RedisInvalidator{rdb: rdb, key: key, log: log}
}

// OnStateChanged dispara el DEL en segundo plano. No bloquea al caller y el
// fallo solo se loguea, nunca se propaga.
func (s *RedisInvalidator) OnStateChanged(_ context.Context) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", s.key).Msg("invalidación de cache falló; la operación continúa")
			return
		}
		s.log.Debug().Str("key", s.key).Msg("cache invalidado")
	}()
}

// NopInvalidator señal nula para entornos sin Redis configurado.
type NopInvalidator struct{}

// OnStateChanged no hace nada.
func (NopInvalidator) OnStateChanged(context.Context) {}
