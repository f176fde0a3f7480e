package cache

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"hypergo-properties/pkg/logger"

	"github.com/go-redis/redis/v8"
)

const scanBatchSize = 500

// RedisStore is a Store backed by a shared Redis instance.
type RedisStore struct {
	client *redis.Client
}

// NewRedisClient builds a client from cfg. It does not contact the server.
func NewRedisClient(cfg RedisConfig) (*redis.Client, error) {
	var tlsConfig *tls.Config
	if cfg.TLSEnabled {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		if cfg.TLSCertFile != "" {
			keyFile := cfg.TLSKeyFile
			if keyFile == "" {
				keyFile = cfg.TLSCertFile
			}
			cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, keyFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
			}
			tlsConfig.Certificates = []tls.Certificate{cert}
		}
	}

	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		TLSConfig:    tlsConfig,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}), nil
}

// NewRedisStore wraps client. A failed startup ping is logged, not fatal:
// the store serves misses until Redis comes back.
func NewRedisStore(ctx context.Context, client *redis.Client) *RedisStore {
	s := &RedisStore{client: client}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Ping(pingCtx); err != nil {
		logger.GlobalLogger.Errorf("Redis unavailable at startup, continuing without cache: %v", err)
	} else {
		logger.GlobalLogger.Println("Redis connected successfully")
	}
	return s
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	start := time.Now()
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		recordOperation(backendRedis, "get", start, nil)
		return nil, false
	}
	recordOperation(backendRedis, "get", start, err)
	if err != nil {
		logger.GlobalLogger.Errorf("failed to get key %s: %v", key, err)
		return nil, false
	}
	return data, true
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	start := time.Now()
	err := s.client.Set(ctx, key, value, ttl).Err()
	recordOperation(backendRedis, "set", start, err)
	if err != nil {
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return NewCacheError("set", key, err, true)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	start := time.Now()
	err := s.client.Del(ctx, keys...).Err()
	recordOperation(backendRedis, "delete", start, err)
	if err != nil {
		logger.GlobalLogger.Errorf("failed to delete keys %v: %v", keys, err)
		return NewCacheError("delete", strings.Join(keys, ","), err, true)
	}
	return nil
}

// DeletePrefix walks the keyspace with SCAN and unlinks matches in batches.
func (s *RedisStore) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	start := time.Now()
	deleted := 0
	batch := make([]string, 0, scanBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := s.client.Unlink(ctx, batch...).Result()
		if err != nil {
			return err
		}
		deleted += int(n)
		batch = batch[:0]
		return nil
	}

	iter := s.client.Scan(ctx, 0, escapeGlob(prefix)+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatchSize {
			if err := flush(); err != nil {
				recordOperation(backendRedis, "delete_prefix", start, err)
				return deleted, NewCacheError("delete_prefix", prefix, err, true)
			}
		}
	}
	err := iter.Err()
	if err == nil {
		err = flush()
	}
	recordOperation(backendRedis, "delete_prefix", start, err)
	if err != nil {
		logger.GlobalLogger.Errorf("failed to delete prefix %s: %v", prefix, err)
		return deleted, NewCacheError("delete_prefix", prefix, err, true)
	}
	return deleted, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	start := time.Now()
	err := s.client.Ping(ctx).Err()
	recordOperation(backendRedis, "ping", start, err)
	if err != nil {
		return NewCacheError("ping", "", err, true)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if err := s.client.Close(); err != nil {
		logger.GlobalLogger.Errorf("error closing Redis: %v", err)
		return err
	}
	logger.GlobalLogger.Println("Redis connection closed")
	return nil
}

// escapeGlob quotes the characters SCAN MATCH treats as patterns.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
