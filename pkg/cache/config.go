package cache

import (
	"time"

	"hypergo-properties/pkg/config"
)

// RedisConfig holds connection settings for the Redis store.
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	TLSEnabled   bool
	TLSCertFile  string
	TLSKeyFile   string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// RedisConfigFrom derives client settings from the application config.
func RedisConfigFrom(cfg *config.Config) RedisConfig {
	return RedisConfig{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		TLSEnabled:   cfg.Redis.TLSEnabled,
		TLSCertFile:  cfg.Redis.TLSCertFile,
		TLSKeyFile:   cfg.Redis.TLSKeyFile,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}
