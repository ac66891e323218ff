package config

import (
	"strconv"
	"time"
)

// RedisConfig представляет конфигурацию для Redis.
type RedisConfig struct {
	Host           string        `yaml:"host" env:"DASHBOARD_REDIS_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"DASHBOARD_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"DASHBOARD_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"DASHBOARD_REDIS_DB" env-default:"0"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"DASHBOARD_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"DASHBOARD_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"DASHBOARD_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize       int           `yaml:"pool_size" env:"DASHBOARD_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle        int           `yaml:"min_idle" env:"DASHBOARD_REDIS_MIN_IDLE" env-default:"2"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env:"DASHBOARD_REDIS_IDLE_TIMEOUT" env-default:"5m"`
	DefaultTTL     time.Duration `yaml:"default_ttl" env:"DASHBOARD_REDIS_DEFAULT_TTL" env-default:"15m"`
}

// GetAddress возвращает адрес Redis строкой.
func (c *RedisConfig) GetAddress() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
