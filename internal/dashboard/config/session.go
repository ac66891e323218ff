package config

import "time"

// SessionConfig содержит настройки сессий пользователей.
type SessionConfig struct {
	SecretKey  string `yaml:"secret_key" env:"DASHBOARD_SESSION_SECRET_KEY" env-default:"super-secret-key-change-me-in-production"`
	TTL        string `yaml:"ttl" env:"DASHBOARD_SESSION_TTL" env-default:"24h"`
	BCryptCost int    `yaml:"bcrypt_cost" env:"DASHBOARD_SESSION_BCRYPT_COST" env-default:"10"`
	CookieName string `yaml:"cookie_name" env:"DASHBOARD_SESSION_COOKIE_NAME" env-default:"dashboard_session"`
}

// GetTTL возвращает продолжительность жизни сессии.
func (c *SessionConfig) GetTTL() time.Duration {
	duration, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}
