package models

// Config holds the full application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Uploads  UploadConfig
}

// AppConfig holds general application metadata
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	ReadTimeout     int    `json:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection configuration
type DatabaseConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	SSLMode   string `json:"ssl_mode"`
	MaxConns  int    `json:"max_conns"`
	IdleConns int    `json:"idle_conns"`
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
}

// NATSConfig holds NATS connection configuration
type NATSConfig struct {
	URL string `json:"url"`
}

// JWTConfig holds JWT token configuration
type JWTConfig struct {
	Secret            string `json:"secret"`
	RefreshSecret     string `json:"refresh_secret"`
	Expiration        int    `json:"expiration"`         // minutes
	RefreshExpiration int    `json:"refresh_expiration"` // minutes
	Issuer            string `json:"issuer"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}

// UploadConfig holds file upload configuration
type UploadConfig struct {
	Dir       string `json:"dir"`        // local directory for stored files
	BaseURL   string `json:"base_url"`   // public prefix, e.g. /uploads
	MaxSizeMB int    `json:"max_size_mb"`
}
