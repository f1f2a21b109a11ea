package config

import "time"

type HTTP struct {
	Port            uint32        `env:"HTTP_PORT" envDefault:"8000"`
	Swagger         bool          `env:"HTTP_SWAGGER" envDefault:"true"`
	ValidateRequest bool          `env:"HTTP_VALIDATE_REQUEST" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	AllowedOrigins  []string      `env:"HTTP_ALLOWED_ORIGINS" envDefault:"https://*,http://*" envSeparator:","`
}
