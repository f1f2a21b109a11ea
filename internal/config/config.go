package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// New builds a T from environment variables. Each binary declares its own T by
// composing the sections it needs.
func New[T any]() (T, error) {
	cfg, err := env.ParseAs[T]()
	if err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
