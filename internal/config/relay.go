package config

import "time"

// Relay configures the inventory change feed relay.
type Relay struct {
	BatchSize uint32        `env:"RELAY_BATCH_SIZE" envDefault:"100"`
	Interval  time.Duration `env:"RELAY_INTERVAL" envDefault:"1s"`
	// FeedName names the lock that keeps concurrent relays from publishing the same entries.
	FeedName string `env:"RELAY_FEED_NAME" envDefault:"inventory-changed"`
}
