package config

// Kafka configures the inventory change feed brokers.
type Kafka struct {
	Addresses []string `env:"KAFKA_ADDRESSES,required" envSeparator:","`
	ClientID  string   `env:"KAFKA_CLIENT_ID" envDefault:"shop-admin"`
	Group     string   `env:"KAFKA_GROUP" envDefault:"shop-admin-inventory"`
}
