package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	MongoURI      string `envconfig:"MONGO_URI" required:"true"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"clinic"`
	Port          string `envconfig:"PORT" default:"8000"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
