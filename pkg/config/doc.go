// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv, which reads optional .env files into the
// process environment, and github.com/caarlos0/env/v11, which parses the
// environment into a struct using `env` and `envDefault` field tags.
//
//	type ServiceConfig struct {
//		Addr string `env:"ADDR" envDefault:":8080"`
//		Env  string `env:"ENV" envDefault:"development"`
//	}
//
//	var cfg ServiceConfig
//	if err := config.Load(&cfg, config.WithPrefix("SPLITKIT_")); err != nil {
//		return err
//	}
//
// Values already present in the environment win over .env files. Tests can
// bypass the process environment entirely with WithEnvironment.
package config
