package commands

import (
	"github.com/dmitrymomot/splitkit/pkg/entry"
	"github.com/dmitrymomot/splitkit/pkg/httpserver"
)

// EnvPrefix is prepended to every variable in Config.
const EnvPrefix = "SPLITKIT_"

// Config is the process configuration.
type Config struct {
	Env         string `env:"ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL"`
	DefaultLang string `env:"DEFAULT_LANG" envDefault:"en"`
	Policy      entry.Config
	HTTP        httpserver.Config `envPrefix:"HTTP_"`
}
