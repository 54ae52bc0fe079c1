package flamegraph

import (
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for conversion configuration, allowing
// callers to customize flag names while keeping sensible defaults via
// [NewConfig].
type Flags struct {
	OutPrefix string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for conversion configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewConverter] to create a
// [Converter].
type Config struct {
	Flags     Flags
	OutPrefix string
}

// NewConfig returns a new [Config] with default flag names.
// Use [Config.RegisterFlags] to add CLI flags, or set values directly.
func NewConfig() *Config {
	f := Flags{
		OutPrefix: "out-prefix",
	}

	return f.NewConfig()
}

// RegisterFlags adds conversion flags to the given [*pflag.FlagSet].
// The out-prefix flag keeps pflag's default file completion, so no
// completion registration is needed.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.OutPrefix, c.Flags.OutPrefix, "o", "",
		"base path for the .nodes.csv and .top.json outputs (default: input path without extension)")
}

// NewConverter creates a new [Converter] using this [Config].
func (c *Config) NewConverter() *Converter {
	return &Converter{
		OutPrefix: c.OutPrefix,
	}
}
