package bridge

import "flag"

// Config defines the relay policy. It is resolved once before the loop
// starts and never mutated afterwards.
type Config struct {
	// FlashMode passes raw programming traffic through unmodified.
	FlashMode bool
	// TranslateCR expands every carriage return from the host into CRLF.
	TranslateCR bool
	// LocalEcho writes host input back to the host before forwarding.
	LocalEcho bool
}

var defaultConfig = Config{
	TranslateCR: true,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.BoolVar(&defaultConfig.FlashMode, "flash", defaultConfig.FlashMode, "Flash programming mode, disables translation and echo.")
	flag.BoolVar(&defaultConfig.TranslateCR, "translate-cr", defaultConfig.TranslateCR, "Expand CR from the host into CRLF.")
	flag.BoolVar(&defaultConfig.LocalEcho, "echo", defaultConfig.LocalEcho, "Echo host input back to the host.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a resolved config from defaults.
func NewConfig() *Config {
	conf := defaultConfig.Resolved()
	return &conf
}

// Resolved applies the mode exclusions: flash mode forces translation and
// echo off, and translation forces echo off. The relay never re-checks
// these at runtime.
func (c Config) Resolved() Config {
	if c.FlashMode {
		c.TranslateCR = false
		c.LocalEcho = false
	}
	if c.TranslateCR {
		c.LocalEcho = false
	}
	return c
}
