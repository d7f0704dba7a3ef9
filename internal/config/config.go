// Package config loads environment defaults that root flags may override.
package config

import (
	"os"
	"strings"
)

const (
	EnvKeyTheme      = "CONNMATCH_THEME"
	EnvKeyVerbose    = "CONNMATCH_VERBOSE"
	EnvKeyNoColor    = "NO_COLOR"
	// EnvKeyForceColor keeps colour on when output is piped; "0" means unset.
	EnvKeyForceColor = "CLICOLOR_FORCE"

	DefaultTheme = "classic"
)

var knownThemes = map[string]struct{}{
	"classic": {},
	"neon":    {},
	"mono":    {},
}

type Config struct {
	Theme      string
	NoColor    bool
	ForceColor bool
	Verbose    bool
}

// Load reads the environment. Unknown themes fall back to DefaultTheme.
func Load() Config {
	theme := strings.ToLower(strings.TrimSpace(os.Getenv(EnvKeyTheme)))
	if _, ok := knownThemes[theme]; !ok {
		theme = DefaultTheme
	}
	return Config{
		Theme:   theme,
		NoColor:    os.Getenv(EnvKeyNoColor) != "",
		ForceColor: forced(os.Getenv(EnvKeyForceColor)),
		Verbose:    strings.EqualFold(strings.TrimSpace(os.Getenv(EnvKeyVerbose)), "true"),
	}
}

func forced(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}
