package cli

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Config holds settings read from the environment with [LoadConfig].
type Config struct {
	LogLevel    slog.Level // <PREFIX>_LOG_LEVEL, like "debug" or "warn". Defaults to info.
	LogFile     string     // <PREFIX>_LOG_FILE receives JSON logs in addition to STDERR.
	NoColor     bool       // <PREFIX>_NO_COLOR, or NO_COLOR, disables colored output.
	Width       int        // <PREFIX>_WIDTH overrides the detected terminal width.
	EqSeparator bool       // <PREFIX>_EQ_SEPARATOR allows "--name=value" options.
}

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" in the environment, and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" in the environment, and can be changed.
)

// LoadConfig reads a [Config] from environment variables starting with prefix and an underscore.
// Keys are compared case-insensitive, and blank or unparseable values are treated as unset.
func LoadConfig(prefix string) Config {
	env := environ()
	key := func(name string) string {
		if len(prefix) == 0 {
			return name
		}
		return prefix + "_" + name
	}
	cfg := Config{
		LogLevel:    slog.LevelInfo,
		LogFile:     env.val(key("LOG_FILE"), ""),
		NoColor:     env.boolean(key("NO_COLOR"), len(env.val("NO_COLOR", "")) > 0),
		Width:       env.integer(key("WIDTH"), 0),
		EqSeparator: env.boolean(key("EQ_SEPARATOR"), false),
	}
	if level := env.val(key("LOG_LEVEL"), ""); len(level) > 0 {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(level)); err == nil {
			cfg.LogLevel = parsed
		}
	}
	return cfg
}

func (cfg Config) applyColor() {
	if cfg.NoColor {
		color.NoColor = true
	}
}

type envMap map[string]string

func environ() envMap {
	env := envMap{}
	for _, kv := range os.Environ() {
		key, val, found := strings.Cut(kv, "=")
		if !found {
			continue
		}
		env[strings.ToLower(key)] = val
	}
	return env
}

func (e envMap) val(key, defaultVal string) string {
	trimmed := strings.TrimSpace(e[strings.ToLower(key)])
	if len(trimmed) == 0 {
		return defaultVal
	}
	return trimmed
}

func (e envMap) boolean(key string, defaultVal bool) bool {
	sval := strings.ToLower(e.val(key, ""))
	for _, v := range DefaultTrue {
		if sval == v {
			return true
		}
	}
	for _, v := range DefaultFalse {
		if sval == v {
			return false
		}
	}
	return defaultVal
}

func (e envMap) integer(key string, defaultVal int) int {
	ival, err := strconv.Atoi(e.val(key, ""))
	if err != nil {
		return defaultVal
	}
	return ival
}
