// Package runtimeconfig holds the configuration surface for the frontmark
// reader and the pure normalization applied before each parse engine is
// constructed.
package runtimeconfig

import (
	"errors"
	"sort"
	"strings"

	"github.com/goliatone/go-frontmark/pkg/interfaces"
)

// MetaExtension is the baseline header-metadata extension. It is force
// enabled regardless of configuration.
const MetaExtension = "meta"

var (
	ErrLoggingLevelInvalid  = errors.New("frontmark config: logging level is invalid")
	ErrLoggingFormatInvalid = errors.New("frontmark config: logging format is invalid")
	ErrExtensionNameEmpty   = errors.New("frontmark config: extension name is empty")
)

// Config captures the recognized reader options.
type Config struct {
	// Render configures the markup renderer built for each document parse.
	Render RenderConfig
	// FormattedFields names the metadata fields whose values are rendered as
	// markup. Matching is case-insensitive.
	FormattedFields []string
	// LiteralAsMarkup gates the literal block scalar override. Nil means
	// enabled.
	LiteralAsMarkup *bool
	// Logging configures the optional go-logger provider used by cmd tools.
	Logging LoggingConfig
}

// RenderConfig mirrors interfaces.RenderOptions for runtime configuration.
type RenderConfig struct {
	Extensions       []string
	ExtensionConfigs map[string]map[string]any
}

// LoggingConfig captures the options exposed by the go-logger adapter.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the baseline configuration used when the host does
// not override anything.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Extensions: []string{"gfm", "linkify", "tasklist"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// ParseLiteral resolves the literal block override toggle, defaulting to true.
func (c Config) ParseLiteral() bool {
	if c.LiteralAsMarkup == nil {
		return true
	}
	return *c.LiteralAsMarkup
}

// Validate rejects malformed configurations before a reader is constructed.
func Validate(cfg Config) error {
	for _, name := range cfg.Render.Extensions {
		if strings.TrimSpace(name) == "" {
			return ErrExtensionNameEmpty
		}
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	return nil
}

// EffectiveRender normalizes the renderer configuration: every extension
// named only in ExtensionConfigs is appended to the enabled list, and the
// baseline meta extension is always present. The input is never mutated.
func EffectiveRender(cfg RenderConfig) interfaces.RenderOptions {
	extensions := make([]string, 0, len(cfg.Extensions)+len(cfg.ExtensionConfigs)+1)
	seen := map[string]struct{}{}

	for _, name := range cfg.Extensions {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		extensions = append(extensions, key)
		seen[key] = struct{}{}
	}

	configured := make([]string, 0, len(cfg.ExtensionConfigs))
	for name := range cfg.ExtensionConfigs {
		configured = append(configured, strings.ToLower(strings.TrimSpace(name)))
	}
	sort.Strings(configured)
	for _, key := range configured {
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		extensions = append(extensions, key)
		seen[key] = struct{}{}
	}

	if _, ok := seen[MetaExtension]; !ok {
		extensions = append(extensions, MetaExtension)
	}

	configs := make(map[string]map[string]any, len(cfg.ExtensionConfigs))
	for name, options := range cfg.ExtensionConfigs {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		copied := make(map[string]any, len(options))
		for option, value := range options {
			copied[option] = value
		}
		configs[key] = copied
	}

	return interfaces.RenderOptions{
		Extensions:       extensions,
		ExtensionConfigs: configs,
	}
}

// FormattedSet lowercases and dedupes the configured formatted field names.
func FormattedSet(fields []string) map[string]struct{} {
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		key := strings.ToLower(strings.TrimSpace(field))
		if key == "" {
			continue
		}
		set[key] = struct{}{}
	}
	return set
}
