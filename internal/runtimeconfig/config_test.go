package runtimeconfig

import (
	"testing"
)

func TestEffectiveRenderAppendsConfiguredExtensions(t *testing.T) {
	cfg := RenderConfig{
		Extensions: []string{"gfm"},
		ExtensionConfigs: map[string]map[string]any{
			"footnote": {"id_prefix": "doc-"},
			"html":     {"hard_wraps": true},
		},
	}

	opts := EffectiveRender(cfg)

	want := []string{"gfm", "footnote", "html", "meta"}
	if len(opts.Extensions) != len(want) {
		t.Fatalf("extensions mismatch: got %v, want %v", opts.Extensions, want)
	}
	for i, name := range want {
		if opts.Extensions[i] != name {
			t.Fatalf("extension %d mismatch: got %q, want %q", i, opts.Extensions[i], name)
		}
	}
}

func TestEffectiveRenderForcesMeta(t *testing.T) {
	opts := EffectiveRender(RenderConfig{})
	if len(opts.Extensions) != 1 || opts.Extensions[0] != MetaExtension {
		t.Fatalf("expected forced meta extension, got %v", opts.Extensions)
	}
}

func TestEffectiveRenderDoesNotMutateInput(t *testing.T) {
	cfg := RenderConfig{
		Extensions: []string{"gfm"},
		ExtensionConfigs: map[string]map[string]any{
			"footnote": {},
		},
	}

	_ = EffectiveRender(cfg)

	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != "gfm" {
		t.Fatalf("caller-owned extensions mutated: %v", cfg.Extensions)
	}
	if len(cfg.ExtensionConfigs) != 1 {
		t.Fatalf("caller-owned configs mutated: %v", cfg.ExtensionConfigs)
	}
}

func TestEffectiveRenderDedupes(t *testing.T) {
	opts := EffectiveRender(RenderConfig{
		Extensions: []string{"GFM", "gfm", "meta"},
	})
	want := []string{"gfm", "meta"}
	if len(opts.Extensions) != len(want) {
		t.Fatalf("expected deduped extensions, got %v", opts.Extensions)
	}
}

func TestParseLiteralDefaultsTrue(t *testing.T) {
	if !(Config{}).ParseLiteral() {
		t.Fatalf("expected literal parsing enabled by default")
	}

	disabled := false
	cfg := Config{LiteralAsMarkup: &disabled}
	if cfg.ParseLiteral() {
		t.Fatalf("expected literal parsing disabled")
	}
}

func TestFormattedSetLowercases(t *testing.T) {
	set := FormattedSet([]string{"Summary", " TAGLINE ", ""})
	if len(set) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(set))
	}
	if _, ok := set["summary"]; !ok {
		t.Fatalf("expected lowercase summary in set: %v", set)
	}
	if _, ok := set["tagline"]; !ok {
		t.Fatalf("expected trimmed lowercase tagline in set: %v", set)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(DefaultConfig()); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	if err := Validate(Config{Logging: LoggingConfig{Level: "verbose"}}); err != ErrLoggingLevelInvalid {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
	if err := Validate(Config{Logging: LoggingConfig{Format: "xml"}}); err != ErrLoggingFormatInvalid {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
	if err := Validate(Config{Render: RenderConfig{Extensions: []string{"  "}}}); err != ErrExtensionNameEmpty {
		t.Fatalf("expected ErrExtensionNameEmpty, got %v", err)
	}
}
