package frontmark

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-frontmark/internal/render"
	"github.com/goliatone/go-frontmark/internal/runtimeconfig"
)

func newReader(t *testing.T, cfg Config, opts ...Option) *Reader {
	t.Helper()
	rdr, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return rdr
}

func TestParseWithoutDelimiterMatchesPlainRender(t *testing.T) {
	rdr := newReader(t, DefaultConfig())

	text := "  \nSome *plain* document\n"
	doc, err := rdr.Parse(context.Background(), text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if doc.Metadata.Len() != 0 {
		t.Fatalf("expected empty metadata, got %d keys", doc.Metadata.Len())
	}

	engine := render.New(runtimeconfig.EffectiveRender(DefaultConfig().Render))
	html, err := engine.Render(strings.TrimSpace(text))
	if err != nil {
		t.Fatalf("reference render: %v", err)
	}
	if doc.HTML != strings.TrimSpace(html) {
		t.Fatalf("body mismatch: got %q, want %q", doc.HTML, strings.TrimSpace(html))
	}
}

func TestParseUnclosedFrontmatterFallsBack(t *testing.T) {
	rdr := newReader(t, DefaultConfig())

	text := "---\ntitle: Sample\nno closing delimiter"
	doc, err := rdr.Parse(context.Background(), text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Metadata.Len() != 0 {
		t.Fatalf("expected empty metadata on fallback, got %d keys", doc.Metadata.Len())
	}
	if doc.Body != text {
		t.Fatalf("expected whole text as body, got %q", doc.Body)
	}

	engine := render.New(runtimeconfig.EffectiveRender(DefaultConfig().Render))
	html, err := engine.Render(text)
	if err != nil {
		t.Fatalf("reference render: %v", err)
	}
	if doc.HTML != strings.TrimSpace(html) {
		t.Fatalf("fallback must equal a plain render: got %q, want %q", doc.HTML, strings.TrimSpace(html))
	}
}

func TestParseMetadataOrderAndBody(t *testing.T) {
	rdr := newReader(t, DefaultConfig())

	doc, err := rdr.Parse(context.Background(), "---\na: 1\nb: 2\n---\nhello")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	keys := doc.Metadata.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("key order mismatch: %v", keys)
	}
	if doc.HTML != "<p>hello</p>" {
		t.Fatalf("body mismatch: %q", doc.HTML)
	}
}

func TestParseCaseInsensitiveDuplicateKeys(t *testing.T) {
	rdr := newReader(t, DefaultConfig())

	doc, err := rdr.Parse(context.Background(), "---\nTitle: x\nother: 1\ntitle: y\n---\nbody")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	keys := doc.Metadata.Keys()
	if len(keys) != 2 || keys[0] != "title" || keys[1] != "other" {
		t.Fatalf("expected title at its first position, got %v", keys)
	}
	if value, _ := doc.Metadata.Get("title"); value != "y" {
		t.Fatalf("expected later occurrence retained, got %v", value)
	}
}

func TestParseFormattedFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FormattedFields = []string{"Summary"}
	rdr := newReader(t, cfg)

	doc, err := rdr.Parse(context.Background(), "---\nsummary: '*hi*'\ntagline: '*hi*'\n---\nbody")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if value, _ := doc.Metadata.Get("summary"); value != "<p><em>hi</em></p>" {
		t.Fatalf("formatted field mismatch: %q", value)
	}
	if value, _ := doc.Metadata.Get("tagline"); value != "*hi*" {
		t.Fatalf("unformatted field must stay verbatim, got %q", value)
	}
}

func TestParseMarkdownTagIgnoresLiteralOption(t *testing.T) {
	disabled := false
	cfg := DefaultConfig()
	cfg.LiteralAsMarkup = &disabled
	rdr := newReader(t, cfg)

	doc, err := rdr.Parse(context.Background(), "---\ndescription: !md '*hi*'\nbio: |\n  *raw*\n---\nbody")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if value, _ := doc.Metadata.Get("description"); value != "<p><em>hi</em></p>" {
		t.Fatalf("tagged scalar must render, got %q", value)
	}
	bio, _ := doc.Metadata.Get("bio")
	text, ok := bio.(string)
	if !ok || strings.Contains(text, "<em>") {
		t.Fatalf("literal block must stay verbatim when disabled, got %v", bio)
	}
}

func TestParseLiteralBlockRenderedByDefault(t *testing.T) {
	rdr := newReader(t, DefaultConfig())

	doc, err := rdr.Parse(context.Background(), "---\nbio: |\n  *hi*\n---\nbody")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if value, _ := doc.Metadata.Get("bio"); value != "<p><em>hi</em></p>" {
		t.Fatalf("literal block mismatch: %q", value)
	}
}

func TestTagsLastRegistrationWins(t *testing.T) {
	rdr := newReader(t, DefaultConfig())

	rdr.Tags().Register(
		TagRegistration{Tag: "!color", Handler: func(Renderer, *yaml.Node) (any, error) {
			return "first", nil
		}},
		TagRegistration{Tag: "!color", Handler: func(Renderer, *yaml.Node) (any, error) {
			return "second", nil
		}},
	)

	doc, err := rdr.Parse(context.Background(), "---\naccent: !color blue\n---\nbody")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if value, _ := doc.Metadata.Get("accent"); value != "second" {
		t.Fatalf("expected later handler to win, got %v", value)
	}
}

func TestReparseRenderedOutputIsStable(t *testing.T) {
	rdr := newReader(t, DefaultConfig())

	doc, err := rdr.Parse(context.Background(), "---\na: 1\n---\nhello")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	again, err := rdr.Parse(context.Background(), doc.HTML)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if again.Metadata.Len() != 0 {
		t.Fatalf("rendered output must not grow metadata, got %d keys", again.Metadata.Len())
	}
	if again.HTML != doc.HTML {
		t.Fatalf("render applied twice: %q vs %q", again.HTML, doc.HTML)
	}
}

func TestParseMetadataSyntaxErrorIsFatal(t *testing.T) {
	rdr := newReader(t, DefaultConfig())

	_, err := rdr.Parse(context.Background(), "---\na: [unclosed\n---\nbody")
	if err == nil {
		t.Fatalf("expected fatal metadata error")
	}
	if !IsMetadataError(err) {
		t.Fatalf("expected metadata classification, got %v", err)
	}
}

func TestParseNonMappingMetadataIsEmpty(t *testing.T) {
	rdr := newReader(t, DefaultConfig())

	doc, err := rdr.Parse(context.Background(), "---\n- a\n- b\n---\nbody")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Metadata.Len() != 0 {
		t.Fatalf("expected empty metadata for sequence root, got %d keys", doc.Metadata.Len())
	}
	if doc.HTML != "<p>body</p>" {
		t.Fatalf("body must still render, got %q", doc.HTML)
	}
}

func TestFieldHookCoercion(t *testing.T) {
	hook := func(field string, value any) any {
		if field != "date" {
			return value
		}
		text, ok := value.(string)
		if !ok {
			return value
		}
		when, err := time.Parse("2006-01-02", text)
		if err != nil {
			return value
		}
		return when
	}

	rdr := newReader(t, DefaultConfig(), WithFieldHook(hook))

	doc, err := rdr.Parse(context.Background(), "---\ndate: '2024-01-02'\ntitle: Sample\n---\nbody")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	value, _ := doc.Metadata.Get("date")
	when, ok := value.(time.Time)
	if !ok {
		t.Fatalf("expected coerced time.Time, got %T", value)
	}
	if when.Year() != 2024 {
		t.Fatalf("unexpected coerced value: %v", when)
	}
	if title, _ := doc.Metadata.Get("title"); title != "Sample" {
		t.Fatalf("hook must leave other fields alone, got %v", title)
	}
}

func TestReadThroughDirSource(t *testing.T) {
	dir := t.TempDir()
	doc := "---\ntitle: Filed\n---\ncontent"
	if err := os.WriteFile(filepath.Join(dir, "post.md"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src, err := NewDirSource(dir, "*.md")
	if err != nil {
		t.Fatalf("NewDirSource: %v", err)
	}

	rdr := newReader(t, DefaultConfig(), WithTextSource(src))

	parsed, err := rdr.Read(context.Background(), "post.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if parsed.Location != "post.md" {
		t.Fatalf("location mismatch: %q", parsed.Location)
	}
	if value, _ := parsed.Metadata.Get("title"); value != "Filed" {
		t.Fatalf("title mismatch: %v", value)
	}
	if parsed.HTML != "<p>content</p>" {
		t.Fatalf("body mismatch: %q", parsed.HTML)
	}
}

func TestReadWithoutSource(t *testing.T) {
	rdr := newReader(t, DefaultConfig())

	if _, err := rdr.Read(context.Background(), "a.md"); err != ErrSourceRequired {
		t.Fatalf("expected ErrSourceRequired, got %v", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"

	if _, err := New(cfg); err != ErrLoggingLevelInvalid {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}
