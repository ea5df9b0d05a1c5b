// Package render builds the per-document markup engine on top of goldmark.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-frontmark/pkg/interfaces"
)

// Engine renders markup fragments for a single document parse. The embedded
// parser context is shared by every fragment of that document so stateful
// extensions see the whole document; a fresh Engine must be constructed for
// the next document.
type Engine struct {
	md  goldmark.Markdown
	ctx parser.Context
}

var _ interfaces.Renderer = (*Engine)(nil)

// New constructs an Engine from normalized render options.
func New(opts interfaces.RenderOptions) *Engine {
	return &Engine{
		md:  newGoldmark(opts),
		ctx: parser.NewContext(),
	}
}

// Render converts a markup fragment into HTML. Callers are responsible for
// trimming surrounding whitespace before further use.
func (e *Engine) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(source), &buf, parser.WithContext(e.ctx)); err != nil {
		return "", fmt.Errorf("markup render: %w", err)
	}
	return buf.String(), nil
}

// newGoldmark assembles a goldmark.Markdown from the supplied options. The
// mapping is intentionally conservative; unsupported extension names are
// ignored. The baseline meta extension is installed even when the option
// normalization was bypassed.
func newGoldmark(opts interfaces.RenderOptions) goldmark.Markdown {
	exts := collectExtensions(opts)

	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	rendererOptions := []renderer.Option{}

	htmlConfig := opts.ExtensionConfigs["html"]
	if boolOption(htmlConfig, "hard_wraps", false) {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if boolOption(htmlConfig, "xhtml", false) {
		rendererOptions = append(rendererOptions, html.WithXHTML())
	}
	if boolOption(htmlConfig, "unsafe", true) {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
	}

	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}

	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

func collectExtensions(opts interfaces.RenderOptions) []goldmark.Extender {
	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	add := func(key string, ext goldmark.Extender) {
		if _, ok := seen[key]; ok {
			return
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	for _, name := range opts.Extensions {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		switch key {
		case "meta":
			add("meta", meta.Meta)
		case "gfm":
			add("gfm", extension.GFM)
		case "table", "tables":
			add("table", extension.Table)
		case "strikethrough":
			add("strikethrough", extension.Strikethrough)
		case "linkify", "autolink":
			add("linkify", linkifyExtension(opts.ExtensionConfigs["linkify"]))
		case "tasklist":
			add("tasklist", extension.TaskList)
		case "definition":
			add("definition", extension.DefinitionList)
		case "footnote":
			add("footnote", footnoteExtension(opts.ExtensionConfigs["footnote"]))
		case "typographer":
			add("typographer", extension.Typographer)
		}
	}

	if _, ok := seen["meta"]; !ok {
		extenders = append(extenders, meta.Meta)
	}

	return extenders
}

func linkifyExtension(config map[string]any) goldmark.Extender {
	protocols := stringsOption(config, "allowed_protocols")
	if len(protocols) == 0 {
		return extension.Linkify
	}

	allowed := make([][]byte, 0, len(protocols))
	for _, protocol := range protocols {
		allowed = append(allowed, []byte(protocol))
	}
	return extension.NewLinkify(extension.WithLinkifyAllowedProtocols(allowed))
}

func footnoteExtension(config map[string]any) goldmark.Extender {
	prefix := stringOption(config, "id_prefix")
	if prefix == "" {
		return extension.Footnote
	}
	return extension.NewFootnote(extension.WithFootnoteIDPrefix([]byte(prefix)))
}

func boolOption(config map[string]any, key string, fallback bool) bool {
	if config == nil {
		return fallback
	}
	value, ok := config[key]
	if !ok {
		return fallback
	}
	enabled, ok := value.(bool)
	if !ok {
		return fallback
	}
	return enabled
}

func stringOption(config map[string]any, key string) string {
	if config == nil {
		return ""
	}
	value, _ := config[key].(string)
	return value
}

func stringsOption(config map[string]any, key string) []string {
	if config == nil {
		return nil
	}

	switch value := config[key].(type) {
	case []string:
		return value
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
