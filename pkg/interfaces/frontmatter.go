// Package interfaces defines the contracts shared between the frontmark
// runtime and host applications.
package interfaces

import (
	"context"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-frontmark/pkg/metadata"
)

// Document is the result of parsing a single text document.
type Document struct {
	// Location identifies the source the document was read from, when the
	// document came through a TextSource. Empty for direct Parse calls.
	Location string
	// Body is the raw markup body without frontmatter delimiters.
	Body string
	// HTML is the rendered body with surrounding whitespace trimmed.
	HTML string
	// Metadata holds the processed frontmatter: lowercase keys in source
	// order, formatted fields already rendered.
	Metadata *metadata.Mapping
}

// Renderer converts a markup fragment into rendered output. One instance is
// shared by every fragment of a single document parse and never reused across
// documents.
type Renderer interface {
	Render(source string) (string, error)
}

// TagHandler converts a custom-tagged YAML node into a runtime value. The
// renderer is the per-document Content Renderer.
type TagHandler func(r Renderer, node *yaml.Node) (any, error)

// TagRegistration couples a YAML tag identifier with its handler. External
// collaborators contribute these through the registry before parsing begins.
type TagRegistration struct {
	Tag     string
	Handler TagHandler
}

// FieldHook post-processes a metadata value after optional rendering. Hosts
// override it for type coercion (string to date and similar). The hook may
// change the value but never the key.
type FieldHook func(field string, value any) any

// TextSource yields a document's full text given a location identifier.
// Encoding and I/O concerns live behind this interface.
type TextSource interface {
	Text(ctx context.Context, location string) (string, error)
}

// RenderOptions carries the normalized renderer configuration for one
// document parse.
type RenderOptions struct {
	// Extensions enumerates the renderer extensions to enable, by name.
	Extensions []string
	// ExtensionConfigs maps an extension name to its configuration. Keys not
	// listed in Extensions are enabled by normalization.
	ExtensionConfigs map[string]map[string]any
}
