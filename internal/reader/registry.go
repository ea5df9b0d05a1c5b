package reader

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-frontmark/internal/logging"
	"github.com/goliatone/go-frontmark/pkg/interfaces"
)

const (
	// MarkdownTag marks a scalar that is always rendered as markup,
	// independent of the literal block option.
	MarkdownTag = "!md"
	// StringTag is the generic string scalar kind intercepted by the literal
	// block override.
	StringTag = "!!str"

	longTagPrefix = "tag:yaml.org,2002:"
)

var errTagHandlerScalar = errors.New("frontmark registry: tag handler expects a scalar node")

// Registry holds the persistent (tag, handler) contributions collected from
// external collaborators. Contributions are expected before parsing begins;
// each parse call takes an immutable snapshot, so the registry itself needs
// no locking during read-mostly operation.
type Registry struct {
	logger        interfaces.Logger
	contributions []interfaces.TagRegistration
}

// NewRegistry constructs an empty registry. Warnings for rejected
// registrations go through the supplied logger.
func NewRegistry(logger interfaces.Logger) *Registry {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Registry{logger: logger}
}

// Register appends (tag, handler) pairs. A malformed pair, one missing either
// the tag or the handler, is logged as a warning and skipped; the remaining
// pairs still register.
func (r *Registry) Register(pairs ...interfaces.TagRegistration) {
	for _, pair := range pairs {
		if strings.TrimSpace(pair.Tag) == "" || pair.Handler == nil {
			r.logger.Warn("ignoring tag registration, expected a complete (tag, handler) pair", "tag", pair.Tag)
			continue
		}
		r.contributions = append(r.contributions, interfaces.TagRegistration{
			Tag:     normalizeTag(pair.Tag),
			Handler: pair.Handler,
		})
	}
}

// Snapshot builds the dispatch table for one parse call: the two default
// handlers first, then external contributions in registration order, so the
// last registration for a tag wins.
func (r *Registry) Snapshot(parseLiteral bool) map[string]interfaces.TagHandler {
	handlers := map[string]interfaces.TagHandler{
		MarkdownTag: renderScalarHandler,
	}
	if parseLiteral {
		handlers[StringTag] = literalBlockHandler
	}

	for _, pair := range r.contributions {
		handlers[pair.Tag] = pair.Handler
	}
	return handlers
}

// normalizeTag maps long-form core YAML tags onto the short form used for
// dispatch, so "tag:yaml.org,2002:str" and "!!str" address the same handler.
func normalizeTag(tag string) string {
	if strings.HasPrefix(tag, longTagPrefix) {
		return "!!" + strings.TrimPrefix(tag, longTagPrefix)
	}
	return tag
}

// renderScalarHandler renders any explicitly tagged scalar as markup.
func renderScalarHandler(r interfaces.Renderer, node *yaml.Node) (any, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, errTagHandlerScalar
	}
	rendered, err := r.Render(node.Value)
	if err != nil {
		return nil, err
	}
	return strings.TrimSpace(rendered), nil
}

// literalBlockHandler renders literal block scalars as markup and returns
// every other string unchanged.
func literalBlockHandler(r interfaces.Renderer, node *yaml.Node) (any, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, errTagHandlerScalar
	}
	if node.Style != yaml.LiteralStyle {
		return node.Value, nil
	}
	rendered, err := r.Render(node.Value)
	if err != nil {
		return nil, err
	}
	return strings.TrimSpace(rendered), nil
}
