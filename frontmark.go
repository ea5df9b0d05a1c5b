// Package frontmark reads text documents with YAML frontmatter: it splits a
// document into a metadata block and a markup body, parses the metadata into
// an order-preserving mapping with pluggable custom-tag handlers, renders the
// body through goldmark, and selectively renders configured metadata fields.
package frontmark

import (
	"context"

	"github.com/goliatone/go-frontmark/internal/logging"
	"github.com/goliatone/go-frontmark/internal/reader"
	"github.com/goliatone/go-frontmark/internal/runtimeconfig"
	"github.com/goliatone/go-frontmark/internal/source"
	"github.com/goliatone/go-frontmark/pkg/interfaces"
	"github.com/goliatone/go-frontmark/pkg/metadata"
)

// Document exports the parse result DTO.
type Document = interfaces.Document

// Metadata exports the ordered metadata mapping.
type Metadata = metadata.Mapping

// Registry exports the persistent tag registration channel.
type Registry = reader.Registry

// TagRegistration exports the (tag, handler) contribution pair.
type TagRegistration = interfaces.TagRegistration

// TagHandler exports the custom tag handler contract.
type TagHandler = interfaces.TagHandler

// Renderer exports the per-document markup renderer contract.
type Renderer = interfaces.Renderer

// FieldHook exports the host metadata hook contract.
type FieldHook = interfaces.FieldHook

// TextSource exports the document text accessor contract.
type TextSource = interfaces.TextSource

// Logger exports the logging contract consumed by the module.
type Logger = interfaces.Logger

// LoggerProvider exports the named logger factory contract.
type LoggerProvider = interfaces.LoggerProvider

// Option customizes a Reader beyond the configuration struct.
type Option func(*options)

type options struct {
	provider LoggerProvider
	hook     FieldHook
	source   TextSource
}

// WithLoggerProvider routes module logging through the supplied provider.
func WithLoggerProvider(provider LoggerProvider) Option {
	return func(o *options) {
		o.provider = provider
	}
}

// WithFieldHook overrides the identity field hook, letting the host coerce
// metadata values (string to date and similar). The hook must not alter or
// drop keys.
func WithFieldHook(hook FieldHook) Option {
	return func(o *options) {
		o.hook = hook
	}
}

// WithTextSource supplies the collaborator used by Read to resolve location
// identifiers into document text.
func WithTextSource(src TextSource) Option {
	return func(o *options) {
		o.source = src
	}
}

// Reader is the top level frontmark facade. It is safe for concurrent use
// across documents once tag registration has finished.
type Reader struct {
	svc *reader.Service
}

// New constructs a Reader from the supplied configuration.
func New(cfg Config, opts ...Option) (*Reader, error) {
	if err := runtimeconfig.Validate(cfg); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := logging.ReaderLogger(o.provider)

	svc := reader.NewService(reader.ServiceConfig{
		Render:          runtimeconfig.EffectiveRender(cfg.Render),
		FormattedFields: runtimeconfig.FormattedSet(cfg.FormattedFields),
		ParseLiteral:    cfg.ParseLiteral(),
		Registry:        reader.NewRegistry(logging.RegistryLogger(o.provider)),
		Hook:            o.hook,
		Source:          o.source,
		Logger:          logger,
	})

	return &Reader{svc: svc}, nil
}

// Tags returns the registration channel through which collaborators
// contribute custom (tag, handler) pairs before parsing begins.
func (r *Reader) Tags() *Registry {
	return r.svc.Registry()
}

// Parse runs the document pipeline over already materialized text.
func (r *Reader) Parse(ctx context.Context, text string) (*Document, error) {
	return r.svc.Parse(ctx, text)
}

// Read resolves a location identifier through the configured TextSource and
// parses the resulting text.
func (r *Reader) Read(ctx context.Context, location string) (*Document, error) {
	return r.svc.Read(ctx, location)
}

// DirSource exports the filesystem-backed text source.
type DirSource = source.FS

// NewDirSource returns a TextSource rooted at the supplied directory. The
// pattern limits List results and defaults to "*.md".
func NewDirSource(path string, pattern string) (*DirSource, error) {
	return source.NewDir(path, pattern)
}
