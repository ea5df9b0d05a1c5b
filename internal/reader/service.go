package reader

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-frontmark/internal/logging"
	"github.com/goliatone/go-frontmark/internal/render"
	"github.com/goliatone/go-frontmark/pkg/interfaces"
	"github.com/goliatone/go-frontmark/pkg/metadata"
)

var ErrSourceRequired = errors.New("frontmark reader: text source is required")

// ServiceConfig carries the effective, already normalized dependencies for a
// reader service.
type ServiceConfig struct {
	Render          interfaces.RenderOptions
	FormattedFields map[string]struct{}
	ParseLiteral    bool
	Registry        *Registry
	Hook            interfaces.FieldHook
	Source          interfaces.TextSource
	Logger          interfaces.Logger
}

// Service owns the document parse pipeline: split, metadata load, field
// post-processing, and body rendering. It is safe for concurrent use; every
// parse call builds its own engine and registry snapshot.
type Service struct {
	render       interfaces.RenderOptions
	formatted    map[string]struct{}
	parseLiteral bool
	registry     *Registry
	hook         interfaces.FieldHook
	source       interfaces.TextSource
	logger       interfaces.Logger
}

// NewService constructs a Service from the supplied configuration.
func NewService(cfg ServiceConfig) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	registry := cfg.Registry
	if registry == nil {
		registry = NewRegistry(logger)
	}

	formatted := cfg.FormattedFields
	if formatted == nil {
		formatted = map[string]struct{}{}
	}

	return &Service{
		render:       cfg.Render,
		formatted:    formatted,
		parseLiteral: cfg.ParseLiteral,
		registry:     registry,
		hook:         cfg.Hook,
		source:       cfg.Source,
		logger:       logger,
	}
}

// Registry exposes the persistent tag registration channel.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Read fetches a document's text from the configured source and parses it.
func (s *Service) Read(ctx context.Context, location string) (*interfaces.Document, error) {
	if s.source == nil {
		return nil, ErrSourceRequired
	}

	text, err := s.source.Text(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("frontmark reader: read %s: %w", location, err)
	}

	doc, err := s.Parse(ctx, text)
	if err != nil {
		return nil, err
	}
	doc.Location = location
	return doc, nil
}

// Parse splits the text, loads and post-processes metadata, and renders the
// body. The same engine instance renders every fragment of this document and
// is discarded when the call returns.
func (s *Service) Parse(ctx context.Context, text string) (*interfaces.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	block, body, found := Split(text)

	engine := render.New(s.render)

	raw := metadata.New()
	if found {
		parsed, err := LoadMetadata(block, s.registry.Snapshot(s.parseLiteral), engine)
		if err != nil {
			return nil, err
		}
		raw = parsed
	}

	processed, err := ProcessFields(raw, s.formatted, engine, s.hook)
	if err != nil {
		return nil, err
	}

	html, err := engine.Render(body)
	if err != nil {
		return nil, wrapRenderError(err)
	}

	s.logger.Debug("parsed document", "frontmatter", found, "metadata_keys", processed.Len())

	return &interfaces.Document{
		Body:     body,
		HTML:     strings.TrimSpace(html),
		Metadata: processed,
	}, nil
}
