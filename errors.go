package frontmark

import "github.com/goliatone/go-frontmark/internal/reader"

// ErrSourceRequired is returned by Read when no TextSource was configured.
var ErrSourceRequired = reader.ErrSourceRequired

// IsMetadataError reports whether err was raised for malformed structured
// data inside a present frontmatter block.
func IsMetadataError(err error) bool {
	return reader.IsMetadataError(err)
}

// IsRenderError reports whether err was raised by the markup renderer.
func IsRenderError(err error) bool {
	return reader.IsRenderError(err)
}
