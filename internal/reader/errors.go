package reader

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	metadataInvalidCode = "FRONTMARK_METADATA_INVALID"
	renderFailedCode    = "FRONTMARK_RENDER_FAILED"
)

// wrapMetadataError marks malformed structured data inside a present
// frontmatter block. This is fatal for the document: a delimiter was found,
// so the content between delimiters was intended as metadata.
func wrapMetadataError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "frontmatter metadata is invalid").
		WithTextCode(metadataInvalidCode)
}

// wrapRenderError marks a renderer failure on any fragment, which aborts the
// document read.
func wrapRenderError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "markup render failed").
		WithTextCode(renderFailedCode)
}

// IsMetadataError reports whether err was raised for malformed frontmatter
// metadata.
func IsMetadataError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}

// IsRenderError reports whether err was raised by the markup renderer.
func IsRenderError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryCommand)
}
