package usecase

import "errors"

var (
	// ErrUnsupportedType is returned when the artifact is neither PDF, DOCX nor plain text.
	ErrUnsupportedType = errors.New("unsupported document type")

	// ErrInvalidEncoding is returned when a plain text artifact is not valid UTF-8.
	ErrInvalidEncoding = errors.New("document is not valid UTF-8 text")

	// ErrEmptyDocument is returned when extraction yields no text at all.
	ErrEmptyDocument = errors.New("no text content found in document")
)
