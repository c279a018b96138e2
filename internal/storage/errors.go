package storage

import "errors"

// Common storage errors
var (
	// ErrDictionaryNotFound indicates that dictionary file does not exist
	ErrDictionaryNotFound = errors.New("dictionary not found")

	// ErrUnsupportedFormat indicates that dictionary format can't be detected from path
	ErrUnsupportedFormat = errors.New("unsupported dictionary format")

	// ErrInvalidDictionary indicates that dictionary content can't be parsed
	ErrInvalidDictionary = errors.New("invalid dictionary content")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
