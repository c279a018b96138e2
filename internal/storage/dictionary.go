package storage

import (
	"context"

	"github.com/iudanet/stenodict/internal/models"
)

//go:generate moq -out dictionarystorage_mock.go . DictionaryStorage

// DictionaryStorage defines interface for reading and writing a dictionary file.
// Implementations work with a whole dictionary at once: Save replaces
// the stored content with the given entries, keeping their order.
type DictionaryStorage interface {
	// Load returns all entries in stored order, Dictionary field is set to path
	// Returns ErrDictionaryNotFound if the file doesn't exist
	Load(ctx context.Context, path string) ([]models.Entry, error)

	// Save replaces dictionary content with entries
	Save(ctx context.Context, path string, entries []models.Entry) error
}
