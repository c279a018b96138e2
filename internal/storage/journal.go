package storage

import (
	"context"

	"github.com/iudanet/stenodict/internal/models"
)

// JournalStorage persists the editor undo log between CLI invocations
type JournalStorage interface {
	// SaveJournal replaces stored undo log with groups (oldest first)
	SaveJournal(ctx context.Context, groups []models.OperationGroup) error

	// LoadJournal returns stored undo log (oldest first)
	// Returns empty slice if nothing was saved yet
	LoadJournal(ctx context.Context) ([]models.OperationGroup, error)

	// ClearJournal removes stored undo log and fingerprints
	ClearJournal(ctx context.Context) error

	// SaveFingerprints stores content fingerprints by dictionary path
	SaveFingerprints(ctx context.Context, fingerprints map[string]string) error

	// LoadFingerprints returns stored fingerprints by dictionary path
	LoadFingerprints(ctx context.Context) (map[string]string, error)
}
