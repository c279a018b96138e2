package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/stenodict/internal/diff"
	"github.com/iudanet/stenodict/internal/dictionary"
	"github.com/iudanet/stenodict/internal/iocli"
	"github.com/iudanet/stenodict/internal/models"
)

// RunDiff сравнивает два снимка словаря и печатает отчет.
// Возвращает true, если снимки различаются.
func RunDiff(ctx context.Context, out iocli.IO, oldPath, newPath string, asJSON bool) (bool, error) {
	oldEntries, err := loadSnapshot(ctx, oldPath)
	if err != nil {
		return false, err
	}
	newEntries, err := loadSnapshot(ctx, newPath)
	if err != nil {
		return false, err
	}

	result := diff.Compare(oldEntries, newEntries)

	if asJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return false, fmt.Errorf("failed to marshal diff: %w", err)
		}
		out.Println(string(data))
		return !result.Empty(), nil
	}

	if err := diff.Render(out, result); err != nil {
		return false, fmt.Errorf("failed to render diff: %w", err)
	}
	return !result.Empty(), nil
}

func loadSnapshot(ctx context.Context, path string) ([]models.Entry, error) {
	expanded, err := dictionary.ExpandPath(path)
	if err != nil {
		return nil, err
	}

	backend, err := dictionary.BackendFor(expanded)
	if err != nil {
		return nil, err
	}

	entries, err := backend.Load(ctx, expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return entries, nil
}
