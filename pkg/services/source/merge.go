package source

import (
	"fmt"
	"os"
	"slices"

	"github.com/de-tools/csv-reporter/pkg/models/domain"
)

// MergeOptions control how multiple files are combined.
type MergeOptions struct {
	// StrictHeaders fails the merge when a file's header differs from the
	// first file's header. Off by default: headers are trusted, and a
	// mismatched file silently contributes misaligned rows.
	StrictHeaders bool
}

// ReadAll reads every file in order and merges them into a single table. The
// header comes from the first file; later files contribute data rows only.
func ReadAll(paths []string, opts MergeOptions) (domain.Table, error) {
	var merged domain.Table

	for i, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return domain.Table{}, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}

		table, err := Read(path)
		if err != nil {
			return domain.Table{}, err
		}

		if i == 0 {
			merged = table
			continue
		}
		if opts.StrictHeaders && !slices.Equal(table.Header, merged.Header) {
			return domain.Table{}, fmt.Errorf("%w: %s", domain.ErrHeaderMismatch, path)
		}
		merged.Rows = append(merged.Rows, table.Rows...)
	}

	return merged, nil
}
