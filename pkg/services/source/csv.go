package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/de-tools/csv-reporter/pkg/models/domain"
)

// Read loads a whole CSV file into a Table. The path must carry a .csv
// extension; this is checked before any filesystem access.
func Read(path string) (domain.Table, error) {
	if !strings.HasSuffix(path, ".csv") {
		return domain.Table{}, fmt.Errorf("%w: %s must have a .csv extension", domain.ErrInvalidFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row widths are trusted, not validated

	records, err := r.ReadAll()
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return domain.Table{}, nil
	}

	table := domain.Table{Header: records[0], Rows: make([]domain.Row, 0, len(records)-1)}
	for _, rec := range records[1:] {
		table.Rows = append(table.Rows, rec)
	}
	return table, nil
}
