package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/csv-reporter/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	path := writeFile(t, "test.csv", "name,position,performance\nAlice,Developer,4.5\nBob,Manager,4.8\n")

	table, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Row{"name", "position", "performance"}, table.Header)
	assert.Equal(t, []domain.Row{
		{"Alice", "Developer", "4.5"},
		{"Bob", "Manager", "4.8"},
	}, table.Rows)
}

func TestRead_QuotedFields(t *testing.T) {
	path := writeFile(t, "quoted.csv", "name,position\n\"Doe, Jane\",\"Team Lead\"\n")

	table, err := Read(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, domain.Row{"Doe, Jane", "Team Lead"}, table.Rows[0])
}

func TestRead_NonCSVExtension(t *testing.T) {
	// the extension is rejected before any filesystem access, so the path
	// does not need to exist
	_, err := Read("data.txt")
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "data.txt")
}

func TestRead_FileNotFound(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nonexistent.csv"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "nonexistent.csv")
}

func TestRead_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	table, err := Read(path)
	require.NoError(t, err)
	assert.Empty(t, table.Header)
	assert.Empty(t, table.Rows)
}

func TestRead_HeaderOnly(t *testing.T) {
	path := writeFile(t, "header.csv", "name,position,performance\n")

	table, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Row{"name", "position", "performance"}, table.Header)
	assert.Empty(t, table.Rows)
}
