package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petwell/petbase/pkg/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	path := writeFile(t, "data.csv",
		"Name,Amount,Notes\n"+
			"Surgery,60000, per year \n"+
			"X-rays,5000,\n")

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Surgery", records[0].Get("Name"))
	assert.Equal(t, "per year", records[0].Get("Notes"))
	assert.Equal(t, "5000", records[1].Get("Amount"))
}

func TestReadFileStripsBOM(t *testing.T) {
	path := writeFile(t, "bom.csv", "\uFEFFName,Amount\nSurgery,60000\n")

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Without BOM stripping the first column would be invisible.
	assert.Equal(t, "Surgery", records[0].Get("Name"))
}

func TestReadFileRaggedRows(t *testing.T) {
	path := writeFile(t, "ragged.csv",
		"A,B,C\n"+
			"1,2\n"+
			"1,2,3,4\n")

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "", records[0].Get("C"))
	assert.Equal(t, "3", records[1].Get("C"))
}

func TestReadFileMissingColumn(t *testing.T) {
	path := writeFile(t, "cols.csv", "A\n1\n")

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].Get("Never Heard Of It"))
}

func TestReadFileEmpty(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	records, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadFileHeaderOnly(t *testing.T) {
	path := writeFile(t, "header.csv", "A,B\n")

	records, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
	require.ErrorIs(t, err, types.ErrSourceMissing)
}
