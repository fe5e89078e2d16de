package triangle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTriangle(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "triangle.txt")
	err := os.WriteFile(path, []byte(body), 0644)
	require.NoError(t, err)
	return path
}

func TestParse(t *testing.T) {
	path := writeTriangle(t, `5
9 6
4 6 8
0 7 1 5
`)
	rows, err := NewParser(path).Parse()
	require.NoError(t, err)
	expected := [][]int64{
		{5},
		{9, 6},
		{4, 6, 8},
		{0, 7, 1, 5},
	}
	assert.Equal(t, expected, rows)

	tree, err := NewNumTree(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(27), tree.MaxSum())
}

func TestParseSeparator(t *testing.T) {
	path := writeTriangle(t, `5
9, 6
4, 6, 8
`)
	rows, err := NewParser(path, WithSeparator(",")).Parse()
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{5}, {9, 6}, {4, 6, 8}}, rows)
}

func TestParseSkipsBlankLines(t *testing.T) {
	path := writeTriangle(t, `5

9 6

`)
	rows, err := NewParser(path).Parse()
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{5}, {9, 6}}, rows)
}

func TestParseMissingFile(t *testing.T) {
	_, err := NewParser(filepath.Join(t.TempDir(), "nope.txt")).Parse()
	assert.Error(t, err)
}

func TestParseBadValue(t *testing.T) {
	path := writeTriangle(t, `5
9 six
`)
	_, err := NewParser(path).Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad value 'six' on line 2")
}
