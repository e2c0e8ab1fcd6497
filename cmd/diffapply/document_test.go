package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeDocument(t *testing.T) {
	doc, err := decodeDocument(strings.NewReader("base: [1, 2, 3, 4]\nadded: [5]\nremoved: [2]\n"))
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3, 4}, doc.Base)
	require.Equal(t, []int64{5}, doc.Added)
	require.Equal(t, []int64{2}, doc.Removed)
}

func TestDecodeDocumentEmpty(t *testing.T) {
	doc, err := decodeDocument(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, doc.Base)
}

func TestDecodeDocumentInvalid(t *testing.T) {
	_, err := decodeDocument(strings.NewReader("base: [1, 1]\n"))
	require.ErrorContains(t, err, "validate")

	_, err = decodeDocument(strings.NewReader("extra: true\n"))
	require.ErrorContains(t, err, "decode")
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		doc  document
		want []row
	}{
		{"removed and appended", document{Base: []int64{1, 2, 3, 4}, Added: []int64{5}, Removed: []int64{2}},
			[]row{{1, false}, {3, false}, {4, false}, {5, true}}},
		{"empty base", document{Added: []int64{8, 7}},
			[]row{{7, true}, {8, true}}},
		{"base also added", document{Base: []int64{5}, Added: []int64{5}},
			[]row{{5, true}}},
		{"fully filtered", document{Base: []int64{1}, Removed: []int64{1}},
			nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := apply(&tt.doc, 0)
			require.NoError(t, err)
			require.Equal(t, tt.want, rows)
		})
	}
}

func TestApplyLimit(t *testing.T) {
	rows, err := apply(&document{Base: []int64{1, 2, 3}, Added: []int64{4}}, 2)
	require.NoError(t, err)
	require.Equal(t, []row{{1, false}, {2, false}}, rows)
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diff.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base: [1, 2]\nadded: [3]\nremoved: [1]\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, run(path, opts{}, &out))
	require.Equal(t, "2\n3\n", out.String())

	out.Reset()
	require.NoError(t, run(path, opts{table: true}, &out))
	require.Contains(t, out.String(), "added")
	require.Contains(t, out.String(), "SOURCE")
}

func TestRunMissingFile(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "missing.yaml"), opts{}, &bytes.Buffer{})
	require.ErrorIs(t, err, os.ErrNotExist)
}
