package jsonfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"catalog-scrape/pkg/domain"
)

func TestWriteAtomicReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "courses.json")

	records := []domain.Course{
		{Code: "CSCI 1100", Name: "Computer Science I", Credits: "4"},
		{Code: "MATH 1010", Name: "Calculus I", Credits: "4"},
	}

	require.NoError(t, WriteAtomic(path, records))

	var got []domain.Course
	require.NoError(t, Read(path, &got))
	require.Equal(t, records, got)
}

func TestWriteAtomic_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, WriteAtomic(path, map[string]int{"a": 1}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "out.json", entries[0].Name())
}

func TestWriteAtomic_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, WriteAtomic(path, []string{"old"}))
	require.NoError(t, WriteAtomic(path, []string{"new"}))

	var got []string
	require.NoError(t, Read(path, &got))
	require.Equal(t, []string{"new"}, got)
}

func TestRead_MissingFile(t *testing.T) {
	var v any
	err := Read(filepath.Join(t.TempDir(), "absent.json"), &v)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "read"))
}
