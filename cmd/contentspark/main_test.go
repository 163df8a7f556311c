// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/contentspark/internal/draftstore"
	"github.com/pdiddy/contentspark/pkg/types"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "contentspark dev\n", out)
}

func TestBrainstormSavesDraft(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "drafts.db")
	t.Setenv("CONTENTSPARK_STORE_PATH", dbPath)

	out, errOut, err := execute(t, "--demo", "brainstorm", "--save", "go", "testing")
	require.NoError(t, err)
	assert.Contains(t, out, `Idea 1 for "go testing"`)
	assert.Contains(t, errOut, "Saved draft 1: Brainstorm: go testing...")

	store, err := draftstore.New(types.StoreConfig{Path: dbPath})
	require.NoError(t, err)
	defer store.Close()

	d, ok, err := store.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Brainstorm: go testing...", d.Title)
	assert.Equal(t, 3, strings.Count(d.Content, "Idea "))
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseID(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("from a file"), 0o644))

	got, err := readText("", []string{"joined", "args"})
	require.NoError(t, err)
	assert.Equal(t, "joined args", got)

	got, err = readText(path, []string{"ignored"})
	require.NoError(t, err)
	assert.Equal(t, "from a file", got)

	_, err = readText(filepath.Join(t.TempDir(), "missing.txt"), nil)
	assert.Error(t, err)
}

func TestPrintDraftList(t *testing.T) {
	var buf bytes.Buffer
	printDraftList(&buf, nil)
	assert.Contains(t, buf.String(), "No drafts yet")

	buf.Reset()
	printDraftList(&buf, []types.Draft{
		{ID: 7, Title: "Launch notes", UpdatedAt: 1_700_000_000_000},
		{ID: 3, Title: ""},
	})
	out := buf.String()
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Launch notes")
	assert.Contains(t, out, "Untitled Draft")
	assert.Contains(t, out, "7")
}
