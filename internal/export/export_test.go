// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/contentspark/pkg/types"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		title  string
		format Format
		want   string
	}{
		{"My Draft!", FormatText, "my_draft_.txt"},
		{"My Draft!", FormatMarkdown, "my_draft_.md"},
		{"Brainstorm: AI...", FormatText, "brainstorm__ai___.txt"},
		{"ABC123", FormatText, "abc123.txt"},
		{"", FormatText, "untitled_draft.txt"},
		{"", FormatMarkdown, "untitled_draft.md"},
		{"café", FormatText, "caf_.txt"},
		{"a/b\\c", FormatText, "a_b_c.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.title, tt.format))
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(".MD")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f)

	f, err = ParseFormat("txt")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

func TestDirExporter_Draft(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	ex := &DirExporter{Dir: dir}

	d := types.Draft{ID: 1, Title: "My Draft!", Content: "# Heading\n\nBody ✨\n"}
	name, err := Draft(context.Background(), ex, d, FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, "my_draft_.md", name)

	got, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, d.Content, string(got), "body is the content verbatim")
	assert.Equal(t, filepath.Join(dir, name), ex.Path(name))
}

func TestDirExporter_StaysInDir(t *testing.T) {
	dir := t.TempDir()
	ex := &DirExporter{Dir: dir}

	require.NoError(t, ex.Put(context.Background(), "../escape.txt", []byte("x")))
	_, err := os.Stat(filepath.Join(dir, "escape.txt"))
	assert.NoError(t, err)
}

type fakePutter struct {
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, _ := io.ReadAll(in.Body)
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, string(b))
	return &s3.PutObjectOutput{}, nil
}

func TestS3Exporter_Put(t *testing.T) {
	fake := &fakePutter{}
	ex := NewS3ExporterWithClient(fake, "drafts-bucket", "/team/exports/")

	name, err := Draft(context.Background(), ex, types.Draft{Title: "Notes", Content: "hello"}, FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, "notes.md", name)

	require.Len(t, fake.inputs, 1)
	in := fake.inputs[0]
	assert.Equal(t, "drafts-bucket", aws.ToString(in.Bucket))
	assert.Equal(t, "team/exports/notes.md", aws.ToString(in.Key))
	assert.Equal(t, "text/markdown; charset=utf-8", aws.ToString(in.ContentType))
	assert.Equal(t, int64(5), aws.ToInt64(in.ContentLength))
	assert.Equal(t, "hello", fake.bodies[0])
}

func TestS3Exporter_NoPrefix(t *testing.T) {
	ex := NewS3ExporterWithClient(&fakePutter{}, "b", "")
	assert.Equal(t, "notes.txt", ex.Key("notes.txt"))
}

func TestS3Exporter_Error(t *testing.T) {
	boom := errors.New("access denied")
	ex := NewS3ExporterWithClient(&fakePutter{err: boom}, "b", "")

	_, err := Draft(context.Background(), ex, types.Draft{ID: 7, Title: "x"}, FormatText)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "s3://b/x.txt")
}

func TestNewS3Exporter_RequiresBucket(t *testing.T) {
	_, err := NewS3Exporter(context.Background(), types.S3Config{})
	assert.Error(t, err)
}

func TestArchive(t *testing.T) {
	drafts := []types.Draft{
		{ID: 2, Title: "second", Content: "b", CreatedAt: 10, UpdatedAt: 20},
		{ID: 1, Title: "first", Content: "a\nmultiline", CreatedAt: 5, UpdatedAt: 5},
	}

	t.Run("yaml", func(t *testing.T) {
		out, err := Archive(drafts, ArchiveYAML)
		require.NoError(t, err)

		var got archive
		require.NoError(t, yaml.Unmarshal(out, &got))
		assert.Equal(t, 2, got.Count)
		assert.Equal(t, drafts, got.Drafts)
		assert.Contains(t, string(out), "created_at: 10")
	})

	t.Run("json", func(t *testing.T) {
		out, err := Archive(drafts, ArchiveJSON)
		require.NoError(t, err)

		var got archive
		require.NoError(t, json.Unmarshal(out, &got))
		assert.Equal(t, drafts, got.Drafts)
		assert.Contains(t, string(out), `"updatedAt": 20`)
	})

	t.Run("empty", func(t *testing.T) {
		out, err := Archive(nil, ArchiveJSON)
		require.NoError(t, err)
		assert.Contains(t, string(out), `"drafts": []`)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Archive(drafts, "xml")
		assert.Error(t, err)
	})
}
