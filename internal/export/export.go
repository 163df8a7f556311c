// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes drafts to files, local directories and object storage.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/contentspark/pkg/types"
)

// Format is the file format of an exported draft. The body is the draft
// content in either case; only the extension differs.
type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
)

// ParseFormat accepts txt or md, with or without a leading dot.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.TrimPrefix(strings.ToLower(s), ".")) {
	case FormatText:
		return FormatText, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want txt or md)", s)
	}
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatMarkdown {
		return "text/markdown; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

const untitled = "untitled_draft"

// Filename derives a file name from a draft title: every character outside
// A-Z, a-z and 0-9 becomes an underscore, the result is lower-cased and the
// format extension appended. An empty title yields untitled_draft.
func Filename(title string, format Format) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	name := b.String()
	if name == "" {
		name = untitled
	}
	return name + "." + string(format)
}

// Exporter stores a named file.
type Exporter interface {
	Put(ctx context.Context, name string, body []byte) error
}

// Draft writes d through ex and returns the file name used.
func Draft(ctx context.Context, ex Exporter, d types.Draft, format Format) (string, error) {
	name := Filename(d.Title, format)
	if err := ex.Put(ctx, name, []byte(d.Content)); err != nil {
		return "", fmt.Errorf("exporting draft %d as %s: %w", d.ID, name, err)
	}
	return name, nil
}

// ArchiveFormat is the encoding of a full store dump.
type ArchiveFormat string

const (
	ArchiveYAML ArchiveFormat = "yaml"
	ArchiveJSON ArchiveFormat = "json"
)

type archive struct {
	Count  int           `json:"count" yaml:"count"`
	Drafts []types.Draft `json:"drafts" yaml:"drafts"`
}

// Archive encodes every draft, in the order given, as YAML or JSON.
func Archive(drafts []types.Draft, format ArchiveFormat) ([]byte, error) {
	if drafts == nil {
		drafts = []types.Draft{}
	}
	a := archive{Count: len(drafts), Drafts: drafts}

	switch format {
	case ArchiveYAML, "yml", "":
		out, err := yaml.Marshal(a)
		if err != nil {
			return nil, fmt.Errorf("encoding archive as YAML: %w", err)
		}
		return out, nil
	case ArchiveJSON:
		out, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding archive as JSON: %w", err)
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported archive format %q (want yaml or json)", format)
	}
}
