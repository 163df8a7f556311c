// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DirExporter writes files into a local directory, creating it on demand.
type DirExporter struct {
	Dir string
}

var _ Exporter = (*DirExporter)(nil)

func (e *DirExporter) Put(ctx context.Context, name string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(e.Dir, filepath.Base(name))
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Path returns where name would be written.
func (e *DirExporter) Path(name string) string {
	return filepath.Join(e.Dir, filepath.Base(name))
}
