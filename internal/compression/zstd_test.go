// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compression

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstd_RestoresInput(t *testing.T) {
	z, err := NewZstd()
	require.NoError(t, err)
	defer z.Close()

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"short", "hello"},
		{"unicode", "héllo wörld ✨"},
		{"repetitive", strings.Repeat("draft content ", 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed, err := z.Compress([]byte(tt.in))
			require.NoError(t, err)

			out, err := z.Decompress(packed)
			require.NoError(t, err)
			assert.Equal(t, tt.in, string(out))
		})
	}
}

func TestZstd_ShrinksRepetitiveText(t *testing.T) {
	z, err := NewZstd()
	require.NoError(t, err)
	defer z.Close()

	in := []byte(strings.Repeat("a", 10000))
	packed, err := z.Compress(in)
	require.NoError(t, err)
	assert.Less(t, len(packed), len(in)/10)
}

func TestZstd_DecompressGarbage(t *testing.T) {
	z, err := NewZstd()
	require.NoError(t, err)
	defer z.Close()

	_, err = z.Decompress([]byte("not zstd"))
	assert.Error(t, err)
}
