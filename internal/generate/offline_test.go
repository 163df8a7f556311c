// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/contentspark/pkg/types"
)

func TestOffline_Proofread(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		want        string
		suggestions []types.Suggestion
	}{
		{
			name: "no mistakes",
			text: "All good here.",
			want: "All good here.",
		},
		{
			name: "both mistakes",
			text: "teh cat is wierd",
			want: "the cat is weird",
			suggestions: []types.Suggestion{
				{StartIndex: 0, Length: 3, Suggestion: `Corrected "teh" to "the".`},
				{StartIndex: 11, Length: 5, Suggestion: `Corrected "wierd" to "weird".`},
			},
		},
		{
			name: "upper case is corrected but not flagged",
			text: "TEH end",
			want: "the end",
		},
		{
			name: "offset counts runes",
			text: "café teh",
			want: "café the",
			suggestions: []types.Suggestion{
				{StartIndex: 5, Length: 3, Suggestion: `Corrected "teh" to "the".`},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := (&Offline{}).Proofread(context.Background(), types.ProofreadInput{Text: tt.text})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.CorrectedText)
			assert.Equal(t, tt.suggestions, out.Suggestions)
		})
	}
}

func TestOffline_Summarize(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"One. Two. Three.", "This is a mock summary of your text. One. Two."},
		{"No full stop", "This is a mock summary of your text. No full stop."},
		{"Only one.", "This is a mock summary of your text. Only one.."},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			out, err := (&Offline{}).Summarize(context.Background(), types.SummarizeInput{Text: tt.text})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Summary)
		})
	}
}

func TestOffline_RewriteTruncatesSource(t *testing.T) {
	text := strings.Repeat("x", 80)
	out, err := (&Offline{}).Rewrite(context.Background(), types.RewriteInput{Text: text, Tone: types.ToneConcise})
	require.NoError(t, err)
	assert.Equal(t, `This is a mock rewritten text in a concise tone for: "`+strings.Repeat("x", 50)+`..."`, out.RewrittenText)
}

func TestOffline_ValidatesInput(t *testing.T) {
	_, err := (&Offline{}).Brainstorm(context.Background(), types.BrainstormInput{})
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = (&Offline{}).Social(context.Background(), types.SocialInput{Topic: "x", Platform: "Fax"})
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestOffline_DelayHonoursContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := (&Offline{Delay: time.Minute}).Expand(ctx, types.ExpandInput{Text: "x"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
