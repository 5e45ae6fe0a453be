package wikitext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalise(t *testing.T) {
	tests := []struct {
		name    string
		extract string
		want    string
	}{
		{
			"section heading",
			"Intro.\n\n== Histoire ==\nTexte.",
			"Intro.\n\n## Histoire\nTexte.",
		},
		{
			"nested heading depths",
			"== Histoire ==\n=== Moyen Âge ===\nTexte.",
			"## Histoire\n### Moyen Âge\nTexte.",
		},
		{
			"missing closing run",
			"== Histoire\nTexte.",
			"## Histoire\nTexte.",
		},
		{
			"excess blank lines collapsed",
			"Un.\n\n\n\nDeux.",
			"Un.\n\nDeux.",
		},
		{
			"surrounding whitespace trimmed",
			"\n\nTexte.\n\n",
			"Texte.",
		},
		{
			"single equals is not a heading",
			"= pas un titre =",
			"= pas un titre =",
		},
		{
			"plain text untouched",
			"La Belgique est un pays.",
			"La Belgique est un pays.",
		},
	}

	n := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalise(context.Background(), tt.extract)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
