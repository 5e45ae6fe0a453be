// Package wikitext converts MediaWiki plain-text extracts into display
// markdown. The extracts API strips markup but keeps section headings
// in the "== Heading ==" form; this package rewrites those into
// markdown headings and tidies the whitespace.
package wikitext

import (
	"context"
	"regexp"
	"strings"

	"github.com/fossabot/belgium/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.ExtractNormaliser = (*Normaliser)(nil)

// Normaliser handles MediaWiki plain-text extracts.
type Normaliser struct{}

// New creates a new wikitext normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

var (
	// "== Heading ==" with 2..6 equals signs. The closing run is
	// optional; some extracts drop it on the last section.
	heading = regexp.MustCompile(`(?m)^(={2,6})\s*(.+?)\s*=*\s*$`)

	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// Normalise converts one extract to markdown. The heading depth equals
// the number of equals signs, matching MediaWiki section levels.
func (n *Normaliser) Normalise(_ context.Context, extract string) (string, error) {
	out := heading.ReplaceAllStringFunc(extract, func(line string) string {
		m := heading.FindStringSubmatch(line)
		return strings.Repeat("#", len(m[1])) + " " + m[2]
	})
	out = multiNewlines.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out), nil
}
