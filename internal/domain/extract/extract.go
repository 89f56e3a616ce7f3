// Package extract turns raw skill lists or free text into normalized,
// deduplicated canonical skill sets.
package extract

import (
	"context"
	"sort"

	"github.com/okian/ascent/internal/domain/taxonomy"
)

// Result is the normalized skill set derived from one request's input.
// Constructed fresh per call, never shared.
type Result struct {
	// Canonical holds the distinct canonical skill IDs, sorted.
	Canonical []string `json:"canonical"`
	// ByCategory groups the canonical IDs by taxonomy category.
	ByCategory map[string][]string `json:"by_category"`
	// Unrecognized lists input tokens that resolved to no known skill.
	// They are excluded from the canonical set rather than passed through.
	Unrecognized []string `json:"unrecognized"`
}

// Extractor resolves input against one taxonomy snapshot. It holds no
// mutable state; a single Extractor may serve concurrent calls.
type Extractor struct {
	tax *taxonomy.Taxonomy
}

// New creates an Extractor bound to a taxonomy snapshot.
func New(tax *taxonomy.Taxonomy) *Extractor {
	return &Extractor{tax: tax}
}

// FromList resolves an explicit list of skill tokens. Each token is
// normalized and looked up in the alias map; unresolved tokens land in
// Unrecognized.
func (e *Extractor) FromList(_ context.Context, tokens []string) Result {
	seen := make(map[string]bool)
	unrecognized := make([]string, 0)
	seenRaw := make(map[string]bool)
	for _, tok := range tokens {
		if taxonomy.Normalize(tok) == "" {
			continue
		}
		s, ok := e.tax.Resolve(tok)
		if !ok {
			key := taxonomy.Normalize(tok)
			if !seenRaw[key] {
				seenRaw[key] = true
				unrecognized = append(unrecognized, tok)
			}
			continue
		}
		seen[s.ID] = true
	}
	return e.finish(seen, unrecognized)
}

// FromText scans free text for whole-word occurrences of every known alias.
// The scan is greedy left to right and tries the longest alias first at each
// position, so "machine learning" is never shadowed by a one-word alias that
// happens to share its prefix.
func (e *Extractor) FromText(_ context.Context, text string) Result {
	tokens := taxonomy.Tokenize(text)
	sequences := e.tax.AliasSequences()
	seen := make(map[string]bool)

	for i := 0; i < len(tokens); {
		advanced := false
		for _, seq := range sequences[tokens[i]] {
			if !matchAt(tokens, i, seq) {
				continue
			}
			if s, ok := e.tax.ResolveSequence(seq); ok {
				seen[s.ID] = true
				i += len(seq)
				advanced = true
			}
			break
		}
		if !advanced {
			i++
		}
	}
	return e.finish(seen, nil)
}

// matchAt reports whether seq occurs at position i of tokens.
func matchAt(tokens []string, i int, seq []string) bool {
	if i+len(seq) > len(tokens) {
		return false
	}
	for j, want := range seq {
		if tokens[i+j] != want {
			return false
		}
	}
	return true
}

// finish assembles the sorted canonical list and the category breakdown.
func (e *Extractor) finish(seen map[string]bool, unrecognized []string) Result {
	canonical := make([]string, 0, len(seen))
	for id := range seen {
		canonical = append(canonical, id)
	}
	sort.Strings(canonical)

	byCategory := make(map[string][]string)
	for _, id := range canonical {
		if s, ok := e.tax.Resolve(id); ok {
			byCategory[s.Category] = append(byCategory[s.Category], id)
		}
	}
	if unrecognized == nil {
		unrecognized = []string{}
	}
	return Result{
		Canonical:    canonical,
		ByCategory:   byCategory,
		Unrecognized: unrecognized,
	}
}
