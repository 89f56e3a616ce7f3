// Package taxonomy holds the canonical skill catalog and alias resolution.
//
// The taxonomy is built once from the skills document and is immutable
// afterwards, so concurrent readers need no locking.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"
)

// Skill categories. The set is fixed by the skills document schema.
const (
	CategoryLanguage  = "language"
	CategoryFramework = "framework"
	CategoryDatabase  = "database"
	CategoryTool      = "tool"
	CategoryPlatform  = "platform"
	CategoryConcept   = "concept"
	CategorySoftSkill = "soft-skill"
)

// Skill is one canonical entry in the catalog.
type Skill struct {
	// ID is the canonical identifier the skill is stored and compared under.
	ID string
	// Category is one of the Category* constants.
	Category string
	// Aliases are alternate spellings and abbreviations that resolve to ID.
	// The canonical ID itself always resolves, it does not need listing.
	Aliases []string
}

// Taxonomy maps normalized aliases to canonical skills.
type Taxonomy struct {
	skills  []Skill
	byAlias map[string]int // normalized alias -> index into skills
}

// New validates the catalog and builds the alias map.
// Canonical IDs must be unique case-insensitively, and every alias must map
// to exactly one canonical skill.
func New(skills []Skill) (*Taxonomy, error) {
	t := &Taxonomy{
		skills:  make([]Skill, len(skills)),
		byAlias: make(map[string]int, len(skills)*2),
	}
	copy(t.skills, skills)

	for i, s := range t.skills {
		key := Normalize(s.ID)
		if key == "" {
			return nil, fmt.Errorf("%w: skill %d has empty id", ErrInvalidSkill, i)
		}
		if prev, ok := t.byAlias[key]; ok {
			return nil, fmt.Errorf("%w: %q collides with %q", ErrDuplicateSkill, s.ID, t.skills[prev].ID)
		}
		t.byAlias[key] = i
	}
	// Aliases are registered after all canonical IDs so a clash between an
	// alias and any canonical ID is detected regardless of document order.
	for i, s := range t.skills {
		for _, a := range s.Aliases {
			key := Normalize(a)
			if key == "" {
				continue
			}
			if prev, ok := t.byAlias[key]; ok && prev != i {
				return nil, fmt.Errorf("%w: alias %q of %q already maps to %q",
					ErrAliasConflict, a, s.ID, t.skills[prev].ID)
			}
			t.byAlias[key] = i
		}
	}
	return t, nil
}

// Resolve looks up a single token and returns the canonical skill.
func (t *Taxonomy) Resolve(token string) (Skill, bool) {
	i, ok := t.byAlias[Normalize(token)]
	if !ok {
		return Skill{}, false
	}
	return t.skills[i], true
}

// Skills returns the catalog in document order.
func (t *Taxonomy) Skills() []Skill {
	out := make([]Skill, len(t.skills))
	copy(out, t.skills)
	return out
}

// Len returns the number of canonical skills.
func (t *Taxonomy) Len() int {
	return len(t.skills)
}

// aliasSeq is a normalized alias split into tokens, used by the text scanner.
type aliasSeq struct {
	tokens []string
	skill  int
}

// AliasSequences returns every normalized alias (canonical IDs included) as a
// token sequence, grouped by first token. Sequences sharing a first token are
// ordered longest first so a greedy scanner prefers the most specific match
// at a given position.
func (t *Taxonomy) AliasSequences() map[string][][]string {
	byFirst := make(map[string][]aliasSeq)
	for key, i := range t.byAlias {
		tokens := strings.Fields(key)
		if len(tokens) == 0 {
			continue
		}
		byFirst[tokens[0]] = append(byFirst[tokens[0]], aliasSeq{tokens: tokens, skill: i})
	}
	out := make(map[string][][]string, len(byFirst))
	for first, seqs := range byFirst {
		sort.Slice(seqs, func(a, b int) bool {
			if len(seqs[a].tokens) != len(seqs[b].tokens) {
				return len(seqs[a].tokens) > len(seqs[b].tokens)
			}
			return strings.Join(seqs[a].tokens, " ") < strings.Join(seqs[b].tokens, " ")
		})
		lists := make([][]string, len(seqs))
		for i, s := range seqs {
			lists[i] = s.tokens
		}
		out[first] = lists
	}
	return out
}

// ResolveSequence resolves a token sequence previously produced by Normalize
// splitting, e.g. ["machine","learning"].
func (t *Taxonomy) ResolveSequence(tokens []string) (Skill, bool) {
	return t.Resolve(strings.Join(tokens, " "))
}

// Normalize folds a raw token into the form alias keys are stored under:
// lower case, trimmed, punctuation stripped except the characters that are
// load-bearing in skill names (+ # / .), whitespace collapsed.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == '+', r == '#', r == '/', r == '.':
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	out := strings.TrimSpace(b.String())
	// A trailing sentence period is noise; an embedded one ("node.js") is not.
	out = strings.TrimRight(out, ".")
	return out
}

// Tokenize normalizes free text and splits it into scan tokens.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}
