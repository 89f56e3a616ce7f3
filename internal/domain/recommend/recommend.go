// Package recommend ranks job postings against a normalized skill set.
package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/okian/ascent/internal/domain/model"
	"github.com/okian/ascent/internal/domain/taxonomy"
)

// Default ranking configuration constants.
const (
	defaultTopN    = 5
	percentScale   = 100
	roundPrecision = 100 // two decimal places
)

// Query carries the caller's optional filters and result cap.
type Query struct {
	// TopN caps the result length. Zero means "use the engine default";
	// a negative value is a validation fault.
	TopN int
	// ExperienceLevel filters postings to an exact seniority match when set.
	// An unknown token is a validation fault, never silently ignored.
	ExperienceLevel string
	// Location filters postings by case-insensitive substring match when set.
	Location string
}

// Result is one ranked posting with its overlap breakdown.
// Matched and Missing partition the posting's required set.
type Result struct {
	JobID         string   `json:"job_id"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Experience    string   `json:"experience_level"`
	SalaryRange   string   `json:"salary_range"`
	MatchPercent  float64  `json:"match_percent"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithDefaultTopN sets the result cap used when a query leaves TopN unset.
func WithDefaultTopN(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.defaultTopN = n
		}
	}
}

// Engine scores and ranks postings. It is stateless across calls.
type Engine struct {
	defaultTopN int
}

// New creates an Engine with default configuration.
func New(opts ...Option) *Engine {
	e := &Engine{defaultTopN: defaultTopN}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend filters, scores and ranks postings against the caller's skills.
// An empty skill set is a no-match condition and yields an empty slice.
func (e *Engine) Recommend(_ context.Context, skills []string, postings []model.JobPosting, q Query) ([]Result, error) {
	topN := q.TopN
	switch {
	case topN == 0:
		topN = e.defaultTopN
	case topN < 0:
		return nil, fmt.Errorf("%w: top_n %d", ErrInvalidTopN, q.TopN)
	}

	var level model.ExperienceLevel
	if q.ExperienceLevel != "" {
		var err error
		level, err = parseExperienceLevel(q.ExperienceLevel)
		if err != nil {
			return nil, err
		}
	}

	userSet := normalizedSet(skills)
	if len(userSet) == 0 {
		return []Result{}, nil
	}

	results := make([]Result, 0, len(postings))
	for _, p := range postings {
		if level != "" && p.Experience != level {
			continue
		}
		if q.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(q.Location)) {
			continue
		}
		results = append(results, score(userSet, p))
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].MatchPercent != results[j].MatchPercent {
			return results[i].MatchPercent > results[j].MatchPercent
		}
		if len(results[i].MatchedSkills) != len(results[j].MatchedSkills) {
			return len(results[i].MatchedSkills) > len(results[j].MatchedSkills)
		}
		return results[i].JobID < results[j].JobID
	})

	if len(results) > topN {
		results = results[:topN]
	}
	return results, nil
}

// score computes the Jaccard overlap between the user set and one posting.
// A posting with no required skills scores zero; a full-match percentage is
// only possible when both sets are equal and non-empty.
func score(userSet map[string]bool, p model.JobPosting) Result {
	matched := make([]string, 0, len(p.Required))
	missing := make([]string, 0, len(p.Required))
	jobSet := make(map[string]bool, len(p.Required))
	intersection := 0
	for _, s := range p.Required {
		key := taxonomy.Normalize(s)
		if jobSet[key] {
			continue // duplicate requirement, count once
		}
		jobSet[key] = true
		if userSet[key] {
			intersection++
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}

	pct := 0.0
	if len(jobSet) > 0 {
		union := len(userSet) + len(jobSet) - intersection
		pct = math.Round(percentScale*roundPrecision*float64(intersection)/float64(union)) / roundPrecision
	}

	return Result{
		JobID:         p.ID,
		Title:         p.Title,
		Company:       p.Company,
		Location:      p.Location,
		Experience:    string(p.Experience),
		SalaryRange:   p.SalaryRange,
		MatchPercent:  pct,
		MatchedSkills: matched,
		MissingSkills: missing,
	}
}

// normalizedSet folds a skill list into a set of normalized identifiers.
func normalizedSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		if key := taxonomy.Normalize(s); key != "" {
			set[key] = true
		}
	}
	return set
}

// parseExperienceLevel validates a posting-seniority filter token.
func parseExperienceLevel(s string) (model.ExperienceLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "entry", "junior":
		return model.ExperienceEntry, nil
	case "mid", "middle":
		return model.ExperienceMid, nil
	case "senior":
		return model.ExperienceSenior, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidExperienceLevel, s)
	}
}
