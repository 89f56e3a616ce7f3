// Package gap produces role-readiness reports from a skill set and the
// role roadmap reference data.
package gap

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/okian/ascent/internal/domain/model"
	"github.com/okian/ascent/internal/domain/taxonomy"
)

// Default per-missing-skill learning cost in weeks, by level.
const (
	defaultBeginnerWeeks     = 1
	defaultIntermediateWeeks = 2
	defaultAdvancedWeeks     = 3
)

// LevelReport partitions one roadmap level into known and missing skills.
// Known and Missing together are exactly the level's full skill list.
type LevelReport struct {
	Name    string   `json:"name"`
	Known   []string `json:"known"`
	Missing []string `json:"missing"`
}

// MissingSkill is one prioritized gap with its learning resource.
type MissingSkill struct {
	Skill    string `json:"skill"`
	Level    string `json:"level"`
	Resource string `json:"resource"`
}

// Report is the full gap analysis for one target role.
type Report struct {
	Role               string         `json:"role"`
	Levels             []LevelReport  `json:"levels"`
	PrioritizedMissing []MissingSkill `json:"prioritized_missing"`
	ETAWeeks           int            `json:"eta_weeks"`
	CompletionPercent  float64        `json:"completion_percent"`
}

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithLevelCosts overrides the per-missing-skill week cost for each level.
// Costs must stay positive so the ETA remains monotonic in missing count.
func WithLevelCosts(costs map[string]int) Option {
	return func(a *Analyzer) {
		for level, weeks := range costs {
			if weeks > 0 {
				a.weekCosts[level] = weeks
			}
		}
	}
}

// Analyzer computes gap reports. Stateless across calls.
type Analyzer struct {
	weekCosts map[string]int
}

// New creates an Analyzer with default configuration.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		weekCosts: map[string]int{
			model.LevelBeginner:     defaultBeginnerWeeks,
			model.LevelIntermediate: defaultIntermediateWeeks,
			model.LevelAdvanced:     defaultAdvancedWeeks,
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze partitions the target role's roadmap into known and missing skills.
// The target role is matched case-insensitively against the roadmap table;
// an unknown role is a validation fault, not an empty report. The optional
// experience level picks the starting level: levels below it are assumed
// already achieved and are not scored.
func (a *Analyzer) Analyze(_ context.Context, skills []string, targetRole, experienceLevel string, roadmaps []model.Roadmap) (Report, error) {
	roadmap, ok := findRoadmap(roadmaps, targetRole)
	if !ok {
		return Report{}, fmt.Errorf("%w: %q", ErrUnknownRole, targetRole)
	}

	start := 0
	if experienceLevel != "" {
		start = levelIndex(experienceLevel)
		if start < 0 {
			return Report{}, fmt.Errorf("%w: %q", ErrInvalidLevel, experienceLevel)
		}
	}

	known := make(map[string]bool, len(skills))
	for _, s := range skills {
		if key := taxonomy.Normalize(s); key != "" {
			known[key] = true
		}
	}

	report := Report{
		Role:               roadmap.Role,
		Levels:             make([]LevelReport, 0, len(model.LevelOrder)),
		PrioritizedMissing: make([]MissingSkill, 0),
	}
	total, matched := 0, 0
	for _, name := range model.LevelOrder[start:] {
		level, ok := roadmap.Level(name)
		if !ok {
			continue
		}
		lr := LevelReport{Name: name, Known: []string{}, Missing: []string{}}
		for _, item := range level.Items {
			total++
			if known[taxonomy.Normalize(item.Skill)] {
				matched++
				lr.Known = append(lr.Known, item.Skill)
				continue
			}
			lr.Missing = append(lr.Missing, item.Skill)
			report.PrioritizedMissing = append(report.PrioritizedMissing, MissingSkill{
				Skill:    item.Skill,
				Level:    name,
				Resource: item.Resource,
			})
			report.ETAWeeks += a.weekCosts[name]
		}
		report.Levels = append(report.Levels, lr)
	}

	if total > 0 {
		report.CompletionPercent = math.Round(10000*float64(matched)/float64(total)) / 100
	}
	return report, nil
}

// findRoadmap matches a role name case-insensitively.
func findRoadmap(roadmaps []model.Roadmap, role string) (model.Roadmap, bool) {
	want := strings.ToLower(strings.TrimSpace(role))
	for _, r := range roadmaps {
		if strings.ToLower(r.Role) == want {
			return r, true
		}
	}
	return model.Roadmap{}, false
}

// levelIndex returns the position of a level name in the defined order,
// or -1 for an unknown token.
func levelIndex(name string) int {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, lvl := range model.LevelOrder {
		if lvl == want {
			return i
		}
	}
	return -1
}
