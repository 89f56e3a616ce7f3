// Package dataset loads the reference datasets — the skills document
// (taxonomy, role roadmaps, rubric word lists) and the job-listing table —
// and assembles them into immutable snapshots.
//
// The skills document is YAML, loaded through koanf like the service
// configuration. Job listings are plain CSV. Both have embedded defaults so
// the binary runs without any external files.
package dataset

import (
	"context"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/okian/ascent/internal/adapters/repository"
	"github.com/okian/ascent/internal/domain/model"
	"github.com/okian/ascent/internal/domain/taxonomy"
)

// Document mirrors the skills YAML schema.
type Document struct {
	Skills      []SkillEntry   `koanf:"skills"`
	Roadmaps    []RoadmapEntry `koanf:"roadmaps"`
	ImpactVerbs []string       `koanf:"impact_verbs"`
}

// SkillEntry is one taxonomy row in the document.
type SkillEntry struct {
	ID       string   `koanf:"id"`
	Category string   `koanf:"category"`
	Aliases  []string `koanf:"aliases"`
}

// RoadmapEntry is one role roadmap in the document.
type RoadmapEntry struct {
	Role   string       `koanf:"role"`
	Levels []LevelEntry `koanf:"levels"`
}

// LevelEntry is one ordered level of a roadmap.
type LevelEntry struct {
	Name   string      `koanf:"name"`
	Skills []ItemEntry `koanf:"skills"`
}

// ItemEntry pairs a skill with its learning resource.
type ItemEntry struct {
	Skill    string `koanf:"skill"`
	Resource string `koanf:"resource"`
}

// Loader reads the datasets from configured paths, falling back to the
// embedded defaults when a path is empty.
type Loader struct {
	skillsPath string
	jobsPath   string
}

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithSkillsPath points the loader at an external skills document.
func WithSkillsPath(path string) Option {
	return func(l *Loader) { l.skillsPath = path }
}

// WithJobsPath points the loader at an external job-listing CSV.
func WithJobsPath(path string) Option {
	return func(l *Loader) { l.jobsPath = path }
}

// NewLoader creates a Loader with the given options.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads both datasets and assembles a fresh snapshot. Any malformed
// entry fails the whole load; the caller keeps serving the previous snapshot.
func (l *Loader) Load(ctx context.Context) (*repository.Snapshot, error) {
	doc, err := l.loadDocument()
	if err != nil {
		return nil, err
	}
	tax, roadmaps, err := buildReference(doc)
	if err != nil {
		return nil, err
	}

	jobsRaw := defaultJobsCSV
	if l.jobsPath != "" {
		jobsRaw, err = os.ReadFile(l.jobsPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadJobs, err)
		}
	}
	postings, err := parseJobs(jobsRaw)
	if err != nil {
		return nil, err
	}

	return &repository.Snapshot{
		Taxonomy:    tax,
		Postings:    postings,
		Roadmaps:    roadmaps,
		ImpactVerbs: doc.ImpactVerbs,
	}, nil
}

// WatchPaths returns the external file paths the loader reads, for callers
// that want to reload on change. Embedded defaults are not watchable.
func (l *Loader) WatchPaths() []string {
	var paths []string
	if l.skillsPath != "" {
		paths = append(paths, l.skillsPath)
	}
	if l.jobsPath != "" {
		paths = append(paths, l.jobsPath)
	}
	return paths
}

// loadDocument parses the skills YAML through koanf.
func (l *Loader) loadDocument() (*Document, error) {
	raw := defaultSkillsYAML
	if l.skillsPath != "" {
		b, err := os.ReadFile(l.skillsPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadSkills, err)
		}
		raw = b
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(raw), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadSkills, err)
	}
	var doc Document
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadSkills, err)
	}
	if len(doc.Skills) == 0 {
		return nil, fmt.Errorf("%w: document defines no skills", ErrLoadSkills)
	}
	return &doc, nil
}

// buildReference validates the document and constructs the immutable
// taxonomy and roadmap tables.
func buildReference(doc *Document) (*taxonomy.Taxonomy, []model.Roadmap, error) {
	skills := make([]taxonomy.Skill, 0, len(doc.Skills))
	for i, e := range doc.Skills {
		if e.ID == "" || e.Category == "" {
			return nil, nil, fmt.Errorf("%w: skill %d missing id or category", ErrBadRecord, i)
		}
		skills = append(skills, taxonomy.Skill{ID: e.ID, Category: e.Category, Aliases: e.Aliases})
	}
	tax, err := taxonomy.New(skills)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrLoadSkills, err)
	}

	roadmaps := make([]model.Roadmap, 0, len(doc.Roadmaps))
	for _, r := range doc.Roadmaps {
		if r.Role == "" {
			return nil, nil, fmt.Errorf("%w: roadmap missing role name", ErrBadRecord)
		}
		rm := model.Roadmap{Role: r.Role}
		for _, lvl := range r.Levels {
			level := model.RoadmapLevel{Name: lvl.Name}
			for _, item := range lvl.Skills {
				if item.Skill == "" {
					return nil, nil, fmt.Errorf("%w: roadmap %q has an unnamed skill", ErrBadRecord, r.Role)
				}
				level.Items = append(level.Items, model.RoadmapItem{Skill: item.Skill, Resource: item.Resource})
			}
			rm.Levels = append(rm.Levels, level)
		}
		roadmaps = append(roadmaps, rm)
	}
	return tax, roadmaps, nil
}
