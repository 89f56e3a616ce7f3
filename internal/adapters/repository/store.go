// Package repository defines the reference-data snapshot store and errors.
package repository

import (
	"context"
	"time"

	"github.com/okian/ascent/internal/domain/model"
	"github.com/okian/ascent/internal/domain/rubric"
	"github.com/okian/ascent/internal/domain/taxonomy"
)

// Snapshot bundles one consistent version of all reference data. A snapshot
// is immutable after construction; reloads build a new one and swap it in
// wholesale, so readers never observe a half-updated dataset. The rubric
// scorer rides along so a resume is always scored with the verb list of the
// same snapshot that supplies its taxonomy and roadmaps.
type Snapshot struct {
	Taxonomy    *taxonomy.Taxonomy
	Postings    []model.JobPosting
	Roadmaps    []model.Roadmap
	ImpactVerbs []string
	Scorer      *rubric.Scorer
	LoadedAt    time.Time
	Version     uint64
}

// Store provides read access to the current snapshot and wholesale
// replacement on reload.
type Store interface {
	// Snapshot returns the current snapshot.
	// Returns ErrNoSnapshot before the first Replace.
	Snapshot(ctx context.Context) (*Snapshot, error)

	// Replace atomically installs a new snapshot, stamping version and
	// load time.
	Replace(ctx context.Context, snap *Snapshot) error

	// Counts reports the posting and skill counts of the current snapshot,
	// zero before the first load.
	Counts(ctx context.Context) (postings, skills int)
}
