// Package model contains domain models passed between layers.
package model

// ExperienceLevel classifies a job posting's seniority.
type ExperienceLevel string

// Known experience levels for job postings.
const (
	ExperienceEntry  ExperienceLevel = "Entry"
	ExperienceMid    ExperienceLevel = "Mid"
	ExperienceSenior ExperienceLevel = "Senior"
)

// JobPosting represents one row of the job-listing table.
// Required skills reference canonical taxonomy identifiers; a posting may
// carry identifiers unknown to the taxonomy and they are still matched as
// opaque strings.
type JobPosting struct {
	ID          string
	Title       string
	Company     string
	Location    string
	Experience  ExperienceLevel
	SalaryRange string
	Description string
	Required    []string // required canonical skill identifiers
}

// Roadmap level names in curriculum order.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// LevelOrder is the defined ordering of roadmap levels.
var LevelOrder = []string{LevelBeginner, LevelIntermediate, LevelAdvanced}

// RoadmapItem pairs a required skill with a recommended learning resource.
type RoadmapItem struct {
	Skill    string
	Resource string
}

// RoadmapLevel holds one level's ordered skill list.
type RoadmapLevel struct {
	Name  string
	Items []RoadmapItem
}

// Roadmap is the leveled curriculum for a target role. Reference data,
// immutable for the lifetime of a snapshot.
type Roadmap struct {
	Role   string
	Levels []RoadmapLevel
}

// Level returns the named level, or false when the roadmap does not define it.
func (r Roadmap) Level(name string) (RoadmapLevel, bool) {
	for _, lvl := range r.Levels {
		if lvl.Name == name {
			return lvl, true
		}
	}
	return RoadmapLevel{}, false
}

// Skills returns every skill named anywhere in the roadmap, in roadmap order.
func (r Roadmap) Skills() []string {
	var out []string
	for _, lvl := range r.Levels {
		for _, it := range lvl.Items {
			out = append(out, it.Skill)
		}
	}
	return out
}
