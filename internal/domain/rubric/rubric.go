// Package rubric scores resume text against a fixed six-dimension
// coaching rubric.
package rubric

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/okian/ascent/internal/domain/extract"
	"github.com/okian/ascent/internal/domain/model"
	"github.com/okian/ascent/internal/domain/taxonomy"
)

// Rubric dimensions. Fixed at six; every result scores all of them.
const (
	DimLength      = "length"
	DimImpactVerbs = "impact_verbs"
	DimQuantified  = "quantified"
	DimContactInfo = "contact_info"
	DimSections    = "sections"
	DimATSKeywords = "ats_keywords"
)

// dimensionOrder fixes the tip ordering in results.
var dimensionOrder = []string{
	DimLength, DimImpactVerbs, DimQuantified, DimContactInfo, DimSections, DimATSKeywords,
}

// Scoring constants.
const (
	maxDimensionScore = 10
	dimensionCount    = 6
	maxOverall        = 100
	tipThreshold      = 7 // dimensions scoring below this get a coaching tip

	defaultMinWords = 200
	defaultMaxWords = 1200
)

// Grade cut points. Exhaustive and non-overlapping over [0,100].
const (
	gradeACut = 85
	gradeBCut = 70
	gradeCCut = 50
)

// Tip is one coaching suggestion tied to an under-scoring dimension.
type Tip struct {
	Dimension string `json:"dimension"`
	Text      string `json:"text"`
}

// Result is the rubric outcome for one resume.
type Result struct {
	DimensionScores map[string]int `json:"dimension_scores"`
	Overall         int            `json:"overall"`
	Grade           string         `json:"grade"`
	Tips            []Tip          `json:"tips"`
}

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithImpactVerbs replaces the action-verb list used by the impact-verb check.
func WithImpactVerbs(verbs []string) Option {
	return func(s *Scorer) {
		if len(verbs) > 0 {
			s.impactVerbs = verbs
		}
	}
}

// WithLengthBand sets the acceptable word-count band.
func WithLengthBand(minWords, maxWords int) Option {
	return func(s *Scorer) {
		if minWords > 0 && maxWords > minWords {
			s.minWords = minWords
			s.maxWords = maxWords
		}
	}
}

// Scorer evaluates resumes. Stateless across calls; reference data
// (taxonomy, roadmaps) is passed per call so reloads take effect immediately.
type Scorer struct {
	impactVerbs []string
	minWords    int
	maxWords    int
}

// New creates a Scorer with default configuration.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		impactVerbs: defaultImpactVerbs,
		minWords:    defaultMinWords,
		maxWords:    defaultMaxWords,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score evaluates resume text across all six dimensions. Empty or blank text
// is a validation fault so callers can tell "nothing to evaluate" apart from
// "evaluated and scored low". The target role, when it matches a roadmap,
// narrows the ATS keyword check to role-relevant skills and flavors the tips.
func (s *Scorer) Score(ctx context.Context, resumeText, targetRole string, tax *taxonomy.Taxonomy, roadmaps []model.Roadmap) (Result, error) {
	if strings.TrimSpace(resumeText) == "" {
		return Result{}, ErrEmptyResume
	}

	roleSkills, roleKnown := roleRelevantSkills(targetRole, roadmaps)

	scores := map[string]int{}
	tips := make([]Tip, 0)
	checks := map[string]func() (int, string){
		DimLength:      func() (int, string) { return s.checkLength(resumeText) },
		DimImpactVerbs: func() (int, string) { return s.checkImpactVerbs(resumeText) },
		DimQuantified:  func() (int, string) { return checkQuantified(resumeText) },
		DimContactInfo: func() (int, string) { return checkContactInfo(resumeText) },
		DimSections:    func() (int, string) { return checkSections(resumeText) },
		DimATSKeywords: func() (int, string) { return checkATSKeywords(ctx, resumeText, tax, roleSkills) },
	}
	for _, dim := range dimensionOrder {
		score, tip := checks[dim]()
		scores[dim] = score
		if score < tipThreshold {
			if roleKnown {
				if extra, ok := roleTipFlavors(targetRole)[dim]; ok {
					tip = tip + " " + extra
				}
			}
			tips = append(tips, Tip{Dimension: dim, Text: tip})
		}
	}

	total := 0
	for _, v := range scores {
		total += v
	}
	overall := int(math.Round(float64(total) / (maxDimensionScore * dimensionCount) * maxOverall))
	if overall < 0 {
		overall = 0
	}
	if overall > maxOverall {
		overall = maxOverall
	}

	return Result{
		DimensionScores: scores,
		Overall:         overall,
		Grade:           grade(overall),
		Tips:            tips,
	}, nil
}

// grade maps an overall score onto the fixed letter bands.
func grade(overall int) string {
	switch {
	case overall >= gradeACut:
		return "A"
	case overall >= gradeBCut:
		return "B"
	case overall >= gradeCCut:
		return "C"
	default:
		return "D"
	}
}

func (s *Scorer) checkLength(text string) (int, string) {
	words := len(strings.Fields(text))
	switch {
	case words < s.minWords:
		return 3, fmt.Sprintf("The resume is very brief (%d words). Aim for %d-%d words to give a complete picture.", words, s.minWords, s.maxWords)
	case words > s.maxWords:
		return 7, fmt.Sprintf("The resume runs long (%d words). Trim to at most %d words; one to two pages is ideal.", words, s.maxWords)
	default:
		return maxDimensionScore, ""
	}
}

// bulletPrefix strips leading bullet markers and enumeration from a line.
var bulletPrefix = regexp.MustCompile(`^[\s\-*•·>]+|^\d+[.)]\s*`)

func (s *Scorer) checkImpactVerbs(text string) (int, string) {
	verbSet := make(map[string]bool, len(s.impactVerbs))
	for _, v := range s.impactVerbs {
		verbSet[strings.ToLower(v)] = true
	}
	hits := 0
	for _, line := range strings.Split(text, "\n") {
		line = bulletPrefix.ReplaceAllString(strings.TrimSpace(line), "")
		fields := strings.Fields(strings.ToLower(line))
		if len(fields) > 0 && verbSet[strings.Trim(fields[0], ".,:;")] {
			hits++
		}
	}
	switch {
	case hits >= 5:
		return maxDimensionScore, ""
	case hits >= 3:
		return 8, ""
	case hits >= 1:
		return 5, "Few bullet lines open with a strong action verb. Start achievements with verbs like 'developed', 'led' or 'reduced'."
	default:
		return 2, "No bullet lines open with a strong action verb. Lead each achievement with a verb: 'Developed a REST API serving 10k users'."
	}
}

// Patterns that indicate quantified achievements.
var quantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(\.\d+)?\s*(%|percent)`),
	regexp.MustCompile(`[$€£₹]\s*\d`),
	regexp.MustCompile(`\d+\+`),
	regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(users|customers|requests|orders|hours|days|weeks|months|years|k|x|million|billion)\b`),
}

func checkQuantified(text string) (int, string) {
	found := 0
	for _, p := range quantPatterns {
		found += len(p.FindAllString(text, -1))
	}
	switch {
	case found == 0:
		return 3, "No measurable results found. Quantify achievements: 'Reduced load time by 40%', 'Served 10,000+ daily users'."
	case found < 3:
		return 7, ""
	default:
		return maxDimensionScore, ""
	}
}

var (
	emailPattern = regexp.MustCompile(`[\w.\-+]+@[\w.\-]+\.\w{2,}`)
	phonePattern = regexp.MustCompile(`[+(]?\d[\d\s\-()]{8,}\d`)
	linkPattern  = regexp.MustCompile(`(?i)(linkedin\.com|github\.com|gitlab\.com)/\S+`)
)

func checkContactInfo(text string) (int, string) {
	score := 0
	missing := []string{}
	if emailPattern.MatchString(text) {
		score += 4
	} else {
		missing = append(missing, "an email address")
	}
	if phonePattern.MatchString(text) {
		score += 3
	} else {
		missing = append(missing, "a phone number")
	}
	if linkPattern.MatchString(text) {
		score += 3
	} else {
		missing = append(missing, "a professional profile link (LinkedIn or GitHub)")
	}
	if len(missing) > 0 {
		return score, "Add " + strings.Join(missing, ", ") + " so recruiters can reach you."
	}
	return score, ""
}

// expectedSections maps each section to header variants that count as present.
var expectedSections = map[string][]string{
	"experience": {"experience", "work history", "employment", "internship"},
	"education":  {"education", "degree", "university", "college"},
	"skills":     {"skills", "technologies", "tech stack"},
	"projects":   {"project", "projects", "portfolio"},
}

// sectionScores maps the number of present sections to a sub-score.
var sectionScores = [...]int{0, 3, 5, 8, 10}

func checkSections(text string) (int, string) {
	lower := strings.ToLower(text)
	missing := []string{}
	present := 0
	for _, section := range []string{"experience", "education", "skills", "projects"} {
		found := false
		for _, variant := range expectedSections[section] {
			if strings.Contains(lower, variant) {
				found = true
				break
			}
		}
		if found {
			present++
		} else {
			missing = append(missing, section)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return sectionScores[present], "Add the missing sections: " + strings.Join(missing, ", ") + ". A complete resume covers experience, education, skills and projects."
	}
	return sectionScores[present], ""
}

// ATS count thresholds used when no target role narrows the relevant set.
const (
	atsLowCount  = 5
	atsGoodCount = 10
)

func checkATSKeywords(ctx context.Context, text string, tax *taxonomy.Taxonomy, roleSkills []string) (int, string) {
	found := extract.New(tax).FromText(ctx, text)

	if len(roleSkills) > 0 {
		foundSet := make(map[string]bool, len(found.Canonical))
		for _, id := range found.Canonical {
			foundSet[taxonomy.Normalize(id)] = true
		}
		hits := 0
		for _, s := range roleSkills {
			if foundSet[taxonomy.Normalize(s)] {
				hits++
			}
		}
		score := int(math.Round(float64(hits) / float64(len(roleSkills)) * maxDimensionScore))
		if score < tipThreshold {
			return score, fmt.Sprintf("Only %d of %d role-relevant skills appear in the text. Mirror the keywords screening systems look for in a dedicated skills section.", hits, len(roleSkills))
		}
		return score, ""
	}

	switch n := len(found.Canonical); {
	case n < atsLowCount:
		return 4, fmt.Sprintf("Only %d recognizable technical keywords found. Screening systems scan for keywords; list your skills explicitly.", n)
	case n < atsGoodCount:
		return 7, ""
	default:
		return maxDimensionScore, ""
	}
}

// roleRelevantSkills returns the target role's roadmap skills when the role
// is recognized, matched case-insensitively.
func roleRelevantSkills(targetRole string, roadmaps []model.Roadmap) ([]string, bool) {
	want := strings.ToLower(strings.TrimSpace(targetRole))
	if want == "" {
		return nil, false
	}
	for _, r := range roadmaps {
		if strings.ToLower(r.Role) == want {
			return r.Skills(), true
		}
	}
	return nil, false
}
