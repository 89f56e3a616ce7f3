package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/okian/ascent/internal/domain/model"
)

// Job CSV column layout. The header row is required and validated.
var jobColumns = []string{
	"job_id", "title", "company", "location", "experience_level",
	"salary_range", "skills_required", "description",
}

// skillSeparator splits the skills_required column.
const skillSeparator = "|"

// parseJobs reads the job-listing CSV into postings. Any malformed row is a
// load fault for the whole table; per-request processing never sees bad rows.
func parseJobs(raw []byte) ([]model.JobPosting, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadJobs, err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var postings []model.JobPosting
	seen := make(map[string]bool)
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrLoadJobs, line, err)
		}
		p, err := parseJobRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrLoadJobs, line, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: line %d: %w: duplicate job id %q", ErrLoadJobs, line, ErrBadRecord, p.ID)
		}
		seen[p.ID] = true
		postings = append(postings, p)
	}
	return postings, nil
}

func checkHeader(header []string) error {
	if len(header) != len(jobColumns) {
		return fmt.Errorf("%w: %w: expected %d columns, got %d", ErrLoadJobs, ErrBadRecord, len(jobColumns), len(header))
	}
	for i, want := range jobColumns {
		if strings.TrimSpace(strings.ToLower(header[i])) != want {
			return fmt.Errorf("%w: %w: column %d is %q, want %q", ErrLoadJobs, ErrBadRecord, i, header[i], want)
		}
	}
	return nil
}

func parseJobRow(row []string) (model.JobPosting, error) {
	if len(row) != len(jobColumns) {
		return model.JobPosting{}, fmt.Errorf("%w: wrong column count", ErrBadRecord)
	}
	id := strings.TrimSpace(row[0])
	title := strings.TrimSpace(row[1])
	if id == "" || title == "" {
		return model.JobPosting{}, fmt.Errorf("%w: empty job_id or title", ErrBadRecord)
	}
	level, err := parseLevel(row[4])
	if err != nil {
		return model.JobPosting{}, err
	}

	var required []string
	for _, s := range strings.Split(row[6], skillSeparator) {
		if s = strings.TrimSpace(s); s != "" {
			required = append(required, s)
		}
	}

	return model.JobPosting{
		ID:          id,
		Title:       title,
		Company:     strings.TrimSpace(row[2]),
		Location:    strings.TrimSpace(row[3]),
		Experience:  level,
		SalaryRange: strings.TrimSpace(row[5]),
		Description: strings.TrimSpace(row[7]),
		Required:    required,
	}, nil
}

func parseLevel(s string) (model.ExperienceLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "entry", "junior":
		return model.ExperienceEntry, nil
	case "mid", "middle":
		return model.ExperienceMid, nil
	case "senior":
		return model.ExperienceSenior, nil
	default:
		return "", fmt.Errorf("%w: unknown experience level %q", ErrBadRecord, s)
	}
}
