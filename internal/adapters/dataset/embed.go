package dataset

import _ "embed"

// Default datasets shipped with the binary. Used whenever no external path
// is configured.

//go:embed skills.yaml
var defaultSkillsYAML []byte

//go:embed jobs.csv
var defaultJobsCSV []byte
