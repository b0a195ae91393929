// Package dataset reads and validates the raw planning inputs: three CSV
// files (people, stories, roles) and a YAML configuration document. Raw
// records keep their source line numbers so validation errors can point at
// the offending row and field; conversion to domain types happens only
// after validation passes in full.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File names expected inside the data directory.
const (
	PeopleFile  = "people.csv"
	StoriesFile = "stories.csv"
	RolesFile   = "roles.csv"
	ConfigFile  = "config.yaml"
)

// PersonRecord is one unparsed row of people.csv.
type PersonRecord struct {
	Person        string
	Role          string
	CapacityHours string
	Line          int
}

// StoryRecord is one unparsed row of stories.csv. DependsOn is empty when
// the story has no predecessor.
type StoryRecord struct {
	StoryID   string
	Points    string
	Value     string
	DependsOn string
	Line      int
}

// RoleRecord is one unparsed row of roles.csv.
type RoleRecord struct {
	Role                     string
	ShareOfHours             string
	MeetingLoadPerStoryHours string
	BugHoursPerBug           string
	Line                     int
}

// ConfigRecord mirrors config.yaml. Required scalars are pointers so a
// missing key is distinguishable from a zero value.
type ConfigRecord struct {
	HoursPerPoint          *float64 `yaml:"hours_per_point"`
	BugsPerSprint          *int     `yaml:"bugs_per_sprint"`
	MaxPointsPerDev        *int     `yaml:"max_points_per_dev"`
	LambdaPeoplePenalty    *float64 `yaml:"lambda_people_penalty"`
	RequireReleaseForRoles []string `yaml:"require_release_for_roles"`
	MinHoursToCountRelease *float64 `yaml:"min_hours_to_count_release"`
	QACoverageFactor       *float64 `yaml:"qa_coverage_factor"`
	WIPFactorQACapacity    *float64 `yaml:"wip_factor_QA_capacity"`
	ForbidPoints           []int    `yaml:"forbid_points"`
}

// Dataset is the raw, unvalidated content of one data directory.
type Dataset struct {
	People  []PersonRecord
	Stories []StoryRecord
	Roles   []RoleRecord
	Config  ConfigRecord
}

// LoadDataset reads the four input files from dir. Errors here are
// file-level (missing file, malformed CSV structure, unparseable YAML);
// field-level problems are the validator's job.
func LoadDataset(dir string) (*Dataset, error) {
	ds := &Dataset{}

	rows, err := readCSV(filepath.Join(dir, PeopleFile))
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		ds.People = append(ds.People, PersonRecord{
			Person:        row.get("person"),
			Role:          row.get("role"),
			CapacityHours: row.get("capacity_hours"),
			Line:          row.line,
		})
	}

	rows, err = readCSV(filepath.Join(dir, StoriesFile))
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		ds.Stories = append(ds.Stories, StoryRecord{
			StoryID:   row.get("story_id"),
			Points:    row.get("points"),
			Value:     row.get("value"),
			DependsOn: row.get("depends_on"),
			Line:      row.line,
		})
	}

	rows, err = readCSV(filepath.Join(dir, RolesFile))
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		ds.Roles = append(ds.Roles, RoleRecord{
			Role:                     row.get("role"),
			ShareOfHours:             row.get("share_of_hours"),
			MeetingLoadPerStoryHours: row.get("meeting_load_per_story_hours"),
			BugHoursPerBug:           row.get("bug_hours_per_bug"),
			Line:                     row.line,
		})
	}

	cfgPath := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ConfigFile, err)
	}
	if err := yaml.Unmarshal(data, &ds.Config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFile, err)
	}

	return ds, nil
}

// csvRow pairs a header-keyed row with its 1-based source line number.
type csvRow struct {
	fields map[string]string
	line   int
}

func (r csvRow) get(name string) string { return r.fields[name] }

func readCSV(path string) ([]csvRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", filepath.Base(path))
	}

	header := records[0]
	var rows []csvRow
	for i, rec := range records[1:] {
		fields := make(map[string]string, len(header))
		for j, col := range header {
			if j < len(rec) {
				fields[col] = rec[j]
			}
		}
		rows = append(rows, csvRow{fields: fields, line: i + 2})
	}
	return rows, nil
}
