// Package profile loads the candidate profile driving a simulation: rank,
// category, year, and the ordered preference list, from YAML documents.
package profile

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/admitlab/allotsim/internal/allotment"
	"github.com/admitlab/allotsim/internal/idgen"
)

// Preference is one option on the candidate's list. Priority 1 is the most
// wanted seat. When no preference in the document carries a priority, list
// position decides.
type Preference struct {
	ID          string `yaml:"id,omitempty"`
	CollegeCode string `yaml:"college_code"`
	BranchCode  string `yaml:"branch_code,omitempty"`
	CollegeName string `yaml:"college_name"`
	BranchName  string `yaml:"branch_name"`
	Priority    int    `yaml:"priority,omitempty"`
}

type Profile struct {
	Rank        int          `yaml:"rank"`
	Category    string       `yaml:"category"`
	Year        string       `yaml:"year"`
	Preferences []Preference `yaml:"preferences"`
}

// Parse decodes, normalizes, and validates a YAML profile document.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	p.normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads a profile from any URL the afs service understands. A nil fs
// falls back to the default service.
func Load(ctx context.Context, fs afs.Service, url string) (*Profile, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("download profile %s: %w", url, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", url, err)
	}
	return p, nil
}

// normalize trims fields, generates IDs for preferences that lack one,
// fills positional priorities when the document set none, and sorts the
// list by priority.
func (p *Profile) normalize() {
	p.Category = strings.TrimSpace(p.Category)
	p.Year = strings.TrimSpace(p.Year)

	allUnset := true
	for i := range p.Preferences {
		if p.Preferences[i].Priority != 0 {
			allUnset = false
			break
		}
	}
	for i := range p.Preferences {
		pref := &p.Preferences[i]
		pref.ID = strings.TrimSpace(pref.ID)
		pref.CollegeCode = strings.TrimSpace(pref.CollegeCode)
		pref.BranchCode = strings.TrimSpace(pref.BranchCode)
		pref.CollegeName = strings.TrimSpace(pref.CollegeName)
		pref.BranchName = strings.TrimSpace(pref.BranchName)
		if pref.ID == "" {
			pref.ID = idgen.New()
		}
		if allUnset {
			pref.Priority = i + 1
		}
	}
	sort.SliceStable(p.Preferences, func(i, j int) bool {
		return p.Preferences[i].Priority < p.Preferences[j].Priority
	})
}

func (p *Profile) Validate() error {
	if p.Rank <= 0 {
		return fmt.Errorf("rank must be positive, got %d", p.Rank)
	}
	if p.Category == "" {
		return fmt.Errorf("category is required")
	}
	if p.Year == "" {
		return fmt.Errorf("year is required")
	}
	if len(p.Preferences) == 0 {
		return fmt.Errorf("at least one preference is required")
	}
	seen := map[int]int{}
	for i, pref := range p.Preferences {
		if pref.CollegeName == "" {
			return fmt.Errorf("preference %d: college_name is required", i)
		}
		if pref.BranchName == "" {
			return fmt.Errorf("preference %d: branch_name is required", i)
		}
		if pref.Priority <= 0 {
			return fmt.Errorf("preference %d: priority must be positive, got %d", i, pref.Priority)
		}
		if first, ok := seen[pref.Priority]; ok {
			return fmt.Errorf("preference %d: priority %d already used by preference %d", i, pref.Priority, first)
		}
		seen[pref.Priority] = i
	}
	return nil
}

// Input converts the profile into the shape the simulator consumes.
func (p *Profile) Input() allotment.SimulationInput {
	prefs := make([]allotment.PreferenceOption, 0, len(p.Preferences))
	for _, pref := range p.Preferences {
		prefs = append(prefs, allotment.PreferenceOption{
			ID:          pref.ID,
			CollegeCode: pref.CollegeCode,
			BranchCode:  pref.BranchCode,
			CollegeName: pref.CollegeName,
			BranchName:  pref.BranchName,
			Priority:    pref.Priority,
		})
	}
	return allotment.SimulationInput{
		UserRank:    p.Rank,
		Category:    p.Category,
		Year:        p.Year,
		Preferences: prefs,
	}
}
