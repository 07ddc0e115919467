package cutoffs

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/admitlab/allotsim/internal/allotment"
)

// ParseEntries decodes a JSON array of cutoff entries and validates each
// one. The first invalid entry fails the whole parse, with its index in
// the error.
func ParseEntries(data []byte) ([]allotment.CutoffEntry, error) {
	var entries []allotment.CutoffEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	for i, e := range entries {
		if err := validateEntry(e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return entries, nil
}

func validateEntry(e allotment.CutoffEntry) error {
	if strings.TrimSpace(e.Institute) == "" {
		return fmt.Errorf("institute is required")
	}
	if strings.TrimSpace(e.Course) == "" {
		return fmt.Errorf("course is required")
	}
	if strings.TrimSpace(e.Category) == "" {
		return fmt.Errorf("category is required")
	}
	if e.CutoffRank <= 0 {
		return fmt.Errorf("cutoff_rank must be positive, got %d", e.CutoffRank)
	}
	if strings.TrimSpace(e.Year) == "" {
		return fmt.Errorf("year is required")
	}
	if strings.TrimSpace(e.Round) == "" {
		return fmt.Errorf("round is required")
	}
	return nil
}
