package allotment

import (
	"fmt"
	"strings"

	"github.com/admitlab/allotsim/internal/course"
)

const noCutoffReason = "No cutoff data available for this college-branch combination"

// FindCutoff resolves the cutoff row for a preference within one cutoff
// subset. Matching runs in strict priority order and returns at the first
// hit: restrict to the preference's college (no cross-college fallback),
// then department-code equality, then canonical-key equality, then
// substring containment of the normalized names in either direction. Within
// each stage the first entry in input order wins; the fuzzy containment
// stage is an accepted heuristic, not a best-match search.
func FindCutoff(entries []CutoffEntry, pref PreferenceOption) *CutoffEntry {
	var college []CutoffEntry
	for _, e := range entries {
		if strings.EqualFold(e.InstituteCode, pref.CollegeCode) {
			college = append(college, e)
		}
	}
	if len(college) == 0 {
		return nil
	}

	code := course.Code(pref.BranchCode)
	if code == "" {
		code = course.Code(pref.BranchName)
	}
	if code != "" {
		for i := range college {
			if course.Code(college[i].Course) == code {
				return &college[i]
			}
		}
	}

	if key := course.CanonicalKey(pref.BranchName); key != "" {
		for i := range college {
			if course.CanonicalKey(college[i].Course) == key {
				return &college[i]
			}
		}
	}

	want := strings.ToLower(course.Normalize(pref.BranchName))
	if want != "" {
		for i := range college {
			have := strings.ToLower(course.Normalize(college[i].Course))
			if have == "" {
				continue
			}
			if strings.Contains(have, want) || strings.Contains(want, have) {
				return &college[i]
			}
		}
	}
	return nil
}

// CheckEligibility evaluates one preference against one round's cutoffs.
// Eligibility is strict: the candidate's rank must be numerically lower
// than the cutoff rank. A missing cutoff row is reported as data, never as
// an error.
func CheckEligibility(userRank int, pref PreferenceOption, prefNumber int, entries []CutoffEntry) EligibilityDetail {
	detail := EligibilityDetail{
		Preference:       pref,
		PreferenceNumber: prefNumber,
	}
	entry := FindCutoff(entries, pref)
	if entry == nil {
		detail.Reason = noCutoffReason
		return detail
	}

	cutoff := entry.CutoffRank
	detail.CutoffRank = &cutoff
	if cutoff > userRank {
		detail.IsEligible = true
		detail.Reason = fmt.Sprintf("Eligible: rank %d is better than the cutoff rank %d", userRank, cutoff)
	} else {
		detail.Reason = fmt.Sprintf("Not eligible: rank %d is at or beyond the cutoff rank %d", userRank, cutoff)
	}
	return detail
}
