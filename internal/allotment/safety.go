package allotment

// SafetyLevel is the heuristic classification of how comfortably a
// candidate clears a preference's historical cutoff.
type SafetyLevel string

const (
	SafetySafe     SafetyLevel = "safe"
	SafetyModerate SafetyLevel = "moderate"
	SafetyRisky    SafetyLevel = "risky"
	SafetyUnknown  SafetyLevel = "unknown"
)

// Fixed classification thresholds on the rank margin expressed as a
// percentage of the candidate's rank. These are heuristics, not a fitted
// probability model.
const (
	safeMarginPercent     = 20.0
	moderateMarginPercent = 5.0
)

// PreferenceSafety classifies one preference against all rounds of a
// year/category slice of the cutoff data. Unknown means no cutoff row could
// be resolved for the preference at all.
func PreferenceSafety(userRank int, pref PreferenceOption, entries []CutoffEntry, year, category string) SafetyLevel {
	var scoped []CutoffEntry
	for _, e := range entries {
		if e.Year == year && e.Category == category {
			scoped = append(scoped, e)
		}
	}
	entry := FindCutoff(scoped, pref)
	if entry == nil {
		return SafetyUnknown
	}

	margin := entry.CutoffRank - userRank
	if margin <= 0 {
		return SafetyRisky
	}
	marginPercent := float64(margin) / float64(userRank) * 100
	switch {
	case marginPercent > safeMarginPercent:
		return SafetySafe
	case marginPercent > moderateMarginPercent:
		return SafetyModerate
	default:
		return SafetyRisky
	}
}
