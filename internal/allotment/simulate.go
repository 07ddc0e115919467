package allotment

import (
	"regexp"
	"sort"
	"strconv"
)

// Rounds to simulate when the dataset carries no round labels for the
// requested year. Keeping a fixed list lets the simulation proceed and
// report "no cutoff data" per preference instead of producing nothing.
var defaultRounds = []string{"Round 1", "Round 2", "Round 3"}

var roundDigitsRe = regexp.MustCompile(`\d+`)

// SimulateRound evaluates every preference in priority order against one
// round's cutoff subset. An EligibilityDetail is recorded for every
// preference regardless of outcome; the allotment is the first eligible
// preference and is never reconsidered, mirroring real seat-allocation
// precedence.
func SimulateRound(userRank int, prefs []PreferenceOption, entries []CutoffEntry, round string) RoundResult {
	result := RoundResult{
		Round:              round,
		EligibilityDetails: make([]EligibilityDetail, 0, len(prefs)),
	}
	for i, pref := range byPriority(prefs) {
		detail := CheckEligibility(userRank, pref, i+1, entries)
		result.EligibilityDetails = append(result.EligibilityDetails, detail)
		if result.AllottedCollege != nil || !detail.IsEligible {
			continue
		}
		allotted := pref
		number := detail.PreferenceNumber
		cutoff := *detail.CutoffRank
		result.AllottedCollege = &allotted
		result.AllottedPreferenceNumber = &number
		result.CutoffRank = &cutoff
	}
	return result
}

// AvailableRounds lists the distinct round labels present for a year,
// naturally sorted by the digits embedded in each label so that "Round 2"
// precedes "Round 10". Labels without digits sort as 0. The sort is stable:
// equal ordinals keep dataset order.
func AvailableRounds(entries []CutoffEntry, year string) []string {
	seen := map[string]bool{}
	var rounds []string
	for _, e := range entries {
		if e.Year != year || seen[e.Round] {
			continue
		}
		seen[e.Round] = true
		rounds = append(rounds, e.Round)
	}
	sort.SliceStable(rounds, func(i, j int) bool {
		return roundOrdinal(rounds[i]) < roundOrdinal(rounds[j])
	})
	return rounds
}

func roundOrdinal(label string) int {
	digits := roundDigitsRe.FindString(label)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// Simulate runs the full multi-round allocation for one candidate. Rounds
// come from the dataset for the requested year; per round the cutoffs are
// restricted to the exact year/round/category before evaluation.
func Simulate(input SimulationInput, entries []CutoffEntry) SimulationResult {
	rounds := AvailableRounds(entries, input.Year)
	if len(rounds) == 0 {
		rounds = append([]string(nil), defaultRounds...)
	}

	results := make([]RoundResult, 0, len(rounds))
	for _, round := range rounds {
		scoped := filterEntries(entries, input.Year, round, input.Category)
		results = append(results, SimulateRound(input.UserRank, input.Preferences, scoped, round))
	}

	return SimulationResult{
		RoundResults: results,
		Summary:      Summarize(results),
		InputDetails: input,
	}
}

// Summarize rolls round results up into the cross-round summary. The best
// outcome is the allotment with the lowest preference number; on ties the
// first-evaluated round wins because the reduction only replaces the
// incumbent for a strictly lower number. ConsistentAllotment holds when
// every allotting round picked the same preference, compared by ID.
func Summarize(rounds []RoundResult) SimulationSummary {
	var summary SimulationSummary
	var first *PreferenceOption
	consistent := true
	for i := range rounds {
		rr := &rounds[i]
		if rr.AllottedCollege == nil {
			continue
		}
		summary.TotalRoundsWithAllotment++
		if first == nil {
			first = rr.AllottedCollege
		} else if rr.AllottedCollege.ID != first.ID {
			consistent = false
		}
		if summary.BestOutcome == nil || *rr.AllottedPreferenceNumber < summary.BestOutcome.PreferenceNumber {
			summary.BestOutcome = &BestOutcome{
				Round:            rr.Round,
				College:          rr.AllottedCollege.CollegeName,
				PreferenceNumber: *rr.AllottedPreferenceNumber,
			}
		}
	}
	if summary.TotalRoundsWithAllotment == 0 {
		return SimulationSummary{}
	}
	summary.ConsistentAllotment = consistent
	recommended := summary.BestOutcome.Round
	summary.RecommendedRound = &recommended
	return summary
}

func byPriority(prefs []PreferenceOption) []PreferenceOption {
	out := append([]PreferenceOption(nil), prefs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

func filterEntries(entries []CutoffEntry, year, round, category string) []CutoffEntry {
	var out []CutoffEntry
	for _, e := range entries {
		if e.Year == year && e.Round == round && e.Category == category {
			out = append(out, e)
		}
	}
	return out
}
