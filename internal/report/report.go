// Package report turns a simulation result into candidate-facing
// documents: a markdown report, its HTML rendering, and a printable PDF.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/admitlab/allotsim/internal/allotment"
	"github.com/admitlab/allotsim/internal/idgen"
)

// Envelope bundles a simulation result with its rendered markdown so the
// whole artifact travels as one JSON document.
type Envelope struct {
	SimulationID   string                     `json:"simulationId"`
	GeneratedAt    time.Time                  `json:"generatedAt"`
	Result         allotment.SimulationResult `json:"result"`
	ReportMarkdown string                     `json:"reportMarkdown"`
}

func BuildEnvelope(result allotment.SimulationResult, entries []allotment.CutoffEntry, now time.Time) Envelope {
	return Envelope{
		SimulationID:   idgen.New(),
		GeneratedAt:    now.UTC(),
		Result:         result,
		ReportMarkdown: Build(result, entries),
	}
}

// Build renders the simulation result as a GFM document: the preference
// list with safety levels, an eligibility table per round, and the
// cross-round summary.
func Build(result allotment.SimulationResult, entries []allotment.CutoffEntry) string {
	var b strings.Builder
	input := result.InputDetails

	fmt.Fprintf(&b, "# Allotment Simulation Report\n\n")
	fmt.Fprintf(&b, "- Rank: %d\n", input.UserRank)
	fmt.Fprintf(&b, "- Category: %s\n", sanitize(input.Category))
	fmt.Fprintf(&b, "- Year: %s\n", sanitize(input.Year))
	fmt.Fprintf(&b, "- Preferences: %d\n\n", len(input.Preferences))
	fmt.Fprintf(&b, "This simulation replays historical closing ranks against the preference "+
		"list below. A preference is eligible in a round when the candidate's rank is "+
		"strictly better (numerically lower) than that round's closing rank; the first "+
		"eligible preference takes the seat.\n\n")

	fmt.Fprintf(&b, "## Preference List\n\n")
	fmt.Fprintf(&b, "The safety column compares the rank against the requested year's cutoffs "+
		"across all rounds: `safe` means a margin above 20%% of the rank, `moderate` above 5%%, "+
		"`risky` anything thinner, and `unknown` that no cutoff data matched.\n\n")
	fmt.Fprintf(&b, "| # | College | Branch | Safety |\n")
	fmt.Fprintf(&b, "|---|---------|--------|--------|\n")
	for _, pref := range input.Preferences {
		safety := allotment.PreferenceSafety(input.UserRank, pref, entries, input.Year, input.Category)
		fmt.Fprintf(&b, "| %d | %s | %s | `%s` |\n",
			pref.Priority, sanitizeCell(collegeLabel(pref)), sanitizeCell(pref.BranchName), safety)
	}
	fmt.Fprintf(&b, "\n---\n\n")

	fmt.Fprintf(&b, "## Round Results\n\n")
	for _, round := range result.RoundResults {
		fmt.Fprintf(&b, "### %s\n\n", sanitize(round.Round))
		if round.AllottedCollege != nil {
			fmt.Fprintf(&b, "Allotted preference %d: **%s** — %s (closing rank %d).\n\n",
				*round.AllottedPreferenceNumber,
				sanitize(collegeLabel(*round.AllottedCollege)),
				sanitize(round.AllottedCollege.BranchName),
				*round.CutoffRank)
		} else {
			fmt.Fprintf(&b, "No seat allotted in this round.\n\n")
		}
		fmt.Fprintf(&b, "| # | College | Branch | Closing Rank | Eligible | Reason |\n")
		fmt.Fprintf(&b, "|---|---------|--------|--------------|----------|--------|\n")
		for _, d := range round.EligibilityDetails {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
				d.PreferenceNumber,
				sanitizeCell(collegeLabel(d.Preference)),
				sanitizeCell(d.Preference.BranchName),
				rankCell(d.CutoffRank),
				yesNo(d.IsEligible),
				sanitizeCell(d.Reason))
		}
		fmt.Fprintf(&b, "\n")
	}
	fmt.Fprintf(&b, "---\n\n")

	fmt.Fprintf(&b, "## Summary\n\n")
	s := result.Summary
	if s.BestOutcome != nil {
		fmt.Fprintf(&b, "- Best outcome: preference %d (%s) in %s\n",
			s.BestOutcome.PreferenceNumber, sanitize(s.BestOutcome.College), sanitize(s.BestOutcome.Round))
	} else {
		fmt.Fprintf(&b, "- Best outcome: none\n")
	}
	fmt.Fprintf(&b, "- Rounds with allotment: %d of %d\n", s.TotalRoundsWithAllotment, len(result.RoundResults))
	fmt.Fprintf(&b, "- Consistent across rounds: %s\n", yesNo(s.ConsistentAllotment))
	if s.RecommendedRound != nil {
		fmt.Fprintf(&b, "- Recommended round: %s\n", sanitize(*s.RecommendedRound))
	}

	return b.String()
}

func collegeLabel(pref allotment.PreferenceOption) string {
	if pref.CollegeCode == "" {
		return pref.CollegeName
	}
	return fmt.Sprintf("%s (%s)", pref.CollegeName, pref.CollegeCode)
}

func rankCell(rank *int) string {
	if rank == nil {
		return "—"
	}
	return fmt.Sprintf("%d", *rank)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func sanitize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}

// sanitizeCell prepares text for use inside a markdown table cell.
// It strips newlines (like sanitize) and escapes pipe characters that
// would break the table column structure.
func sanitizeCell(s string) string {
	s = sanitize(s)
	return strings.ReplaceAll(s, "|", "\\|")
}
