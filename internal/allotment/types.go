// Package allotment simulates multi-round, rank-based seat allocation
// against historical cutoff data. Every function is a pure computation
// over its arguments. None of them return errors: missing data and failed
// matches travel as nil fields plus a human-readable reason, so displays
// can always show partial outcomes.
package allotment

// CutoffEntry is one immutable historical fact: the worst (highest-numbered)
// rank admitted for a college/program/category in one round of one year.
// Records come from external extraction and are consumed read-only. Year,
// round and category are free-form labels compared by exact string equality.
type CutoffEntry struct {
	Institute     string `json:"institute"`
	InstituteCode string `json:"institute_code"`
	Course        string `json:"course"`
	Category      string `json:"category"`
	CutoffRank    int    `json:"cutoff_rank"`
	Year          string `json:"year"`
	Round         string `json:"round"`
}

// PreferenceOption is one line of a candidate's ranked choice list.
// Priority is 1-based; a lower number means a more preferred choice.
type PreferenceOption struct {
	ID          string `json:"id"`
	CollegeCode string `json:"collegeCode"`
	BranchCode  string `json:"branchCode"`
	CollegeName string `json:"collegeName"`
	BranchName  string `json:"branchName"`
	Priority    int    `json:"priority"`
}

// EligibilityDetail records the outcome of testing one preference against
// one round's cutoffs. CutoffRank is nil when no cutoff row matched.
type EligibilityDetail struct {
	Preference       PreferenceOption `json:"preference"`
	PreferenceNumber int              `json:"preferenceNumber"`
	CutoffRank       *int             `json:"cutoffRank"`
	IsEligible       bool             `json:"isEligible"`
	Reason           string           `json:"reason"`
}

// RoundResult is one round's outcome. At most one preference is allotted:
// the first eligible one in priority order. EligibilityDetails always holds
// one entry per preference for diagnostic display.
type RoundResult struct {
	Round                    string              `json:"round"`
	AllottedCollege          *PreferenceOption   `json:"allottedCollege"`
	AllottedPreferenceNumber *int                `json:"allottedPreferenceNumber"`
	CutoffRank               *int                `json:"cutoffRank"`
	EligibilityDetails       []EligibilityDetail `json:"eligibilityDetails"`
}

// BestOutcome identifies the round that allotted the candidate's
// most-preferred choice across the whole simulation.
type BestOutcome struct {
	Round            string `json:"round"`
	College          string `json:"college"`
	PreferenceNumber int    `json:"preferenceNumber"`
}

// SimulationSummary is the cross-round rollup. All fields stay at their
// zero values when no round produced an allotment.
type SimulationSummary struct {
	BestOutcome              *BestOutcome `json:"bestOutcome"`
	TotalRoundsWithAllotment int          `json:"totalRoundsWithAllotment"`
	ConsistentAllotment      bool         `json:"consistentAllotment"`
	RecommendedRound         *string      `json:"recommendedRound"`
}

// SimulationInput is everything the candidate supplies.
type SimulationInput struct {
	UserRank    int                `json:"userRank"`
	Category    string             `json:"category"`
	Year        string             `json:"year"`
	Preferences []PreferenceOption `json:"preferences"`
}

// SimulationResult is plain data suitable for direct serialization to any
// presentation layer.
type SimulationResult struct {
	RoundResults []RoundResult     `json:"roundResults"`
	Summary      SimulationSummary `json:"summary"`
	InputDetails SimulationInput   `json:"inputDetails"`
}
