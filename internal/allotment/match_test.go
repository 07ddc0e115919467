package allotment

import (
	"strings"
	"testing"
)

// Builders for the two colleges most fixtures use. Codes and names follow
// the dataset conventions: short institute codes, display names, raw course
// strings with a department-code prefix.
func rvceCutoff(courseName string, rank int, year, round string) CutoffEntry {
	return CutoffEntry{
		Institute:     "RV College of Engineering",
		InstituteCode: "E041",
		Course:        courseName,
		Category:      "GM",
		CutoffRank:    rank,
		Year:          year,
		Round:         round,
	}
}

func msritCutoff(courseName string, rank int, year, round string) CutoffEntry {
	return CutoffEntry{
		Institute:     "M S Ramaiah Institute of Technology",
		InstituteCode: "E056",
		Course:        courseName,
		Category:      "GM",
		CutoffRank:    rank,
		Year:          year,
		Round:         round,
	}
}

func csPreference(id string, priority int, collegeCode, collegeName string) PreferenceOption {
	return PreferenceOption{
		ID:          id,
		CollegeCode: collegeCode,
		BranchCode:  "CS",
		CollegeName: collegeName,
		BranchName:  "Computer Science and Engineering",
		Priority:    priority,
	}
}

func TestFindCutoffNoCrossCollegeFallback(t *testing.T) {
	entries := []CutoffEntry{msritCutoff("CS COMPUTERS", 1500, "2024", "Round 1")}
	pref := csPreference("p1", 1, "E041", "RV College of Engineering")
	if got := FindCutoff(entries, pref); got != nil {
		t.Fatalf("expected nil for a college with no rows, got %+v", got)
	}
}

func TestFindCutoffCollegeCodeCaseInsensitive(t *testing.T) {
	entries := []CutoffEntry{rvceCutoff("CS COMPUTERS", 500, "2024", "Round 1")}
	pref := csPreference("p1", 1, "e041", "RV College of Engineering")
	got := FindCutoff(entries, pref)
	if got == nil || got.CutoffRank != 500 {
		t.Fatalf("case-insensitive college match failed: %+v", got)
	}
}

func TestFindCutoffPrefersDepartmentCode(t *testing.T) {
	entries := []CutoffEntry{
		rvceCutoff("EC ELECTRONICS & COMMUNICATION ENGG.", 300, "2024", "Round 1"),
		rvceCutoff("CS COMPUTERS", 500, "2024", "Round 1"),
	}
	pref := csPreference("p1", 1, "E041", "RV College of Engineering")
	got := FindCutoff(entries, pref)
	if got == nil || got.CutoffRank != 500 {
		t.Fatalf("expected the CS row despite the EC row listed first, got %+v", got)
	}
}

func TestFindCutoffCanonicalKeyWithoutCode(t *testing.T) {
	entries := []CutoffEntry{
		rvceCutoff("EC ELECTRONICS & COMMUNICATION ENGG.", 300, "2024", "Round 1"),
		rvceCutoff("COMPUTER SCIENCE AND ENGINEERING", 500, "2024", "Round 1"),
	}
	pref := PreferenceOption{
		ID:          "p1",
		CollegeCode: "E041",
		CollegeName: "RV College of Engineering",
		BranchName:  "Computer Science & Engg",
		Priority:    1,
	}
	got := FindCutoff(entries, pref)
	if got == nil || got.CutoffRank != 500 {
		t.Fatalf("expected canonical-key match on the CS row, got %+v", got)
	}
}

func TestFindCutoffSubstringFallback(t *testing.T) {
	entries := []CutoffEntry{
		rvceCutoff("MARINE ENGINEERING AND NAVAL ARCHITECTURE", 900, "2024", "Round 1"),
	}
	pref := PreferenceOption{
		ID:          "p1",
		CollegeCode: "E041",
		CollegeName: "RV College of Engineering",
		BranchName:  "Naval Architecture",
		Priority:    1,
	}
	got := FindCutoff(entries, pref)
	if got == nil || got.CutoffRank != 900 {
		t.Fatalf("expected substring containment to resolve the row, got %+v", got)
	}
}

func TestFindCutoffNoMatchReturnsNil(t *testing.T) {
	entries := []CutoffEntry{rvceCutoff("CIVIL ENGINEERING", 900, "2024", "Round 1")}
	pref := PreferenceOption{
		ID:          "p1",
		CollegeCode: "E041",
		CollegeName: "RV College of Engineering",
		BranchName:  "Architecture",
		Priority:    1,
	}
	if got := FindCutoff(entries, pref); got != nil {
		t.Fatalf("expected nil for an unrelated branch, got %+v", got)
	}
}

func TestCheckEligibilityNoData(t *testing.T) {
	entries := []CutoffEntry{rvceCutoff("CS COMPUTERS", 500, "2024", "Round 1")}
	pref := csPreference("p1", 1, "E999", "Nonexistent College")
	detail := CheckEligibility(1000, pref, 1, entries)
	if detail.IsEligible {
		t.Fatal("nonexistent college must not be eligible")
	}
	if detail.CutoffRank != nil {
		t.Fatalf("cutoffRank must be nil, got %d", *detail.CutoffRank)
	}
	if !strings.Contains(detail.Reason, "No cutoff data") {
		t.Fatalf("reason %q must mention missing cutoff data", detail.Reason)
	}
}

func TestCheckEligibilityStrictInequality(t *testing.T) {
	entries := []CutoffEntry{rvceCutoff("CS COMPUTERS", 500, "2024", "Round 1")}
	pref := csPreference("p1", 1, "E041", "RV College of Engineering")

	// 499 clears a cutoff of 500; 500 and 501 do not.
	cases := []struct {
		rank     int
		eligible bool
	}{
		{499, true},
		{500, false},
		{501, false},
	}
	for _, c := range cases {
		detail := CheckEligibility(c.rank, pref, 1, entries)
		if detail.IsEligible != c.eligible {
			t.Fatalf("rank %d: eligible = %v, want %v", c.rank, detail.IsEligible, c.eligible)
		}
		if detail.CutoffRank == nil || *detail.CutoffRank != 500 {
			t.Fatalf("rank %d: cutoffRank not reported", c.rank)
		}
		if !strings.Contains(detail.Reason, "500") {
			t.Fatalf("rank %d: reason %q must cite the cutoff rank", c.rank, detail.Reason)
		}
	}
}

// Worsening the rank can only switch eligibility from true to false, never
// back.
func TestCheckEligibilityMonotonicInRank(t *testing.T) {
	entries := []CutoffEntry{rvceCutoff("CS COMPUTERS", 750, "2024", "Round 1")}
	pref := csPreference("p1", 1, "E041", "RV College of Engineering")

	prev := true
	for rank := 1; rank <= 1500; rank += 50 {
		got := CheckEligibility(rank, pref, 1, entries).IsEligible
		if got && !prev {
			t.Fatalf("eligibility regained at rank %d after being lost", rank)
		}
		prev = got
	}
}
