package cutoffs

import (
	"strings"
	"testing"
)

func TestParseEntriesValid(t *testing.T) {
	data := []byte(`[
		{"institute": "RV College of Engineering", "institute_code": "E041", "course": "CS COMPUTERS",
		 "category": "GM", "cutoff_rank": 500, "year": "2024", "round": "Round 1"}
	]`)
	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.InstituteCode != "E041" || e.CutoffRank != 500 || e.Round != "Round 1" {
		t.Fatalf("unexpected entry %+v", e)
	}
}

func TestParseEntriesEmptyArray(t *testing.T) {
	entries, err := ParseEntries([]byte(`[]`))
	if err != nil {
		t.Fatalf("empty array must parse, got %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("got %d entries, want 0", len(entries))
	}
}

func TestParseEntriesMalformed(t *testing.T) {
	if _, err := ParseEntries([]byte(`{not json`)); err == nil {
		t.Fatal("malformed document must fail")
	}
	if _, err := ParseEntries([]byte(`{"institute": "x"}`)); err == nil {
		t.Fatal("a non-array document must fail")
	}
}

func TestParseEntriesRejectsBadRows(t *testing.T) {
	valid := `{"institute": "RVCE", "institute_code": "E041", "course": "CS", "category": "GM", "cutoff_rank": 500, "year": "2024", "round": "Round 1"}`
	tests := []struct {
		name    string
		row     string
		wantSub string
	}{
		{"missing institute", `{"course": "CS", "category": "GM", "cutoff_rank": 1, "year": "2024", "round": "Round 1"}`, "institute is required"},
		{"missing course", `{"institute": "RVCE", "category": "GM", "cutoff_rank": 1, "year": "2024", "round": "Round 1"}`, "course is required"},
		{"missing category", `{"institute": "RVCE", "course": "CS", "cutoff_rank": 1, "year": "2024", "round": "Round 1"}`, "category is required"},
		{"zero rank", `{"institute": "RVCE", "course": "CS", "category": "GM", "cutoff_rank": 0, "year": "2024", "round": "Round 1"}`, "cutoff_rank must be positive"},
		{"negative rank", `{"institute": "RVCE", "course": "CS", "category": "GM", "cutoff_rank": -3, "year": "2024", "round": "Round 1"}`, "cutoff_rank must be positive"},
		{"missing year", `{"institute": "RVCE", "course": "CS", "category": "GM", "cutoff_rank": 1, "round": "Round 1"}`, "year is required"},
		{"missing round", `{"institute": "RVCE", "course": "CS", "category": "GM", "cutoff_rank": 1, "year": "2024"}`, "round is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEntries([]byte(`[` + valid + `,` + tt.row + `]`))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), "entry 1") {
				t.Fatalf("error must name the bad index, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Fatalf("error %v must contain %q", err, tt.wantSub)
			}
		})
	}
}
