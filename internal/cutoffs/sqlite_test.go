package cutoffs

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/admitlab/allotsim/internal/allotment"
)

func TestArchiveImportAndLoadAll(t *testing.T) {
	ctx := context.Background()
	archive, err := OpenArchive(filepath.Join(t.TempDir(), "cutoffs.db"))
	if err != nil {
		t.Fatalf("OpenArchive: %v", err)
	}
	defer archive.Close()

	n, err := archive.Import(ctx, sampleEntries())
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 2 {
		t.Fatalf("imported %d entries, want 2", n)
	}

	entries, err := archive.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("loaded %d entries, want 2", len(entries))
	}
	if entries[0].Year != "2023" || entries[1].Year != "2024" {
		t.Fatalf("entries must come back ordered by year, got %q then %q", entries[0].Year, entries[1].Year)
	}
	if entries[1].Institute != "RV College of Engineering" || entries[1].CutoffRank != 500 {
		t.Fatalf("round-trip mangled the entry: %+v", entries[1])
	}

	years, err := archive.Years(ctx)
	if err != nil {
		t.Fatalf("Years: %v", err)
	}
	if len(years) != 2 || years[0] != "2023" || years[1] != "2024" {
		t.Fatalf("Years = %v, want [2023 2024]", years)
	}
}

func TestArchiveReimportRefreshesRanks(t *testing.T) {
	ctx := context.Background()
	archive, err := OpenArchive(filepath.Join(t.TempDir(), "cutoffs.db"))
	if err != nil {
		t.Fatalf("OpenArchive: %v", err)
	}
	defer archive.Close()

	entries := sampleEntries()
	if _, err := archive.Import(ctx, entries); err != nil {
		t.Fatalf("first import: %v", err)
	}

	entries[0].CutoffRank = 650
	if _, err := archive.Import(ctx, entries); err != nil {
		t.Fatalf("re-import: %v", err)
	}

	stored, err := archive.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("re-import must not duplicate rows, got %d", len(stored))
	}
	var found bool
	for _, e := range stored {
		if e.InstituteCode == "E041" {
			found = true
			if e.CutoffRank != 650 {
				t.Fatalf("re-import must refresh the rank, got %d", e.CutoffRank)
			}
		}
	}
	if !found {
		t.Fatal("E041 row went missing")
	}
}

func TestArchiveImportValidates(t *testing.T) {
	ctx := context.Background()
	archive, err := OpenArchive(filepath.Join(t.TempDir(), "cutoffs.db"))
	if err != nil {
		t.Fatalf("OpenArchive: %v", err)
	}
	defer archive.Close()

	bad := []allotment.CutoffEntry{{
		Institute: "RVCE", Course: "CS", Category: "GM",
		CutoffRank: 0, Year: "2024", Round: "Round 1",
	}}
	_, err = archive.Import(ctx, bad)
	if err == nil {
		t.Fatal("invalid entry must fail the import")
	}
	if !strings.Contains(err.Error(), "entry 0") {
		t.Fatalf("error must name the bad index, got %v", err)
	}

	entries, err := archive.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("failed import must write nothing, got %d rows", len(entries))
	}
}

func TestStoreLoadArchive(t *testing.T) {
	ctx := context.Background()
	archive, err := OpenArchive(filepath.Join(t.TempDir(), "cutoffs.db"))
	if err != nil {
		t.Fatalf("OpenArchive: %v", err)
	}
	defer archive.Close()

	if _, err := archive.Import(ctx, sampleEntries()); err != nil {
		t.Fatalf("Import: %v", err)
	}

	s := testStore(nil)
	n, err := s.LoadArchive(ctx, archive)
	if err != nil {
		t.Fatalf("LoadArchive: %v", err)
	}
	if n != 2 {
		t.Fatalf("loaded %d entries, want 2", n)
	}
	if got := s.State(); got != StatePopulated {
		t.Fatalf("state = %q, want %q", got, StatePopulated)
	}
	if got := s.LoadedFrom(); got != archive.Path() {
		t.Fatalf("LoadedFrom = %q, want archive path %q", got, archive.Path())
	}
}
