package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/admitlab/allotsim/internal/allotment"
	"github.com/admitlab/allotsim/internal/course"
	"github.com/admitlab/allotsim/internal/cutoffs"
)

func main() {
	datasetPath := flag.String("dataset", "", "Cutoff dataset: JSON document or sqlite archive (.db)")
	college := flag.String("college", "", "Only courses of this college (code or name fragment)")
	variants := flag.Bool("variants", false, "Also list the raw spellings behind each course")
	flag.Parse()

	if *datasetPath == "" {
		log.Fatal("missing required -dataset")
	}

	entries, err := loadEntries(*datasetPath)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}
	if *college != "" {
		entries = filterCollege(entries, *college)
	}

	var raw []string
	for _, e := range entries {
		raw = append(raw, e.Course)
	}
	unique := course.Unique(raw)

	counts := map[string]int{}
	spellings := map[string][]string{}
	seenSpelling := map[string]bool{}
	for _, s := range raw {
		key := course.CanonicalKey(s)
		counts[key]++
		if !seenSpelling[key+"\x1f"+s] {
			seenSpelling[key+"\x1f"+s] = true
			spellings[key] = append(spellings[key], s)
		}
	}

	fmt.Printf("%d courses across %d entries\n\n", len(unique), len(raw))
	for _, name := range unique {
		key := course.CanonicalKey(name)
		fmt.Printf("%s (%d entries)\n", name, counts[key])
		if *variants {
			for _, s := range spellings[key] {
				fmt.Printf("  %s\n", s)
			}
		}
	}
}

func loadEntries(path string) ([]allotment.CutoffEntry, error) {
	if strings.HasSuffix(path, ".db") {
		archive, err := cutoffs.OpenArchive(path)
		if err != nil {
			return nil, err
		}
		defer archive.Close()
		return archive.LoadAll(context.Background())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return cutoffs.ParseEntries(data)
}

func filterCollege(entries []allotment.CutoffEntry, needle string) []allotment.CutoffEntry {
	lower := strings.ToLower(needle)
	var out []allotment.CutoffEntry
	for _, e := range entries {
		if strings.EqualFold(e.InstituteCode, needle) || strings.Contains(strings.ToLower(e.Institute), lower) {
			out = append(out, e)
		}
	}
	return out
}
