package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/admitlab/allotsim/internal/cutoffs"
)

func main() {
	inputPath := flag.String("input", "", "Path to a cutoff dataset JSON document")
	dbPath := flag.String("db", "", "Path to the sqlite cutoff archive (created if missing)")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing required -input")
	}
	if *dbPath == "" {
		log.Fatal("missing required -db")
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	entries, err := cutoffs.ParseEntries(data)
	if err != nil {
		log.Fatalf("parse input: %v", err)
	}

	archive, err := cutoffs.OpenArchive(*dbPath)
	if err != nil {
		log.Fatalf("open archive: %v", err)
	}
	defer archive.Close()

	ctx := context.Background()
	n, err := archive.Import(ctx, entries)
	if err != nil {
		log.Fatalf("import: %v", err)
	}
	years, err := archive.Years(ctx)
	if err != nil {
		log.Fatalf("list years: %v", err)
	}
	log.Printf("imported %d entries into %s (years: %v)", n, *dbPath, years)
}
