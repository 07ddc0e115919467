package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/admitlab/allotsim/internal/allotment"
	"github.com/admitlab/allotsim/internal/cutoffs"
	"github.com/admitlab/allotsim/internal/profile"
	"github.com/admitlab/allotsim/internal/report"
	"github.com/admitlab/allotsim/internal/tracing"
)

const serviceVersion = "dev"

func main() {
	datasetPath := flag.String("dataset", "", "Cutoff dataset: JSON document or sqlite archive (.db)")
	profilePath := flag.String("profile", "", "Candidate profile YAML")
	format := flag.String("format", "markdown", "Output format: json, markdown, or html")
	outputPath := flag.String("output", "", "Path to write the report (defaults to stdout)")
	tracePath := flag.String("trace", "", "Write tracing spans to this file")
	otlpEndpoint := flag.String("otlp", "", "Export tracing spans to this OTLP/HTTP endpoint")
	flag.Parse()

	if *datasetPath == "" {
		log.Fatal("missing required -dataset")
	}
	if *profilePath == "" {
		log.Fatal("missing required -profile")
	}

	ctx := context.Background()
	switch {
	case *tracePath != "":
		if err := tracing.Init("allotsim", serviceVersion, *tracePath); err != nil {
			log.Fatalf("init tracing: %v", err)
		}
	case *otlpEndpoint != "":
		if err := tracing.InitOTLP(ctx, "allotsim", serviceVersion, *otlpEndpoint); err != nil {
			log.Fatalf("init tracing: %v", err)
		}
	}

	logger := log.New(os.Stderr, "simulate ", log.LstdFlags)
	store := cutoffs.NewStore(cutoffs.Config{Logger: logger})

	loadCtx, loadSpan := tracing.StartSpan(ctx, "load-dataset")
	n, err := loadDataset(loadCtx, store, *datasetPath)
	tracing.EndSpan(loadSpan, err)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}
	logger.Printf("dataset loaded entries=%d years=%v categories=%v", n, store.Years(), store.Categories())

	prof, err := profile.Load(ctx, nil, resolveURL(*profilePath))
	if err != nil {
		log.Fatalf("load profile: %v", err)
	}

	_, simSpan := tracing.StartSpan(ctx, "simulate")
	simSpan.WithAttributes(map[string]string{
		"year":     prof.Year,
		"category": prof.Category,
	})
	result := allotment.Simulate(prof.Input(), store.Entries())
	tracing.EndSpan(simSpan, nil)

	_, renderSpan := tracing.StartSpan(ctx, "render")
	env := report.BuildEnvelope(result, store.Entries(), time.Now())
	out, err := renderOutput(env, *format)
	tracing.EndSpan(renderSpan, err)
	if err != nil {
		log.Fatalf("render %s: %v", *format, err)
	}

	if err := writeOutput(*outputPath, out); err != nil {
		log.Fatalf("write output: %v", err)
	}
	logger.Printf("simulation complete id=%s rounds=%d allotted=%d",
		env.SimulationID, len(result.RoundResults), result.Summary.TotalRoundsWithAllotment)
}

func loadDataset(ctx context.Context, store *cutoffs.Store, path string) (int, error) {
	if strings.HasSuffix(path, ".db") {
		archive, err := cutoffs.OpenArchive(path)
		if err != nil {
			return 0, err
		}
		defer archive.Close()
		return store.LoadArchive(ctx, archive)
	}
	return store.LoadJSON(ctx, resolveURL(path))
}

// resolveURL leaves scheme-qualified URLs alone and turns bare paths into
// absolute ones so the afs file scheme resolves them predictably.
func resolveURL(path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func renderOutput(env report.Envelope, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(env, "", "  ")
	case "markdown":
		return []byte(env.ReportMarkdown), nil
	case "html":
		html, err := report.RenderHTML(env.ReportMarkdown)
		if err != nil {
			return nil, err
		}
		return []byte(html), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want json, markdown, or html)", format)
	}
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
