package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/admitlab/allotsim/internal/report"
)

func main() {
	inputPath := flag.String("input", "", "Saved simulation envelope JSON or a raw markdown report")
	outputPath := flag.String("output", "", "Path to write the HTML document (defaults to stdout)")
	pdfPath := flag.String("pdf", "", "Optional path to also print a PDF (needs Chromium)")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing required -input")
	}

	in, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	markdown := extractMarkdown(in)
	if strings.TrimSpace(markdown) == "" {
		log.Fatal("input holds no report markdown")
	}

	html, err := report.RenderHTML(markdown)
	if err != nil {
		log.Fatalf("render html: %v", err)
	}
	if err := writeHTML(*outputPath, html); err != nil {
		log.Fatalf("write html: %v", err)
	}

	if *pdfPath != "" {
		pdf, err := report.NewPDFRenderer().Render(context.Background(), markdown)
		if err != nil {
			log.Fatalf("render pdf: %v", err)
		}
		if err := os.WriteFile(*pdfPath, pdf, 0o644); err != nil {
			log.Fatalf("write pdf: %v", err)
		}
		log.Printf("wrote %s (%d bytes)", *pdfPath, len(pdf))
	}
}

// extractMarkdown accepts either a saved envelope or a plain markdown
// document and returns the markdown.
func extractMarkdown(in []byte) string {
	var env report.Envelope
	if err := json.Unmarshal(in, &env); err == nil && strings.TrimSpace(env.ReportMarkdown) != "" {
		return env.ReportMarkdown
	}
	return string(in)
}

func writeHTML(outputPath, html string) error {
	if outputPath == "" {
		_, err := fmt.Print(html)
		return err
	}
	return os.WriteFile(outputPath, []byte(html), 0o644)
}
