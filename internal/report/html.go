package report

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const reportCSS = `body{font-family:Georgia,'Times New Roman',serif;color:#1c1917;background:#fff;margin:0;padding:0.6rem;}
.report-wrap{max-width:1000px;margin:0 auto;border-left:3px solid #1e3a8a;border-right:3px solid #1e3a8a;padding:0 0.65rem;}
.report-html h1{font-size:1.6rem;border-bottom:2px solid #1e3a8a;padding-bottom:0.3rem;}
.report-html h2{font-size:1.2rem;margin-top:1.4rem;}
.report-html h3{font-size:1rem;margin-top:1.1rem;}
.report-html a{color:#1d4ed8;text-decoration:underline;}
.report-html code{background:#f1f5f9;padding:0.1rem 0.25rem;border-radius:3px;font-size:0.85em;}
.report-html table{width:100%;border-collapse:collapse;border:1px solid #a8a29e;font-size:0.8rem;}
.report-html th,.report-html td{border:1px solid #a8a29e;padding:0.35rem 0.45rem;text-align:left;vertical-align:top;}
.report-html thead th{background:#f1f5f9;font-weight:700;}
.report-html hr{border:0;border-top:1px solid #d6d3d1;margin:1.2rem 0;}
html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;}
@media print{@page{size:auto;margin:12mm;}body{padding:0;}.report-wrap{max-width:none;}}`

// RenderHTML converts report markdown into a standalone HTML document with
// inline print-friendly styling. Tables come through the GFM extension.
func RenderHTML(markdown string) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return "<!doctype html><html><head><meta charset='utf-8'><title>Allotment Simulation Report</title>" +
		"<style>" + reportCSS + "</style></head><body>" +
		"<div class='report-wrap'><div class='report-html'>" + content.String() + "</div></div>" +
		"</body></html>", nil
}
