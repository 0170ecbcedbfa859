// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/matchmyjd/engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for match reports
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate on rune boundaries so multi-byte characters survive.
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of a match result,
// covering whichever breakdown the producing policy filled in.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score: %.1f / 100\n", result.OverallScore))

	if result.MustHave != nil {
		p.writeMustHave(&sb, result.MustHave)
	}
	if len(result.Categories) > 0 {
		p.writeCategories(&sb, result.Categories)
	}

	writeList(&sb, "Strengths", result.Strengths)
	writeList(&sb, "Gaps", result.Gaps)
	writeList(&sb, "Suggestions", result.Suggestions)

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) writeMustHave(sb *strings.Builder, mh *types.MustHaveBreakdown) {
	sb.WriteString(fmt.Sprintf("Must-have coverage: %.0f%%\n", mh.Coverage*100))
	sb.WriteString(fmt.Sprintf("Semantic score:     %.3f\n", mh.SemanticScore))
	if mh.NiceBonus > 0 {
		sb.WriteString(fmt.Sprintf("Nice-to-have bonus: +%.2f\n", mh.NiceBonus))
	}
	if mh.EvidenceBoost > 1 {
		sb.WriteString(fmt.Sprintf("Evidence boost:     x%.2f\n", mh.EvidenceBoost))
	}
	sb.WriteString("\n")
}

func (p *Printer) writeCategories(sb *strings.Builder, categories map[string]types.CategoryResult) {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	sb.WriteString("Categories:\n")
	for _, name := range names {
		res := categories[name]
		sb.WriteString(fmt.Sprintf("  %-22s coverage %.0f%%  (%d matched, %d missing)\n",
			name, res.Coverage*100, len(res.Matched), len(res.Missing)))
	}
	sb.WriteString("\n")
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
