package tui

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aretw0/bayeux/pkg/domain"
	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// RenderPosterior renders a posterior distribution as a markdown report
// (probability table plus bar gauges) styled for the terminal.
func RenderPosterior(query string, evidence domain.Evidence, posterior domain.Distribution) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(terminalWidth()),
	)
	if err != nil {
		return "", err
	}
	return r.Render(posteriorMarkdown(query, evidence, posterior))
}

// posteriorMarkdown builds the raw markdown; split out for testability.
func posteriorMarkdown(query string, evidence domain.Evidence, posterior domain.Distribution) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# P(%s%s)\n\n", query, evidenceSuffix(evidence))
	sb.WriteString("| Outcome | Probability | |\n")
	sb.WriteString("|---|---|---|\n")
	for _, o := range posterior.Outcomes() {
		p := posterior[o]
		fmt.Fprintf(&sb, "| %s | %.4f | `%s` |\n", o, p, gauge(p))
	}
	return sb.String()
}

func evidenceSuffix(evidence domain.Evidence) string {
	if len(evidence) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(evidence))
	for _, name := range sortedNames(evidence) {
		pairs = append(pairs, fmt.Sprintf("%s=%s", name, evidence[name]))
	}
	return " | " + strings.Join(pairs, ", ")
}

func sortedNames(evidence domain.Evidence) []string {
	names := make([]string, 0, len(evidence))
	for name := range evidence {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const gaugeWidth = 20

func gauge(p float64) string {
	filled := int(p*gaugeWidth + 0.5)
	if filled > gaugeWidth {
		filled = gaugeWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled)
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
