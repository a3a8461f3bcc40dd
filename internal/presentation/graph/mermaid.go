package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/bayeux/pkg/domain"
)

// Overlay contains query context to visualize on the graph.
type Overlay struct {
	EvidenceVariables []string
	QueryVariable     string
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a network.
// Each variable is a node labeled with its name and domain size; edges run
// parent -> child. Overlay styling highlights evidence and query variables.
func GenerateMermaid(net *domain.Network, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, v := range net.Variables() {
		safeID := sanitizeMermaidID(v.Name())

		// Root variables as circles, conditioned variables as rectangles.
		opener, closer := "[", "]"
		if len(v.ParentNames()) == 0 {
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s (%d)\"%s\n",
			safeID, opener, v.Name(), len(v.Domain()), closer))

		for _, parent := range v.ParentNames() {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", sanitizeMermaidID(parent), safeID))
		}
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef evidence fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef query fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, name := range overlay.EvidenceVariables {
			safeID := sanitizeMermaidID(name)
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s evidence;\n", safeID))
			}
		}

		if overlay.QueryVariable != "" {
			sb.WriteString(fmt.Sprintf("    class %s query;\n", sanitizeMermaidID(overlay.QueryVariable)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
