package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/bayeux/internal/logging"
	"github.com/aretw0/bayeux/pkg/domain"
)

// createLogger builds the application logger honoring the debug flag.
func createLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

// ParseEvidence converts "variable=value" pairs from the command line into an
// evidence map. The values "true" and "false" become boolean outcomes;
// everything else stays a string.
func ParseEvidence(pairs []string) (domain.Evidence, error) {
	evidence := make(domain.Evidence, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" || value == "" {
			return nil, fmt.Errorf("malformed evidence %q, want variable=value", pair)
		}
		switch value {
		case "true":
			evidence[name] = domain.True
		case "false":
			evidence[name] = domain.False
		default:
			evidence[name] = domain.String(value)
		}
	}
	return evidence, nil
}
