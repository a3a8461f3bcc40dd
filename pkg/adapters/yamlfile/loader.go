// Package yamlfile loads Bayesian network definitions from YAML documents.
//
// The document format mirrors the programmatic CPT grammar: a root variable
// carries a bare distribution (or the scalar shorthand "p"), a conditioned
// variable lists one row per parent-value combination:
//
//	name: sprinkler
//	variables:
//	  - name: rain
//	    p: 0.2
//	  - name: wet
//	    parents: [rain]
//	    rows:
//	      - given: [true]
//	        p: 0.9
//	      - given: [false]
//	        dist: {true: 0.1, false: 0.9}
package yamlfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/bayeux/internal/logging"
	"github.com/aretw0/bayeux/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.NetworkLoader for a YAML document on disk.
type Loader struct {
	path   string
	logger *slog.Logger
}

// Option configures the loader.
type Option func(*Loader)

// WithLogger sets a structured logger for authoring diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a loader for the given file path.
func NewLoader(path string, opts ...Option) *Loader {
	l := &Loader{
		path:   path,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and compiles the network definition.
func (l *Loader) Load(ctx context.Context) (*domain.Network, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read network definition: %w", err)
	}
	net, err := l.parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	return net, nil
}

// Document DTOs. mapstructure tags keep the YAML surface decoupled from the
// domain types, matching the frontmatter-style decoding of node metadata.

type networkDoc struct {
	Name      string        `mapstructure:"name"`
	Variables []variableDoc `mapstructure:"variables"`
}

type variableDoc struct {
	Name    string   `mapstructure:"name"`
	Parents []string `mapstructure:"parents"`

	// Root shorthand: a distribution (or scalar p) directly on the variable.
	P    *float64           `mapstructure:"p"`
	Dist map[string]float64 `mapstructure:"dist"`

	// General case: one row per parent-value combination.
	Rows []rowDoc `mapstructure:"rows"`
}

type rowDoc struct {
	Given []any              `mapstructure:"given"`
	P     *float64           `mapstructure:"p"`
	Dist  map[string]float64 `mapstructure:"dist"`
}

func (l *Loader) parse(data []byte) (*domain.Network, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed YAML: %w", err)
	}

	var doc networkDoc
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("malformed network document: %w", err)
	}

	if len(doc.Variables) == 0 {
		return nil, fmt.Errorf("network document defines no variables")
	}

	net := domain.NewNetwork()
	for _, v := range doc.Variables {
		table, err := l.compileVariable(v)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}
		if _, err := net.Add(v.Name, v.Parents, table); err != nil {
			return nil, err
		}
	}
	return net, nil
}

func (l *Loader) compileVariable(v variableDoc) (*domain.ConditionalTable, error) {
	rows := v.Rows
	if rows == nil {
		// Root shorthand: the variable's own p/dist as the single row.
		if v.P == nil && v.Dist == nil {
			return nil, fmt.Errorf("must define rows, dist or p")
		}
		rows = []rowDoc{{P: v.P, Dist: v.Dist}}
	} else if v.P != nil || v.Dist != nil {
		return nil, fmt.Errorf("rows and a top-level dist/p are mutually exclusive")
	}

	table := domain.NewConditionalTable(len(v.Parents))
	seen := make(map[string]bool)
	for _, r := range rows {
		row := make(domain.Row, 0, len(r.Given))
		for _, g := range r.Given {
			outcome, err := yamlOutcomeValue(g)
			if err != nil {
				return nil, fmt.Errorf("row value: %w", err)
			}
			row = append(row, outcome)
		}

		if seen[row.Key()] {
			// Last write wins, matching dictionary construction semantics,
			// but authoring bugs deserve a trail.
			l.logger.Warn("duplicate CPT row, last value retained",
				"variable", v.Name, "row", row.String())
		}
		seen[row.Key()] = true

		dist, err := compileDist(r.P, r.Dist)
		if err != nil {
			return nil, fmt.Errorf("row %s: %w", row, err)
		}
		if err := table.Put(row, dist); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func compileDist(p *float64, entries map[string]float64) (domain.Distribution, error) {
	if p != nil && entries != nil {
		return nil, fmt.Errorf("dist and p are mutually exclusive")
	}
	if p != nil {
		return domain.NewBinary(*p), nil
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("empty distribution")
	}
	dist := make(domain.Distribution, len(entries))
	for k, w := range entries {
		dist[yamlOutcomeKey(k)] = w
	}
	return dist, nil
}

// yamlOutcomeValue converts a YAML sequence element into an Outcome.
// YAML booleans stay booleans; everything else must be a string.
func yamlOutcomeValue(v any) (domain.Outcome, error) {
	switch t := v.(type) {
	case bool:
		return domain.Bool(t), nil
	case string:
		return yamlOutcomeKey(t), nil
	}
	return domain.Outcome{}, fmt.Errorf("unsupported outcome value %v (%T)", v, v)
}

// yamlOutcomeKey converts a YAML mapping key into an Outcome. Mapping keys
// arrive stringified, so "true"/"false" are restored to booleans; this keeps
// `true: 0.9` and `given: [true]` referring to the same outcome.
func yamlOutcomeKey(s string) domain.Outcome {
	switch s {
	case "true":
		return domain.True
	case "false":
		return domain.False
	}
	return domain.String(s)
}
