package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/bayeux/internal/logging"
	"github.com/aretw0/bayeux/pkg/domain"
	"github.com/aretw0/bayeux/pkg/ports"
)

// Engine answers posterior queries against an immutable network by
// enumeration: it materializes the full joint distribution once, then
// marginalizes it per query. Safe for concurrent use.
type Engine struct {
	net    *domain.Network
	logger *slog.Logger

	jointOnce sync.Once
	joint     *Joint
	jointErr  error
}

// Ensure both askers satisfy the port.
var (
	_ ports.Asker = (*Engine)(nil)
	_ ports.Asker = (*CachedAsker)(nil)
)

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine for the given network. The network must be
// fully constructed; it is treated as immutable from here on.
func NewEngine(net *domain.Network, opts ...EngineOption) *Engine {
	e := &Engine{
		net:    net,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Network returns the network the engine answers queries about.
func (e *Engine) Network() *domain.Network {
	return e.net
}

// Joint returns the full joint distribution, building it on first use. The
// build runs at most once per engine; concurrent first callers share it.
func (e *Engine) Joint() (*Joint, error) {
	e.jointOnce.Do(func() {
		e.logger.Debug("building joint distribution", "variables", e.net.Len())
		e.joint, e.jointErr = buildJoint(e.net)
		if e.jointErr == nil {
			e.logger.Debug("joint distribution ready", "rows", e.joint.Len())
		}
	})
	return e.joint, e.jointErr
}

// Ask computes the posterior distribution of the query variable given the
// evidence. Evidence variables must be network members; contradictory
// evidence (no joint row left with mass) fails with ErrZeroTotalProbability.
func (e *Engine) Ask(ctx context.Context, query string, evidence domain.Evidence) (domain.Distribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	queryVar, err := e.net.Lookup(query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	queryIdx, err := e.net.Index(queryVar)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	// Resolve evidence names to canonical positions up front so unknown
	// variables fail before the exponential work.
	evIdx := make(map[int]domain.Outcome, len(evidence))
	for name, value := range evidence {
		v, err := e.net.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("evidence: %w", err)
		}
		idx, err := e.net.Index(v)
		if err != nil {
			return nil, fmt.Errorf("evidence: %w", err)
		}
		evIdx[idx] = value
	}

	joint, err := e.Joint()
	if err != nil {
		return nil, err
	}

	totals := make(domain.Distribution)
	for i := 0; i < joint.Len(); i++ {
		row := joint.Row(i)
		matches := true
		for idx, want := range evIdx {
			if row[idx] != want {
				matches = false
				break
			}
		}
		if matches {
			totals[row[queryIdx]] += joint.Prob(i)
		}
	}

	posterior, err := totals.Normalize()
	if err != nil {
		return nil, fmt.Errorf("posterior of %q given %s: %w", query, formatEvidence(evidence), err)
	}
	return posterior, nil
}

// CacheKey derives the stable cache key for a query: network fingerprint,
// query name and sorted evidence pairs.
func CacheKey(net *domain.Network, query string, evidence domain.Evidence) string {
	pairs := make([]string, 0, len(evidence))
	for name, value := range evidence {
		pairs = append(pairs, name+"="+value.Key())
	}
	sort.Strings(pairs)
	return net.Fingerprint() + "|" + query + "|" + strings.Join(pairs, ",")
}

func formatEvidence(evidence domain.Evidence) string {
	if len(evidence) == 0 {
		return "{}"
	}
	pairs := make([]string, 0, len(evidence))
	for name, value := range evidence {
		pairs = append(pairs, fmt.Sprintf("%s=%s", name, value))
	}
	sort.Strings(pairs)
	return "{" + strings.Join(pairs, ", ") + "}"
}
