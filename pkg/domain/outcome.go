package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

type outcomeKind uint8

const (
	outcomeInvalid outcomeKind = iota
	outcomeBool
	outcomeString
)

// Outcome is a single value a variable can take.
// It is a closed tagged type (bool or string) so that domains stay small,
// comparable and usable as map keys.
type Outcome struct {
	kind outcomeKind
	b    bool
	s    string
}

// Bool returns a boolean outcome.
func Bool(v bool) Outcome {
	return Outcome{kind: outcomeBool, b: v}
}

// String returns a string outcome.
func String(s string) Outcome {
	return Outcome{kind: outcomeString, s: s}
}

// True and False are the outcomes of the binary shorthand.
var (
	True  = Bool(true)
	False = Bool(false)
)

// IsZero reports whether the outcome is the uninitialized value.
func (o Outcome) IsZero() bool {
	return o.kind == outcomeInvalid
}

// Key returns a stable, unambiguous encoding used for map keys and cache keys.
func (o Outcome) Key() string {
	switch o.kind {
	case outcomeBool:
		if o.b {
			return "b:true"
		}
		return "b:false"
	case outcomeString:
		return "s:" + o.s
	}
	return ""
}

// ParseKey decodes an outcome produced by Key.
func ParseKey(key string) (Outcome, error) {
	switch {
	case key == "b:true":
		return True, nil
	case key == "b:false":
		return False, nil
	case strings.HasPrefix(key, "s:"):
		return String(key[2:]), nil
	}
	return Outcome{}, fmt.Errorf("malformed outcome key %q", key)
}

// String returns the display form ("true", "false" or the raw string).
func (o Outcome) String() string {
	switch o.kind {
	case outcomeBool:
		if o.b {
			return "true"
		}
		return "false"
	case outcomeString:
		return o.s
	}
	return "<invalid>"
}

// Less defines a total order: booleans before strings, false before true,
// strings lexicographically. Used for deterministic iteration.
func (o Outcome) Less(p Outcome) bool {
	if o.kind != p.kind {
		return o.kind < p.kind
	}
	if o.kind == outcomeBool {
		return !o.b && p.b
	}
	return o.s < p.s
}

// MarshalJSON encodes booleans as JSON booleans and strings as JSON strings.
func (o Outcome) MarshalJSON() ([]byte, error) {
	switch o.kind {
	case outcomeBool:
		return json.Marshal(o.b)
	case outcomeString:
		return json.Marshal(o.s)
	}
	return nil, fmt.Errorf("cannot marshal invalid outcome")
}

// UnmarshalJSON accepts a JSON boolean or string.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*o = Bool(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*o = String(s)
		return nil
	}
	return fmt.Errorf("outcome must be a boolean or a string, got %s", data)
}

// OutcomeOf coerces a dynamically typed authoring value into an Outcome.
// Booleans and strings map directly; other scalars are rejected.
func OutcomeOf(v any) (Outcome, error) {
	switch t := v.(type) {
	case Outcome:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	}
	return Outcome{}, fmt.Errorf("unsupported outcome value %v (%T)", v, v)
}

// rowSeparator keeps encoded row keys unambiguous for outcome values that
// contain ordinary punctuation.
const rowSeparator = "\x1f"

// Row is an ordered tuple of outcome values, one per parent (or one per
// network variable for full joint assignments).
type Row []Outcome

// Key returns a stable encoding of the row for map lookup.
func (r Row) Key() string {
	if len(r) == 0 {
		return ""
	}
	parts := make([]string, len(r))
	for i, o := range r {
		parts[i] = o.Key()
	}
	return strings.Join(parts, rowSeparator)
}

// String returns a human-readable "(a, b, c)" form.
func (r Row) String() string {
	parts := make([]string, len(r))
	for i, o := range r {
		parts[i] = o.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}
