package domain

import "errors"

// ErrUnknownVariable is returned when a variable name has no member in the network.
var ErrUnknownVariable = errors.New("unknown variable")

// ErrMissingConditionalRow is returned when a CPT lookup hits a parent-value
// combination that was never supplied. The engine never interpolates or
// defaults missing rows: an incomplete CPT is a configuration error.
var ErrMissingConditionalRow = errors.New("missing conditional row")

// ErrVariableNotInNetwork is returned when a Variable from one network is used
// to index into a different network.
var ErrVariableNotInNetwork = errors.New("variable not in network")

// ErrZeroTotalProbability is returned when normalization is attempted on a
// table whose values sum to zero, e.g. under contradictory evidence.
var ErrZeroTotalProbability = errors.New("zero total probability")

// ErrInvalidProbability is returned when a value outside [0,1] is detected.
var ErrInvalidProbability = errors.New("invalid probability value")
