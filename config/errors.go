package config

import "errors"

// Sentinel errors for configuration decoding and validation. Callers MUST
// branch on these with errors.Is; messages are not part of the contract.
var (
	// ErrInvalidWeights indicates the scoring weights fall outside [0,1] or
	// do not sum to 1 within the documented ±0.01 tolerance.
	ErrInvalidWeights = errors.New("config: scoring weights invalid")

	// ErrNilPattern indicates a BlockList or AllowList entry is empty.
	ErrNilPattern = errors.New("config: filter pattern list contains an empty entry")

	// ErrUnknownField indicates the YAML document contains a key this
	// package does not recognise.
	ErrUnknownField = errors.New("config: unknown configuration property")

	// ErrDecode wraps an underlying YAML syntax error.
	ErrDecode = errors.New("config: failed to decode configuration")
)
