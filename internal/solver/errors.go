package solver

import "errors"

// Input errors. They are wrapped with details; match them with errors.Is.
var (
	ErrInvalidWord       = errors.New("invalid word")
	ErrLengthMismatch    = errors.New("word length mismatch")
	ErrMalformedFeedback = errors.New("malformed feedback code")
	ErrUnknownScorer     = errors.New("unknown scorer")
)
