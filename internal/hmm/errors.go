package hmm

import "errors"

var (
	// ErrDataMismatch is returned by Train when sentences and tag sequences
	// are not aligned.
	ErrDataMismatch = errors.New("sentences and tags are not aligned")

	// ErrNoViablePath is returned by Decode when no tag can follow the
	// current frontier before all words are consumed.
	ErrNoViablePath = errors.New("no viable tag path")

	// ErrInvalidTable is returned when counts or log-probabilities cannot
	// form a probability table.
	ErrInvalidTable = errors.New("invalid probability table")
)
