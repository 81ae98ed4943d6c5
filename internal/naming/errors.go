package naming

import (
	"errors"
	"fmt"
)

// ErrNoMatch reports a folder name that fits none of the registered grammars.
// Callers log it and skip the folder; it never aborts a batch.
var ErrNoMatch = errors.New("folder name matches no known grammar")

// ErrUnrecognized reports an asset filename that does not split into 3, 4, or
// 5 segments (or lacks the .json extension). The file is skipped.
var ErrUnrecognized = errors.New("filename does not fit a recognized shape")

// InvalidIdentifierError reports a suite identifier that is not parseable as
// an integer. Discovery catches it per candidate and excludes that candidate.
type InvalidIdentifierError struct {
	Raw string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid suite identifier %q: not a number", e.Raw)
}

// ParameterMismatchError reports a canonical 5-segment file whose embedded
// codes disagree with the model it was found under. Distinct from
// ErrUnrecognized: the name parsed fine, the parameters are wrong.
type ParameterMismatchError struct {
	Filename         string
	FileEditID       string
	FileResponseCode string
	WantEditID       string
	WantResponseCode string
}

func (e *ParameterMismatchError) Error() string {
	return fmt.Sprintf("%s has different model parameters (%s_%s) than target (%s_%s)",
		e.Filename, e.FileEditID, e.FileResponseCode, e.WantEditID, e.WantResponseCode)
}
