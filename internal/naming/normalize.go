// Package naming is the folder-name and file-name pattern engine: it parses
// irregular, human-authored test-suite directory and asset file names into
// structured parameters and derives the canonical output names used by the
// rename and collection stages.
package naming

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeSuiteNumber canonicalizes a raw test-suite number to its minimum
// fixed width: 2 digits for 1-99, 3 digits for 100-999. Values outside 1-999
// are returned unchanged rather than rejected, so exotic historical suite
// numbers still flow through.
//
//	"1"   -> "01"
//	"01"  -> "01"
//	"10"  -> "10"
//	"007" -> "07"
//	"100" -> "100"
func NormalizeSuiteNumber(raw string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", &InvalidIdentifierError{Raw: raw}
	}
	switch {
	case n >= 1 && n <= 99:
		return fmt.Sprintf("%02d", n), nil
	case n >= 100 && n <= 999:
		return fmt.Sprintf("%03d", n), nil
	default:
		return raw, nil
	}
}
