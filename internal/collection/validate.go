package collection

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/ohler55/ojg/oj"
)

// Validation is the outcome of checking one collection file.
type Validation struct {
	Valid    bool
	Errors   []string
	Warnings []string
	Requests int
}

// Validate checks a collection file against whichever wire shape it uses.
// A document carrying both "info" and "item" is checked as the extended
// shape; anything else is checked as the minimal shape.
func Validate(fs billy.Filesystem, path string) Validation {
	var v Validation

	data, err := util.ReadFile(fs, path)
	if err != nil {
		v.Errors = append(v.Errors, fmt.Sprintf("read %s: %v", path, err))
		return v
	}
	parsed, err := oj.Parse(data)
	if err != nil {
		v.Errors = append(v.Errors, fmt.Sprintf("invalid JSON format: %v", err))
		return v
	}
	doc, ok := parsed.(map[string]any)
	if !ok {
		v.Errors = append(v.Errors, "collection document is not an object")
		return v
	}

	_, hasInfo := doc["info"]
	_, hasItem := doc["item"]
	if hasInfo && hasItem {
		v.Requests = listLen(doc["item"])
	} else {
		for _, field := range []string{"version", "name", "type", "items"} {
			if _, ok := doc[field]; !ok {
				v.Errors = append(v.Errors, "missing required field: "+field)
			}
		}
		v.Requests = listLen(doc["items"])
	}

	if len(v.Errors) == 0 && v.Requests == 0 {
		v.Warnings = append(v.Warnings, "collection contains no requests")
	}
	v.Valid = len(v.Errors) == 0
	return v
}

func listLen(val any) int {
	if list, ok := val.([]any); ok {
		return len(list)
	}
	return 0
}
