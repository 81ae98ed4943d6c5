package naming

// suffixTable maps raw scenario suffixes to short result codes. Evaluated in
// order; adding a suffix is a data change, not a control-flow change.
var suffixTable = []struct {
	raw  string
	code string
}{
	{"deny", "LR"},
	{"bypass", "NR"},
	{"market", "EX"},
	{"date", "EX"},
}

// MapSuffix rewrites a raw suffix token to its result code. Unknown tokens
// pass through unchanged so forward-compatible suffixes never block a batch.
func MapSuffix(raw string) string {
	for _, e := range suffixTable {
		if e.raw == raw {
			return e.code
		}
	}
	return raw
}
