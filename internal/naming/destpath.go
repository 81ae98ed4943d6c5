package naming

import "strings"

// suffixRewrites transforms a matched source folder name into its destination
// folder name. Evaluated in order; the first rewrite whose marker appears in
// the name is applied. The _ayloads entry tolerates a misspelling that ships
// in existing suite trees.
var suffixRewrites = []struct {
	from string
	to   string
}{
	{"_payloads_sur", "_payloads_dis"},
	{"_ayloads_sur", "_payloads_dis"},
	{"_sur", "_dis"},
}

// RewriteFolderSuffix maps a source folder name to the folder name it gets
// under the destination root. Names without a recognized marker are kept
// unchanged.
func RewriteFolderSuffix(folderName string) string {
	for _, r := range suffixRewrites {
		if strings.Contains(folderName, r.from) {
			return strings.ReplaceAll(folderName, r.from, r.to)
		}
	}
	return folderName
}
