package collection

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/vishnupriyancode/renaming-postman-final/internal/naming"
)

// DirStats summarizes the canonical test-case files under one renamed
// directory.
type DirStats struct {
	Directory     string
	TotalFiles    int
	SuffixCounts  map[string]int
	EditIDs       []string
	ResponseCodes []string
	Suffixes      []string
}

// Stats walks a renamed directory and counts canonical 5-segment files by
// suffix, collecting the distinct edit IDs and response codes seen.
func Stats(fs billy.Filesystem, dir string) (DirStats, error) {
	st := DirStats{Directory: dir, SuffixCounts: map[string]int{}}

	edits := map[string]bool{}
	codes := map[string]bool{}
	err := util.Walk(fs, dir, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() || !strings.HasSuffix(fi.Name(), ".json") {
			return nil
		}
		st.TotalFiles++
		f, cerr := naming.ClassifyAsset(fi.Name())
		if cerr != nil || f.Segments != 5 {
			return nil
		}
		st.SuffixCounts[f.RawSuffix]++
		edits[f.EditID] = true
		codes[f.ResponseCode] = true
		return nil
	})
	if err != nil {
		return DirStats{}, fmt.Errorf("walk %s: %w", dir, err)
	}

	st.EditIDs = sortedKeys(edits)
	st.ResponseCodes = sortedKeys(codes)
	st.Suffixes = sortedKeys(toSet(st.SuffixCounts))
	return st, nil
}

// ListDirs returns the sorted directory names directly under root.
func ListDirs(fs billy.Filesystem, root string) ([]string, error) {
	entries, err := fs.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

func toSet(counts map[string]int) map[string]bool {
	set := make(map[string]bool, len(counts))
	for k := range counts {
		set[k] = true
	}
	return set
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
