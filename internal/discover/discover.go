// Package discover walks a source root and turns suite folders whose names
// fit a registered grammar into concrete model records for the rename and
// collection stages.
package discover

import (
	"errors"
	"fmt"
	"path"
	"sort"

	"github.com/go-git/go-billy/v5"

	"github.com/vishnupriyancode/renaming-postman-final/internal/config"
	"github.com/vishnupriyancode/renaming-postman-final/internal/logging"
	"github.com/vishnupriyancode/renaming-postman-final/internal/naming"
)

// Model is one discovered test suite, fully resolved: where its files live,
// where they go, and how its collection is named. Records are plain values;
// nothing mutates them after discovery.
type Model struct {
	Set            config.CategorySet
	Suite          string // normalized, e.g. "07"
	SuiteRaw       string // as written in the folder name
	EditID         string
	ResponseCode   string
	Category       naming.Category
	FolderName     string
	SourcePath     string // <source>/<folder>/regression
	DestPath       string // <dest root>/<rewritten folder>/regression
	CollectionName string
	CollectionFile string
}

// Discoverer scans one filesystem with one configuration. FlatDest places
// WGS_CSBD destinations directly under the destination root instead of its
// WGS_CSBD subtree; GBDF destinations always use their subtree.
type Discoverer struct {
	FS       billy.Filesystem
	Config   *config.Config
	Log      *logging.Logger
	FlatDest bool
}

func grammarSet(set config.CategorySet) naming.GrammarSet {
	if set == config.SetGBDFMCR {
		return naming.SetAlt
	}
	return naming.SetStandard
}

// Discover lists the source root for a category set and returns the models
// whose folder names resolve and which carry a regression subdirectory.
// Candidates that fail either check are logged and skipped; only a missing
// source root aborts. When nothing is discovered, the static fallback table
// from the configuration is returned instead.
func (d *Discoverer) Discover(set config.CategorySet) ([]Model, error) {
	sourceDir := d.Config.SourceDirFor(set)
	entries, err := d.FS.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("read source root %s: %w", sourceDir, err)
	}

	destRoot := d.Config.DestRootFor(set)
	if d.FlatDest && set != config.SetGBDFMCR {
		destRoot = d.Config.DestRoot
	}

	var models []Model
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folder := entry.Name()

		match, err := naming.Resolve(folder, grammarSet(set))
		if err != nil {
			if errors.Is(err, naming.ErrNoMatch) {
				d.Log.Debug("skipping %s: no grammar match", folder)
				continue
			}
			return nil, err
		}

		suite, err := naming.NormalizeSuiteNumber(match.SuiteRaw)
		if err != nil {
			d.Log.Warn("skipping %s: %v", folder, err)
			continue
		}

		regression := d.FS.Join(sourceDir, folder, "regression")
		fi, err := d.FS.Stat(regression)
		if err != nil || !fi.IsDir() {
			d.Log.Warn("skipping %s: no regression subdirectory", folder)
			continue
		}

		models = append(models, Model{
			Set:            set,
			Suite:          suite,
			SuiteRaw:       match.SuiteRaw,
			EditID:         match.EditID,
			ResponseCode:   match.ResponseCode,
			Category:       match.Category,
			FolderName:     folder,
			SourcePath:     regression,
			DestPath:       d.FS.Join(destRoot, naming.RewriteFolderSuffix(folder), "regression"),
			CollectionName: naming.CollectionName(match.Category, suite, folder),
			CollectionFile: naming.CollectionFileName(match.Category, match.EditID, match.ResponseCode),
		})
	}

	if len(models) == 0 {
		static := FromStatic(set, d.Config.StaticModelsFor(set))
		if len(static) > 0 {
			d.Log.Warn("no suite folders found under %s, using %d static model(s)",
				sourceDir, len(static))
			return static, nil
		}
		return nil, nil
	}

	sort.Slice(models, func(i, j int) bool {
		if models[i].Suite != models[j].Suite {
			return models[i].Suite < models[j].Suite
		}
		return models[i].FolderName < models[j].FolderName
	})
	return models, nil
}

// FromStatic converts static fallback entries into model records.
func FromStatic(set config.CategorySet, static []config.StaticModel) []Model {
	var models []Model
	for _, s := range static {
		folder := folderComponent(s.SourceDir)
		models = append(models, Model{
			Set:            set,
			Suite:          s.Suite,
			SuiteRaw:       s.Suite,
			EditID:         s.EditID,
			ResponseCode:   s.ResponseCode,
			Category:       naming.ClassifyCategory(folder),
			FolderName:     folder,
			SourcePath:     s.SourceDir,
			DestPath:       s.DestDir,
			CollectionName: s.CollectionName,
			CollectionFile: s.CollectionFile,
		})
	}
	return models
}

// folderComponent extracts the suite folder from a static path like
// "<root>/<subtree>/<folder>/regression".
func folderComponent(p string) string {
	p = path.Clean(p)
	if path.Base(p) == "regression" {
		p = path.Dir(p)
	}
	return path.Base(p)
}
