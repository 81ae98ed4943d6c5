// Package pipeline moves the test-case files of discovered models into their
// destination trees under canonical names. Processing is sequential; a batch
// never runs two models at once.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/vishnupriyancode/renaming-postman-final/internal/discover"
	"github.com/vishnupriyancode/renaming-postman-final/internal/logging"
	"github.com/vishnupriyancode/renaming-postman-final/internal/naming"
)

// Runner executes the rename stage over one filesystem.
type Runner struct {
	FS  billy.Filesystem
	Log *logging.Logger
}

// ProcessModel renames every recognized .json file under the model's source
// dir into its destination dir. Unrecognized names and parameter mismatches
// are logged and skipped; a per-file move failure skips that file too. Only
// an unreadable source dir or an uncreatable destination aborts the model.
func (r *Runner) ProcessModel(m discover.Model) ModelResult {
	res := ModelResult{Model: m}

	entries, err := r.FS.ReadDir(m.SourcePath)
	if err != nil {
		res.Err = fmt.Errorf("read source dir %s: %w", m.SourcePath, err)
		return res
	}
	if err := r.FS.MkdirAll(m.DestPath, 0o755); err != nil {
		res.Err = fmt.Errorf("create destination %s: %w", m.DestPath, err)
		return res
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := entry.Name()

		f, err := naming.ClassifyAsset(name)
		if err != nil {
			if errors.Is(err, naming.ErrUnrecognized) {
				r.Log.Warn("TS_%s: skipping %s: unrecognized shape", m.Suite, name)
				res.Skipped++
				continue
			}
			res.Err = err
			return res
		}
		if err := f.ValidateAgainst(m.EditID, m.ResponseCode); err != nil {
			r.Log.Warn("TS_%s: skipping: %v", m.Suite, err)
			res.Skipped++
			continue
		}

		canonical := f.CanonicalName(m.EditID, m.ResponseCode)
		src := r.FS.Join(m.SourcePath, name)
		dst := r.FS.Join(m.DestPath, canonical)
		if err := r.moveFile(src, dst); err != nil {
			r.Log.Error("TS_%s: move %s: %v", m.Suite, name, err)
			res.Skipped++
			continue
		}
		r.Log.Debug("TS_%s: %s -> %s", m.Suite, name, canonical)
		res.Moved++
		res.Produced = append(res.Produced, canonical)
	}

	if res.Moved == 0 {
		r.Log.Warn("TS_%s: no files processed under %s", m.Suite, m.SourcePath)
	} else {
		r.Log.Success("TS_%s: moved %d file(s) to %s", m.Suite, res.Moved, m.DestPath)
	}
	return res
}

// moveFile copies src to dst, then removes src. The two steps fail
// independently; a crash between them leaves the file present in both trees,
// which a re-run resolves by overwriting dst and removing src again.
func (r *Runner) moveFile(src, dst string) error {
	data, err := util.ReadFile(r.FS, src)
	if err != nil {
		return err
	}
	if err := util.WriteFile(r.FS, dst, data, 0o644); err != nil {
		return err
	}
	return r.FS.Remove(src)
}

// Run processes models in order, containing each model's failure to that
// model.
func (r *Runner) Run(models []discover.Model) RunStats {
	var stats RunStats
	for _, m := range models {
		res := r.ProcessModel(m)
		if res.Err != nil {
			r.Log.Error("TS_%s: %v", m.Suite, res.Err)
		}
		stats.add(res)
	}
	return stats
}
