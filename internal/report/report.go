// Package report renders a batch run into a markdown summary file.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/vishnupriyancode/renaming-postman-final/internal/pipeline"
)

// Write renders stats as markdown at path, creating parent directories.
func Write(fs billy.Filesystem, path string, stats pipeline.RunStats) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Batch Rename Summary\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Models succeeded | %d |\n", stats.ModelsSucceeded)
	fmt.Fprintf(&b, "| Models failed | %d |\n", stats.ModelsFailed)
	fmt.Fprintf(&b, "| Files moved | %d |\n", stats.FilesMoved)
	fmt.Fprintf(&b, "| Files skipped | %d |\n\n", stats.FilesSkipped)

	for _, r := range stats.Results {
		fmt.Fprintf(&b, "## TS_%s %s\n\n", r.Model.Suite, r.Model.FolderName)
		if r.Err != nil {
			fmt.Fprintf(&b, "FAILED: %v\n\n", r.Err)
			continue
		}
		fmt.Fprintf(&b, "- Source: `%s`\n", r.Model.SourcePath)
		fmt.Fprintf(&b, "- Destination: `%s`\n", r.Model.DestPath)
		fmt.Fprintf(&b, "- Moved: %d, skipped: %d\n", r.Moved, r.Skipped)
		if len(r.Produced) > 0 {
			b.WriteString("\n")
			for _, name := range r.Produced {
				fmt.Fprintf(&b, "  - `%s`\n", name)
			}
		}
		b.WriteString("\n")
	}

	if idx := strings.LastIndex(path, "/"); idx > 0 {
		if err := fs.MkdirAll(path[:idx], 0o755); err != nil {
			return err
		}
	}
	return util.WriteFile(fs, path, []byte(b.String()), 0o644)
}
