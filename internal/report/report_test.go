package report

import (
	"errors"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishnupriyancode/renaming-postman-final/internal/discover"
	"github.com/vishnupriyancode/renaming-postman-final/internal/pipeline"
)

func TestWrite(t *testing.T) {
	fs := memfs.New()
	stats := pipeline.RunStats{
		ModelsSucceeded: 1,
		ModelsFailed:    1,
		FilesMoved:      2,
		FilesSkipped:    1,
		Results: []pipeline.ModelResult{
			{
				Model: discover.Model{
					Suite:      "07",
					FolderName: "TS_07_REVENUE_WGS_CSBD_rvn011_00W11_sur",
					SourcePath: "src/regression",
					DestPath:   "dst/regression",
				},
				Moved:    2,
				Skipped:  1,
				Produced: []string{"TC#01_11111#rvn011#00W11#LR.json"},
			},
			{
				Model: discover.Model{Suite: "08", FolderName: "broken"},
				Err:   errors.New("read source dir: boom"),
			},
		},
	}

	require.NoError(t, Write(fs, "reports/summary.md", stats))

	data, err := util.ReadFile(fs, "reports/summary.md")
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "# Batch Rename Summary")
	assert.Contains(t, out, "| Models succeeded | 1 |")
	assert.Contains(t, out, "| Files moved | 2 |")
	assert.Contains(t, out, "## TS_07 TS_07_REVENUE_WGS_CSBD_rvn011_00W11_sur")
	assert.Contains(t, out, "TC#01_11111#rvn011#00W11#LR.json")
	assert.Contains(t, out, "FAILED: read source dir: boom")
}
