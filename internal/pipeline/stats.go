package pipeline

import "github.com/vishnupriyancode/renaming-postman-final/internal/discover"

// ModelResult is the outcome of processing a single model.
type ModelResult struct {
	Model    discover.Model
	Moved    int
	Skipped  int
	Produced []string // canonical filenames now under the destination dir
	Err      error    // set when the model aborted as a whole
}

// RunStats aggregates a batch run.
type RunStats struct {
	ModelsSucceeded int
	ModelsFailed    int
	FilesMoved      int
	FilesSkipped    int
	Results         []ModelResult
}

func (s *RunStats) add(r ModelResult) {
	s.Results = append(s.Results, r)
	if r.Err != nil {
		s.ModelsFailed++
		return
	}
	s.ModelsSucceeded++
	s.FilesMoved += r.Moved
	s.FilesSkipped += r.Skipped
}
