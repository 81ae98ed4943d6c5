package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vishnupriyancode/renaming-postman-final/internal/collection"
	"github.com/vishnupriyancode/renaming-postman-final/internal/config"
	"github.com/vishnupriyancode/renaming-postman-final/internal/discover"
	"github.com/vishnupriyancode/renaming-postman-final/internal/naming"
	"github.com/vishnupriyancode/renaming-postman-final/internal/pipeline"
	"github.com/vishnupriyancode/renaming-postman-final/internal/report"
)

var (
	processWGSCSBD bool
	processGBDFMCR bool
	processTS      []string
	processAll     bool
	processList    bool
	flatDest       bool
	noCollection   bool
	minimalShape   bool
	reportPath     string

	customEditID         string
	customCode           string
	customSourceDir      string
	customDestDir        string
	customCollectionName string
	customCollectionFile string
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Discover suite folders and rename their test-case files",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.log.Close()

		if processList {
			return runList(env)
		}

		set, err := categorySet(processWGSCSBD, processGBDFMCR)
		if err != nil {
			return err
		}

		models, err := resolveModels(env, set)
		if err != nil {
			return err
		}

		runner := &pipeline.Runner{FS: env.fs, Log: env.log}
		stats := runner.Run(models)
		env.log.Info("batch done: %d model(s) succeeded, %d failed, %d file(s) moved, %d skipped",
			stats.ModelsSucceeded, stats.ModelsFailed, stats.FilesMoved, stats.FilesSkipped)

		if !noCollection {
			generateCollections(env, set, stats)
		}
		if reportPath != "" {
			if err := report.Write(env.fs, reportPath, stats); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			env.log.Success("report written to %s", reportPath)
		}
		return nil
	},
}

func init() {
	processCmd.Flags().BoolVar(&processWGSCSBD, "wgs-csbd", false, "Process the WGS_CSBD folder family")
	processCmd.Flags().BoolVar(&processGBDFMCR, "gbdf-mcr", false, "Process the GBDF MCR folder family")
	processCmd.Flags().StringSliceVar(&processTS, "ts", nil, "Suite number(s) to process (repeatable)")
	processCmd.Flags().BoolVar(&processAll, "all", false, "Process every discovered suite")
	processCmd.Flags().BoolVar(&processList, "list", false, "List discovered suites and exit")
	processCmd.Flags().BoolVar(&flatDest, "flat-dest", false, "Place WGS_CSBD destinations directly under the destination root")
	processCmd.Flags().BoolVar(&noCollection, "no-collection", false, "Skip collection generation")
	processCmd.Flags().BoolVar(&minimalShape, "minimal", false, "Emit the minimal collection shape")
	processCmd.Flags().StringVar(&reportPath, "report", "", "Write a markdown batch summary to this path")

	processCmd.Flags().StringVar(&customEditID, "edit-id", "", "Custom model: edit identifier")
	processCmd.Flags().StringVar(&customCode, "code", "", "Custom model: response code")
	processCmd.Flags().StringVar(&customSourceDir, "source-dir", "", "Custom model: source directory")
	processCmd.Flags().StringVar(&customDestDir, "dest-dir", "", "Custom model: destination directory")
	processCmd.Flags().StringVar(&customCollectionName, "collection-name", "", "Custom model: collection name")
	processCmd.Flags().StringVar(&customCollectionFile, "collection-file", "", "Custom model: collection filename")

	rootCmd.AddCommand(processCmd)
}

// resolveModels turns the selection flags into the model list to process:
// either a single custom model, or discovered models filtered by --ts/--all.
func resolveModels(env *environment, set config.CategorySet) ([]discover.Model, error) {
	if customEditID != "" || customCode != "" || customSourceDir != "" || customDestDir != "" {
		m, err := customModel(set)
		if err != nil {
			return nil, err
		}
		return []discover.Model{m}, nil
	}

	d := &discover.Discoverer{FS: env.fs, Config: env.cfg, Log: env.log, FlatDest: flatDest}
	models, err := d.Discover(set)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, fmt.Errorf("no models available under %s", env.cfg.SourceDirFor(set))
	}
	if processAll {
		return models, nil
	}
	if len(processTS) == 0 {
		return nil, fmt.Errorf("no suite selected: pass --ts or --all")
	}

	var selected []discover.Model
	for _, raw := range processTS {
		suite, err := naming.NormalizeSuiteNumber(raw)
		if err != nil {
			return nil, err
		}
		found := false
		for _, m := range models {
			if m.Suite == suite {
				selected = append(selected, m)
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("no model found for TS_%s", suite)
		}
	}
	return selected, nil
}

// customModel builds a one-off model entirely from flags.
func customModel(set config.CategorySet) (discover.Model, error) {
	if customEditID == "" || customCode == "" || customSourceDir == "" || customDestDir == "" {
		return discover.Model{}, fmt.Errorf(
			"custom model needs --edit-id, --code, --source-dir, and --dest-dir")
	}
	name := customCollectionName
	if name == "" {
		name = fmt.Sprintf("custom_%s_collection", customEditID)
	}
	file := customCollectionFile
	if file == "" {
		file = "postman_collection.json"
	}
	return discover.Model{
		Set:            set,
		Suite:          "custom",
		SuiteRaw:       "custom",
		EditID:         customEditID,
		ResponseCode:   customCode,
		Category:       naming.CategoryUnspecified,
		FolderName:     customSourceDir,
		SourcePath:     customSourceDir,
		DestPath:       customDestDir,
		CollectionName: name,
		CollectionFile: file,
	}, nil
}

// runList prints the discovered suites per family without touching anything.
func runList(env *environment) error {
	sets := []config.CategorySet{config.SetWGSCSBD, config.SetGBDFMCR}
	if processWGSCSBD || processGBDFMCR {
		set, err := categorySet(processWGSCSBD, processGBDFMCR)
		if err != nil {
			return err
		}
		sets = []config.CategorySet{set}
	}

	d := &discover.Discoverer{FS: env.fs, Config: env.cfg, Log: env.log}
	for _, set := range sets {
		fmt.Printf("%s:\n", set)
		models, err := d.Discover(set)
		if err != nil {
			env.log.Warn("%v", err)
			continue
		}
		byCategory := map[naming.Category][]discover.Model{}
		var cats []string
		for _, m := range models {
			if _, seen := byCategory[m.Category]; !seen {
				cats = append(cats, string(m.Category))
			}
			byCategory[m.Category] = append(byCategory[m.Category], m)
		}
		sort.Strings(cats)
		for _, cat := range cats {
			fmt.Printf("  %s:\n", cat)
			for _, m := range byCategory[naming.Category(cat)] {
				fmt.Printf("    TS_%s  %s  (%s_%s)\n", m.Suite, m.FolderName, m.EditID, m.ResponseCode)
			}
		}
	}
	return nil
}

// generateCollections writes a collection per successfully processed model.
func generateCollections(env *environment, set config.CategorySet, stats pipeline.RunStats) {
	gen := &collection.Generator{
		FS:        env.fs,
		Log:       env.log,
		OutputDir: env.cfg.CollectionsDirFor(set),
		Settings: collection.Settings{
			BaseURL:     env.cfg.BaseURL,
			RequestPath: env.cfg.RequestPath,
			Headers:     env.cfg.Headers,
			Minimal:     minimalShape,
		},
	}
	for _, r := range stats.Results {
		if r.Err != nil {
			continue
		}
		if _, err := gen.Generate(r.Model); err != nil {
			env.log.Warn("collection for TS_%s: %v", r.Model.Suite, err)
		}
	}
}
