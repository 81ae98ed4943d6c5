package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vishnupriyancode/renaming-postman-final/internal/collection"
	"github.com/vishnupriyancode/renaming-postman-final/internal/discover"
)

var (
	colWGSCSBD  bool
	colGBDFMCR  bool
	colMinimal  bool
	colFlatDest bool
	colTS       []string
	colAll      bool
)

var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Generate, validate, and inspect request collections",
}

var collectionGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate collections from an already renamed tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.log.Close()

		set, err := categorySet(colWGSCSBD, colGBDFMCR)
		if err != nil {
			return err
		}
		d := &discover.Discoverer{FS: env.fs, Config: env.cfg, Log: env.log, FlatDest: colFlatDest}
		models, err := d.Discover(set)
		if err != nil {
			return err
		}
		models = filterBySuite(models, colTS, colAll)
		if len(models) == 0 {
			return fmt.Errorf("no suite selected: pass --ts or --all")
		}

		gen := &collection.Generator{
			FS:        env.fs,
			Log:       env.log,
			OutputDir: env.cfg.CollectionsDirFor(set),
			Settings: collection.Settings{
				BaseURL:     env.cfg.BaseURL,
				RequestPath: env.cfg.RequestPath,
				Headers:     env.cfg.Headers,
				Minimal:     colMinimal,
			},
		}
		failed := 0
		for _, m := range models {
			if _, err := gen.Generate(m); err != nil {
				env.log.Warn("TS_%s: %v", m.Suite, err)
				failed++
			}
		}
		if failed == len(models) {
			return fmt.Errorf("no collection could be generated")
		}
		return nil
	},
}

var collectionValidateCmd = &cobra.Command{
	Use:   "validate <collection.json>",
	Short: "Validate a collection file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.log.Close()

		v := collection.Validate(env.fs, args[0])
		for _, e := range v.Errors {
			env.log.Error("%s", e)
		}
		for _, w := range v.Warnings {
			env.log.Warn("%s", w)
		}
		if !v.Valid {
			return fmt.Errorf("%s is not a valid collection", args[0])
		}
		env.log.Success("%s is valid (%d request(s))", args[0], v.Requests)
		return nil
	},
}

var collectionStatsCmd = &cobra.Command{
	Use:   "stats <directory>",
	Short: "Show test-case statistics for a renamed directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.log.Close()

		set, err := categorySet(colWGSCSBD, colGBDFMCR)
		if err != nil {
			return err
		}
		dir := env.fs.Join(env.cfg.DestRootFor(set), args[0])
		st, err := collection.Stats(env.fs, dir)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", st.Directory)
		fmt.Printf("  files: %d\n", st.TotalFiles)
		for _, s := range st.Suffixes {
			fmt.Printf("  %s: %d\n", s, st.SuffixCounts[s])
		}
		fmt.Printf("  edit ids: %v\n", st.EditIDs)
		fmt.Printf("  response codes: %v\n", st.ResponseCodes)
		return nil
	},
}

var collectionDirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "List renamed directories available for collection generation",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.log.Close()

		set, err := categorySet(colWGSCSBD, colGBDFMCR)
		if err != nil {
			return err
		}
		dirs, err := collection.ListDirs(env.fs, env.cfg.DestRootFor(set))
		if err != nil {
			return err
		}
		for _, d := range dirs {
			fmt.Println(d)
		}
		return nil
	},
}

func init() {
	collectionCmd.PersistentFlags().BoolVar(&colWGSCSBD, "wgs-csbd", false, "Operate on the WGS_CSBD tree")
	collectionCmd.PersistentFlags().BoolVar(&colGBDFMCR, "gbdf-mcr", false, "Operate on the GBDF MCR tree")
	collectionGenerateCmd.Flags().BoolVar(&colMinimal, "minimal", false, "Emit the minimal collection shape")
	collectionGenerateCmd.Flags().BoolVar(&colFlatDest, "flat-dest", false, "Read WGS_CSBD destinations directly under the destination root")
	collectionGenerateCmd.Flags().StringSliceVar(&colTS, "ts", nil, "Suite number(s) to generate for (repeatable)")
	collectionGenerateCmd.Flags().BoolVar(&colAll, "all", false, "Generate for every discovered suite")

	collectionCmd.AddCommand(collectionGenerateCmd)
	collectionCmd.AddCommand(collectionValidateCmd)
	collectionCmd.AddCommand(collectionStatsCmd)
	collectionCmd.AddCommand(collectionDirsCmd)
	rootCmd.AddCommand(collectionCmd)
}

// filterBySuite keeps the models named by tsList, or all of them when all is
// set. Unknown suite numbers simply select nothing.
func filterBySuite(models []discover.Model, tsList []string, all bool) []discover.Model {
	if all {
		return models
	}
	want := map[string]bool{}
	for _, raw := range tsList {
		want[raw] = true
	}
	var out []discover.Model
	for _, m := range models {
		if want[m.Suite] || want[m.SuiteRaw] {
			out = append(out, m)
		}
	}
	return out
}
