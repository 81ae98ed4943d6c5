package cmd

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/vishnupriyancode/renaming-postman-final/internal/config"
	"github.com/vishnupriyancode/renaming-postman-final/internal/logging"
)

var (
	configPath string
	verbose    bool
	logFile    string
	colorMode  string
)

var rootCmd = &cobra.Command{
	Use:   "renaming-postman",
	Short: "Rename suite test-case files and generate request collections",
	Long: `renaming-postman discovers test-suite folders, renames their JSON
test-case files into the canonical 5-segment scheme, and generates
request-collection files for the renamed trees.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to an HCL configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write log lines to this file")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Color output: auto, always, never")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// environment bundles what every command needs: the working-directory
// filesystem, the effective configuration, and a logger.
type environment struct {
	fs  billy.Filesystem
	cfg *config.Config
	log *logging.Logger
}

func setup() (*environment, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	log, err := logging.New(logging.Options{
		Verbose: verbose,
		Color:   logging.ColorMode(colorMode),
		LogFile: logFile,
	})
	if err != nil {
		return nil, err
	}
	return &environment{fs: osfs.New("."), cfg: cfg, log: log}, nil
}

// categorySet maps the two mutually exclusive family flags to a set.
func categorySet(wgsCSBD, gbdfMCR bool) (config.CategorySet, error) {
	switch {
	case wgsCSBD && gbdfMCR:
		return "", fmt.Errorf("--wgs-csbd and --gbdf-mcr are mutually exclusive")
	case gbdfMCR:
		return config.SetGBDFMCR, nil
	case wgsCSBD:
		return config.SetWGSCSBD, nil
	default:
		return "", fmt.Errorf("one of --wgs-csbd or --gbdf-mcr is required")
	}
}
