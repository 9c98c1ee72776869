package cmd

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chriserin/gwt/internal/compose"
	"github.com/chriserin/gwt/internal/config"
	"github.com/chriserin/gwt/internal/ui"
)

var convertOutput string

var convertCmd = &cobra.Command{
	Use:   "convert [scenarios.txt]",
	Short: "Convert scenario text into Selenium test files",
	Long:  "Convert scenario text into Selenium test files. Reads scenarios_file from the config when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		src := cfg.ScenariosFile
		if len(args) == 1 {
			src = args[0]
		}
		if convertOutput != "" {
			cfg.OutputDir = convertOutput
		}
		return RunConvert(cmd.OutOrStdout(), cfg, log, src)
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output directory (default output_dir from the config)")
	rootCmd.AddCommand(convertCmd)
}

func RunConvert(w io.Writer, cfg config.Config, log zerolog.Logger, src string) error {
	res, err := convertFile(w, cfg, log, src)
	if err != nil {
		return err
	}
	ui.SummaryLine(w, len(res.Files), res.Scenarios, len(res.Warnings))
	for _, warning := range res.Warnings {
		ui.WarnLine(w, warning.String())
	}
	return nil
}

func convertFile(w io.Writer, cfg config.Config, log zerolog.Logger, src string) (*compose.Result, error) {
	sink := reportingSink{dir: compose.DirSink{Dir: cfg.OutputDir}, w: w}
	return compose.NewConverter(cfg.Composer(), sink, log).ConvertFile(src)
}

// reportingSink writes into a directory and prints a new/ovr line per file.
type reportingSink struct {
	dir compose.DirSink
	w   io.Writer
}

func (s reportingSink) Write(name, content string) (string, error) {
	_, statErr := os.Stat(s.dir.Path(name))
	path, err := s.dir.Write(name, content)
	if err != nil {
		return "", err
	}
	if statErr == nil {
		ui.OvrLine(s.w, path)
	} else {
		ui.NewLine(s.w, path)
	}
	return path, nil
}
