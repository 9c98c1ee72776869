package cmd

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chriserin/gwt/internal/compose"
	"github.com/chriserin/gwt/internal/config"
	"github.com/chriserin/gwt/internal/scengen"
	"github.com/chriserin/gwt/internal/tui"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive user story form",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		// the terminal belongs to the form while it is open
		log = log.Output(io.Discard)

		gen, err := newGenerator(cfg, log)
		if err != nil {
			return err
		}
		return RunForm(cmd.Context(), cfg, log, gen)
	},
}

func init() {
	rootCmd.AddCommand(formCmd)
}

func RunForm(ctx context.Context, cfg config.Config, log zerolog.Logger, gen scenarioGenerator) error {
	m := tui.New(ctx, gen.Generate, formConverter(cfg, log))
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// formConverter saves generated text to scenarios_file and converts it.
func formConverter(cfg config.Config, log zerolog.Logger) tui.ConvertFunc {
	return func(text string) (*compose.Result, error) {
		if err := scengen.Save(cfg.ScenariosFile, text); err != nil {
			return nil, err
		}
		return convertFile(io.Discard, cfg, log, cfg.ScenariosFile)
	}
}
