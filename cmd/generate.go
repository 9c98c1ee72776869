package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chriserin/gwt/internal/config"
	"github.com/chriserin/gwt/internal/scengen"
	"github.com/chriserin/gwt/internal/ui"
)

type generateOptions struct {
	Story     string
	HTML      string
	NoConvert bool
}

var genOpts generateOptions

var generateCmd = &cobra.Command{
	Use:     "generate --story FILE --html FILE",
	Short:   "Ask the model for scenarios, save them and convert them",
	Example: "gwt generate --story story.txt --html login.html",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		story, err := readInput(cmd.InOrStdin(), "--story", genOpts.Story)
		if err != nil {
			return err
		}
		html, err := readInput(cmd.InOrStdin(), "--html", genOpts.HTML)
		if err != nil {
			return err
		}
		gen, err := newGenerator(cfg, log)
		if err != nil {
			return err
		}
		return RunGenerate(cmd.Context(), cmd.OutOrStdout(), cfg, log, gen, story, html, !genOpts.NoConvert)
	},
}

func init() {
	generateCmd.Flags().StringVar(&genOpts.Story, "story", "", "file with the user story (- for stdin)")
	generateCmd.Flags().StringVar(&genOpts.HTML, "html", "", "file with the page markup (- for stdin)")
	generateCmd.Flags().BoolVar(&genOpts.NoConvert, "no-convert", false, "only save the generated scenarios")
	rootCmd.AddCommand(generateCmd)
}

type scenarioGenerator interface {
	Generate(ctx context.Context, story, html string) (string, error)
}

func RunGenerate(ctx context.Context, w io.Writer, cfg config.Config, log zerolog.Logger, gen scenarioGenerator, story, html string, convert bool) error {
	text, err := gen.Generate(ctx, story, html)
	if err != nil {
		ui.ErrorLine(w, scengen.ErrorText(err))
		return fmt.Errorf("generating scenarios: %w", err)
	}

	fmt.Fprintln(w, text)
	fmt.Fprintln(w)

	if err := scengen.Save(cfg.ScenariosFile, text); err != nil {
		return err
	}
	fmt.Fprintf(w, "saved %s\n", cfg.ScenariosFile)

	if !convert {
		return nil
	}
	return RunConvert(w, cfg, log, cfg.ScenariosFile)
}

func newGenerator(cfg config.Config, log zerolog.Logger) (*scengen.Generator, error) {
	client, err := scengen.NewClient(cfg.LLM.Host)
	if err != nil {
		return nil, err
	}
	tmpl, err := scengen.LoadTemplate(cfg.LLM.PromptTemplate)
	if err != nil {
		return nil, err
	}
	return scengen.NewGenerator(client, cfg.LLM.Model, tmpl, log), nil
}

func readInput(stdin io.Reader, flag, path string) (string, error) {
	switch path {
	case "":
		return "", fmt.Errorf("%s is required", flag)
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading %s from stdin: %w", flag, err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%s file %s not found", flag, path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
