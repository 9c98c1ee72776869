package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chriserin/gwt/internal/config"
	"github.com/chriserin/gwt/internal/step"
	"github.com/chriserin/gwt/internal/ui"
)

var classifyCmd = &cobra.Command{
	Use:     "classify <step>",
	Short:   "Show how a step line is classified and the code it produces",
	Example: `gwt classify "When the user clicks the button with id 'loginbtn'"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		return RunClassify(cmd.OutOrStdout(), cfg, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func RunClassify(w io.Writer, cfg config.Config, line string) error {
	st := step.Classify(line)
	ui.StepLine(w, st.String(), cfg.Composer().Emitter.Emit(st))
	return nil
}
