package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chriserin/gwt/internal/config"
)

const gitignoreEntry = "outputs/"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the output directory and a default gwt.toml",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func RunInit(w io.Writer) error {
	cfg := config.Default()

	// output directory
	_, err := os.Stat(cfg.OutputDir)
	outExists := err == nil
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", cfg.OutputDir, err)
	}
	dirLabel := filepath.ToSlash(cfg.OutputDir) + "/"
	if outExists {
		fmt.Fprintln(w, dirLabel+" already exists")
	} else {
		fmt.Fprintln(w, dirLabel+" created")
	}

	// config file
	if _, err := os.Stat(config.DefaultPath); err == nil {
		fmt.Fprintln(w, config.DefaultPath+" already exists")
	} else {
		if err := writeDefaultConfig(cfg); err != nil {
			return fmt.Errorf("writing %s: %w", config.DefaultPath, err)
		}
		fmt.Fprintln(w, config.DefaultPath+" created")
	}

	// gitignore
	msgs, err := ensureGitignore()
	if err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}
	for _, msg := range msgs {
		fmt.Fprintln(w, msg)
	}

	return nil
}

func writeDefaultConfig(cfg config.Config) error {
	f, err := os.OpenFile(config.DefaultPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if err := cfg.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func ensureGitignore() ([]string, error) {
	data, err := os.ReadFile(".gitignore")
	if os.IsNotExist(err) {
		if err := os.WriteFile(".gitignore", []byte(gitignoreEntry+"\n"), 0o644); err != nil {
			return nil, err
		}
		return []string{".gitignore created", gitignoreEntry + " added to .gitignore"}, nil
	}
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		if strings.TrimSpace(line) == gitignoreEntry {
			return []string{gitignoreEntry + " already in .gitignore"}, nil
		}
	}

	content := string(data)
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += gitignoreEntry + "\n"

	if err := os.WriteFile(".gitignore", []byte(content), 0o644); err != nil {
		return nil, err
	}
	return []string{gitignoreEntry + " added to .gitignore"}, nil
}
