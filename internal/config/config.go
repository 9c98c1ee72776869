package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/chriserin/gwt/internal/compose"
	"github.com/chriserin/gwt/internal/emit"
)

// DefaultPath is where gwt looks for its configuration.
const DefaultPath = "gwt.toml"

type Config struct {
	OutputDir     string        `toml:"output_dir"`
	ScenariosFile string        `toml:"scenarios_file"`
	Browser       BrowserConfig `toml:"browser"`
	LLM           LLMConfig     `toml:"llm"`
	Log           LogConfig     `toml:"log"`
}

type BrowserConfig struct {
	Driver       string `toml:"driver"`
	WaitTimeout  int    `toml:"wait_timeout"`
	AlertTimeout int    `toml:"alert_timeout"`
	ErrorMarker  string `toml:"error_marker"`
}

type LLMConfig struct {
	Host           string `toml:"host,omitempty"` // empty: OLLAMA_HOST or the client default
	Model          string `toml:"model"`
	PromptTemplate string `toml:"prompt_template,omitempty"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // console or json
}

func Default() Config {
	return Config{
		OutputDir:     "outputs/selenium_tests",
		ScenariosFile: "outputs/generated_scenarios.txt",
		Browser: BrowserConfig{
			Driver:       "chrome",
			WaitTimeout:  emit.DefaultWaitTimeout,
			AlertTimeout: emit.DefaultAlertTimeout,
			ErrorMarker:  emit.DefaultErrorMarker,
		},
		LLM: LLMConfig{
			Model: "gpt-oss:120b-cloud",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path on top of Default. When path is empty the default file is
// used if it exists; an explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, errors.New("output_dir must not be empty"))
	}
	if strings.TrimSpace(c.ScenariosFile) == "" {
		errs = append(errs, errors.New("scenarios_file must not be empty"))
	}
	if _, ok := compose.Drivers[strings.ToLower(c.Browser.Driver)]; !ok {
		errs = append(errs, fmt.Errorf("browser.driver %q is not one of chrome, edge, firefox", c.Browser.Driver))
	}
	if c.Browser.WaitTimeout <= 0 {
		errs = append(errs, fmt.Errorf("browser.wait_timeout must be positive, got %d", c.Browser.WaitTimeout))
	}
	if c.Browser.AlertTimeout <= 0 {
		errs = append(errs, fmt.Errorf("browser.alert_timeout must be positive, got %d", c.Browser.AlertTimeout))
	}
	if strings.TrimSpace(c.Browser.ErrorMarker) == "" {
		errs = append(errs, errors.New("browser.error_marker must not be empty"))
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		errs = append(errs, errors.New("llm.model must not be empty"))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not console or json", c.Log.Format))
	}
	return errors.Join(errs...)
}

// Composer builds the file composer the browser settings describe.
func (c Config) Composer() compose.Composer {
	return compose.Composer{
		Emitter: emit.Emitter{
			WaitTimeout:  c.Browser.WaitTimeout,
			AlertTimeout: c.Browser.AlertTimeout,
			ErrorMarker:  c.Browser.ErrorMarker,
		},
		Driver: c.Browser.Driver,
	}
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
