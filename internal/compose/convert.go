package compose

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/chriserin/gwt/internal/parser"
)

var (
	ErrSourceNotFound    = errors.New("scenario source not found")
	ErrNoScenariosParsed = errors.New("no scenarios parsed")
)

// Result lists what a conversion wrote, in write order.
type Result struct {
	Files     []string
	Scenarios int
	Warnings  []UnrecognizedStepWarning
}

// Converter runs the whole pipeline: parse, classify, emit, compose, write.
type Converter struct {
	Composer Composer
	Sink     Sink
	Log      zerolog.Logger
}

func NewConverter(composer Composer, sink Sink, log zerolog.Logger) *Converter {
	return &Converter{Composer: composer, Sink: sink, Log: log}
}

// ConvertFile reads scenario text from path and converts it.
func (c *Converter) ConvertFile(path string) (*Result, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return c.Convert(path, content)
}

// Convert turns scenario text into test files. name is used for the feature
// name when the text has no Feature: header and in error messages.
//
// Writes are not transactional: when a write fails, the returned Result
// lists the files already written alongside the error.
func (c *Converter) Convert(name string, content []byte) (*Result, error) {
	features, err := parser.Parse(name, content)
	if errors.Is(err, parser.ErrEmptyInput) {
		return nil, fmt.Errorf("%w from %s: %w", ErrNoScenariosParsed, name, err)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	files, warnings := c.Composer.Compose(features)
	result := &Result{Scenarios: parser.ScenarioCount(features), Warnings: warnings}
	c.Log.Debug().
		Str("source", name).
		Int("features", len(features)).
		Int("scenarios", result.Scenarios).
		Msg("parsed scenarios")

	for _, w := range warnings {
		c.Log.Warn().
			Str("source", name).
			Str("feature", w.Feature).
			Str("scenario", w.Scenario).
			Int("line", w.Line).
			Str("step", w.Text).
			Msg("unrecognized step")
	}

	for _, f := range files {
		path, err := c.Sink.Write(f.Name, f.Content)
		if err != nil {
			return result, fmt.Errorf("writing %s: %w", f.Name, err)
		}
		c.Log.Info().Str("path", path).Str("class", f.Class).Msg("generated test file")
		result.Files = append(result.Files, path)
	}

	return result, nil
}
