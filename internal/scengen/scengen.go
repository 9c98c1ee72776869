// Package scengen asks a language model to write Given/When/Then scenarios
// for a user story and a page's markup.
package scengen

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/ollama/ollama/api"
	"github.com/rs/zerolog"
)

//go:embed prompt.tmpl
var defaultPrompt string

// ErrMissingInput is returned when the story or the markup is blank.
var ErrMissingInput = errors.New("user story and HTML code are both required")

// Chatter is the part of the Ollama client the generator uses.
type Chatter interface {
	Chat(ctx context.Context, req *api.ChatRequest, fn api.ChatResponseFunc) error
}

// PromptData fills the prompt template.
type PromptData struct {
	UserStory string
	HTMLCode  string
}

type Generator struct {
	Client   Chatter
	Model    string
	Template *template.Template
	Log      zerolog.Logger
}

func NewGenerator(client Chatter, model string, tmpl *template.Template, log zerolog.Logger) *Generator {
	return &Generator{Client: client, Model: model, Template: tmpl, Log: log}
}

// NewClient connects to host, or to OLLAMA_HOST when host is empty.
func NewClient(host string) (*api.Client, error) {
	if host == "" {
		return api.ClientFromEnvironment()
	}
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("parsing llm host %q: %w", host, err)
	}
	return api.NewClient(base, http.DefaultClient), nil
}

// LoadTemplate parses the prompt template at path, or the built-in one when
// path is empty.
func LoadTemplate(path string) (*template.Template, error) {
	text := defaultPrompt
	name := "prompt"
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading prompt template: %w", err)
		}
		text = string(data)
		name = filepath.Base(path)
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing prompt template: %w", err)
	}
	return tmpl, nil
}

// Prompt renders the template for one request.
func (g *Generator) Prompt(story, html string) (string, error) {
	var b strings.Builder
	data := PromptData{UserStory: strings.TrimSpace(story), HTMLCode: strings.TrimSpace(html)}
	if err := g.Template.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}
	return b.String(), nil
}

// Generate sends one non-streaming chat request and returns the scenario
// text. There are no retries; ctx bounds the request.
func (g *Generator) Generate(ctx context.Context, story, html string) (string, error) {
	if strings.TrimSpace(story) == "" || strings.TrimSpace(html) == "" {
		return "", ErrMissingInput
	}

	prompt, err := g.Prompt(story, html)
	if err != nil {
		return "", err
	}

	stream := false
	req := &api.ChatRequest{
		Model:    g.Model,
		Messages: []api.Message{{Role: "user", Content: prompt}},
		Stream:   &stream,
	}

	g.Log.Debug().Str("model", g.Model).Int("prompt_bytes", len(prompt)).Msg("requesting scenarios")

	var content strings.Builder
	err = g.Client.Chat(ctx, req, func(resp api.ChatResponse) error {
		content.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to reach the model %s: %w", g.Model, err)
	}

	text := strings.TrimSpace(content.String())
	if text == "" {
		return "", fmt.Errorf("model %s returned an empty response", g.Model)
	}

	g.Log.Debug().Str("model", g.Model).Int("response_bytes", len(text)).Msg("received scenarios")
	return text, nil
}

// ErrorText renders a generation failure the way the form shows it.
func ErrorText(err error) string {
	return "[ERROR] " + err.Error()
}

// Save writes generated scenario text to path, creating parent directories.
func Save(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("saving scenarios: %w", err)
	}
	return nil
}
