package parser

import (
	"path/filepath"
	"strings"
)

var stepKeywords = []string{"Given", "When", "Then", "And"}

// Parse splits scenario text into features. Scenarios that appear before any
// Feature: line belong to a feature named after filename. Lines that are not
// headers or steps are dropped. Returns ErrEmptyInput if no Scenario: header
// is present.
func Parse(filename string, content []byte) ([]Feature, error) {
	lines := strings.Split(string(content), "\n")

	var (
		features []Feature
		feature  *Feature
		scenario *Scenario
		found    bool
	)

	flushScenario := func() {
		if scenario != nil {
			feature.Scenarios = append(feature.Scenarios, *scenario)
			scenario = nil
		}
	}
	flushFeature := func() {
		flushScenario()
		if feature != nil && len(feature.Scenarios) > 0 {
			features = append(features, *feature)
		}
		feature = nil
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "Feature:"):
			flushFeature()
			name := strings.TrimSpace(strings.TrimPrefix(trimmed, "Feature:"))
			if name == "" {
				name = filenameWithoutExt(filename)
			}
			feature = &Feature{Name: name, Line: i + 1}

		case strings.HasPrefix(trimmed, "Scenario:"):
			flushScenario()
			if feature == nil {
				feature = &Feature{Name: filenameWithoutExt(filename)}
			}
			scenario = &Scenario{
				Name: strings.TrimSpace(strings.TrimPrefix(trimmed, "Scenario:")),
				Line: i + 1,
			}
			found = true

		default:
			// Steps outside a scenario have nowhere to go
			keyword, ok := stepKeyword(trimmed)
			if !ok || scenario == nil {
				continue
			}
			scenario.Steps = append(scenario.Steps, Step{
				Keyword: keyword,
				Text:    trimmed,
				Line:    i + 1,
			})
		}
	}
	flushFeature()

	if !found {
		return nil, ErrEmptyInput
	}
	return features, nil
}

func stepKeyword(trimmed string) (string, bool) {
	for _, kw := range stepKeywords {
		if strings.HasPrefix(trimmed, kw) {
			return kw, true
		}
	}
	return "", false
}

func filenameWithoutExt(filename string) string {
	if filename == "" {
		return ""
	}
	name := filepath.Base(filename)
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}
