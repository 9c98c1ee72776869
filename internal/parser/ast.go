package parser

import "errors"

// ErrEmptyInput is returned by Parse when the text has no Scenario: header.
var ErrEmptyInput = errors.New("empty input: no Scenario: header found")

// Feature groups the scenarios that end up in one generated test file.
type Feature struct {
	Name      string
	Line      int // 1-based line of the Feature: header, 0 when named after the file
	Scenarios []Scenario
}

// Scenario is one named test case with its raw step lines in source order.
type Scenario struct {
	Name  string
	Line  int // 1-based line number of Scenario: line
	Steps []Step
}

type Step struct {
	Keyword string // Given, When, Then, And
	Text    string // trimmed line, keyword included
	Line    int
}

// ScenarioCount returns the number of scenarios across all features.
func ScenarioCount(features []Feature) int {
	n := 0
	for _, f := range features {
		n += len(f.Scenarios)
	}
	return n
}
