// Package step turns one natural-language step line into a structured action.
package step

import "fmt"

// Kind identifies what a step asks the browser to do.
type Kind int

const (
	Unrecognized Kind = iota
	Navigate
	Fill
	Click
	AssertURLChanged
	AssertErrorShown
)

var kindNames = map[Kind]string{
	Unrecognized:     "unrecognized",
	Navigate:         "navigate",
	Fill:             "fill",
	Click:            "click",
	AssertURLChanged: "assert_url_changed",
	AssertErrorShown: "assert_error_shown",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Step is a classified step line. Only the fields used by Kind are set:
// URL for Navigate, ID and Value for Fill, ID for Click. Raw always holds
// the original line.
type Step struct {
	Kind  Kind
	URL   string
	ID    string
	Value string
	Raw   string
}

func (s Step) String() string {
	switch s.Kind {
	case Navigate:
		return fmt.Sprintf("navigate(url=%q)", s.URL)
	case Fill:
		return fmt.Sprintf("fill(id=%q, value=%q)", s.ID, s.Value)
	case Click:
		return fmt.Sprintf("click(id=%q)", s.ID)
	case AssertURLChanged, AssertErrorShown:
		return s.Kind.String()
	default:
		return fmt.Sprintf("unrecognized(%q)", s.Raw)
	}
}
