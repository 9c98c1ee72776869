package step

import (
	"regexp"
	"strings"
)

// quoted matches a single- or double-quoted token, quotes included.
const quoted = `('[^']*'|"[^"]*")`

var (
	urlPattern        = regexp.MustCompile(`https?://[^\s'"]+`)
	leadInPathPattern = regexp.MustCompile(`(?i)the user is on\b[^'"]*` + quoted)

	fillStrictPattern = regexp.MustCompile(`(?i)\bid\s+` + quoted + `\s+with\s+value\s+` + quoted)
	fillEntersPattern = regexp.MustCompile(`(?i)\benters\s+` + quoted + `\s+(?:in|into)\b.*?\bid\s+` + quoted)
	idPattern         = regexp.MustCompile(`(?i)\bid\s+` + quoted)
	valuePattern      = regexp.MustCompile(`(?i)\bvalue\s+` + quoted)
	entersPattern     = regexp.MustCompile(`(?i)\benters\s+` + quoted)
)

var (
	successKeywords = []string{"redirect", "navigate", "dashboard", "goes to"}
	failureKeywords = []string{"error message", "invalid", "failed"}
)

// rule fires when its predicate holds for the line. A fired rule may still
// yield Unrecognized when it cannot extract its parameters; later rules are
// not consulted in that case.
type rule struct {
	kind  Kind
	match func(text, lower string) (Step, bool)
}

// rules is evaluated in order; the first rule that fires wins. Several
// predicates overlap, so the order is part of the output contract.
var rules = []rule{
	{kind: Navigate, match: matchNavigate},
	{kind: Fill, match: matchFill},
	{kind: Click, match: matchClick},
	{kind: AssertURLChanged, match: matchURLChanged},
	{kind: AssertErrorShown, match: matchErrorShown},
}

// Priority returns the kinds in the order their rules are tried.
func Priority() []Kind {
	kinds := make([]Kind, len(rules))
	for i, r := range rules {
		kinds[i] = r.kind
	}
	return kinds
}

// Classify maps a raw step line to exactly one Step. It never fails: lines no
// rule understands come back as Unrecognized carrying the original text.
func Classify(raw string) Step {
	text := strings.TrimSpace(raw)
	lower := strings.ToLower(text)

	for _, r := range rules {
		if st, ok := r.match(text, lower); ok {
			st.Raw = text
			return st
		}
	}
	return Step{Kind: Unrecognized, Raw: text}
}

func matchNavigate(text, lower string) (Step, bool) {
	if !strings.HasPrefix(lower, "given") && !strings.Contains(lower, "the user is on") {
		return Step{}, false
	}
	if u := urlPattern.FindString(text); u != "" {
		return Step{Kind: Navigate, URL: strings.TrimRight(u, ".,;:!?)")}, true
	}
	if m := leadInPathPattern.FindStringSubmatch(text); m != nil {
		if path := unquote(m[1]); path != "" {
			return Step{Kind: Navigate, URL: path}, true
		}
	}
	return Step{}, false
}

func matchFill(text, lower string) (Step, bool) {
	if !strings.Contains(lower, "input field") {
		return Step{}, false
	}

	if m := fillStrictPattern.FindStringSubmatch(text); m != nil {
		if id := unquote(m[1]); id != "" {
			return Step{Kind: Fill, ID: id, Value: unquote(m[2])}, true
		}
	}

	// value comes before the id in this phrasing
	if m := fillEntersPattern.FindStringSubmatch(text); m != nil {
		if id := unquote(m[2]); id != "" {
			return Step{Kind: Fill, ID: id, Value: unquote(m[1])}, true
		}
	}

	id, idOK := firstQuoted(idPattern, text)
	value, valueOK := firstQuoted(valuePattern, text)
	if !valueOK {
		value, valueOK = firstQuoted(entersPattern, text)
	}
	if idOK && id != "" && valueOK {
		return Step{Kind: Fill, ID: id, Value: value}, true
	}

	return Step{Kind: Unrecognized}, true
}

func matchClick(text, lower string) (Step, bool) {
	if !strings.Contains(lower, "clicks the button with id") {
		return Step{}, false
	}
	if id, ok := firstQuoted(idPattern, text); ok && id != "" {
		return Step{Kind: Click, ID: id}, true
	}
	return Step{Kind: Unrecognized}, true
}

func matchURLChanged(_, lower string) (Step, bool) {
	if strings.HasPrefix(lower, "then") && containsAny(lower, successKeywords) {
		return Step{Kind: AssertURLChanged}, true
	}
	return Step{}, false
}

func matchErrorShown(_, lower string) (Step, bool) {
	if strings.HasPrefix(lower, "then") && containsAny(lower, failureKeywords) {
		return Step{Kind: AssertErrorShown}, true
	}
	return Step{}, false
}

func firstQuoted(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return unquote(m[1]), true
}

// unquote strips the surrounding quote pair captured by the quoted pattern.
func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
