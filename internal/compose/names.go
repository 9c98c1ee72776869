package compose

import (
	"fmt"
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// words splits free text on anything that is not an ASCII letter or digit.
func words(s string) []string {
	return strings.Fields(nonAlnum.ReplaceAllString(s, " "))
}

// ClassName derives a Python class name from a feature name:
// "User login to dashboard" becomes "UserLoginToDashboard".
func ClassName(feature string) string {
	var b strings.Builder
	for _, w := range words(feature) {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}
	name := b.String()
	switch {
	case name == "":
		return "GeneratedFeature"
	case name[0] >= '0' && name[0] <= '9':
		return "Feature" + name
	}
	return name
}

// Slug lowercases the words of s and joins them with underscores.
func Slug(s string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, "_")
}

// MethodName returns the test method for the index-th (1-based) scenario.
func MethodName(index int, scenario string) string {
	if slug := Slug(scenario); slug != "" {
		return fmt.Sprintf("test_%d_%s", index, slug)
	}
	return fmt.Sprintf("test_%d", index)
}

// FileName returns the module file name for a class, e.g. test_userlogin.py.
func FileName(className string) string {
	return "test_" + strings.ToLower(nonAlnum.ReplaceAllString(className, "")) + ".py"
}

// uniqueNames hands out file names, suffixing repeats with _2, _3, ...
type uniqueNames map[string]int

func (u uniqueNames) next(name string) string {
	u[name]++
	n := u[name]
	if n == 1 {
		return name
	}
	stem := strings.TrimSuffix(name, ".py")
	for {
		candidate := fmt.Sprintf("%s_%d.py", stem, n)
		if _, taken := u[candidate]; !taken {
			u[candidate] = 1
			return candidate
		}
		n++
	}
}
