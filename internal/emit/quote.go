package emit

import "strings"

var pyEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// PyString renders s as a single-quoted Python string literal.
func PyString(s string) string {
	return "'" + pyEscaper.Replace(s) + "'"
}

// PyComment flattens s onto one line so it can follow a # marker.
func PyComment(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
