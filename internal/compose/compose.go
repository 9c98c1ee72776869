// Package compose assembles Selenium unittest modules from parsed features
// and writes them through an output sink.
package compose

import (
	"fmt"
	"strings"

	"github.com/chriserin/gwt/internal/emit"
	"github.com/chriserin/gwt/internal/parser"
	"github.com/chriserin/gwt/internal/step"
)

const indent = "    "

// Drivers maps a configured browser to its selenium webdriver class.
var Drivers = map[string]string{
	"chrome":  "Chrome",
	"firefox": "Firefox",
	"edge":    "Edge",
}

const header = `import unittest
from selenium import webdriver
from selenium.common.exceptions import NoSuchElementException, TimeoutException
from selenium.webdriver.common.by import By
from selenium.webdriver.support.ui import WebDriverWait
from selenium.webdriver.support import expected_conditions as EC
`

// GeneratedFile is one test module ready to be written.
type GeneratedFile struct {
	Name    string // file name relative to the output directory
	Class   string
	Content string
}

// UnrecognizedStepWarning records a step that was emitted as a comment.
// It never aborts a conversion.
type UnrecognizedStepWarning struct {
	Feature  string
	Scenario string
	Line     int
	Text     string
}

func (w UnrecognizedStepWarning) String() string {
	return fmt.Sprintf("line %d: unrecognized step %q in scenario %q", w.Line, w.Text, w.Scenario)
}

type Composer struct {
	Emitter emit.Emitter
	Driver  string // key of Drivers, chrome when empty
}

func NewComposer() Composer {
	return Composer{Emitter: emit.New(), Driver: "chrome"}
}

// Compose renders one file per feature. Output depends only on the input, so
// identical features always produce identical files and names.
func (c Composer) Compose(features []parser.Feature) ([]GeneratedFile, []UnrecognizedStepWarning) {
	var (
		files    []GeneratedFile
		warnings []UnrecognizedStepWarning
	)
	names := uniqueNames{}

	for _, f := range features {
		class := ClassName(f.Name)
		content, ws := c.render(class, f)
		files = append(files, GeneratedFile{
			Name:    names.next(FileName(class)),
			Class:   class,
			Content: content,
		})
		warnings = append(warnings, ws...)
	}
	return files, warnings
}

func (c Composer) render(class string, f parser.Feature) (string, []UnrecognizedStepWarning) {
	var warnings []UnrecognizedStepWarning
	var b strings.Builder

	b.WriteString(header)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "class %s(unittest.TestCase):\n\n", class)

	writeMethod(&b, "setUp", []string{
		fmt.Sprintf("self.driver = webdriver.%s()", c.driverClass()),
		fmt.Sprintf("self.wait = WebDriverWait(self.driver, %d)", c.Emitter.WaitTimeout),
	})
	writeMethod(&b, "tearDown", []string{"self.driver.quit()"})

	for i, sc := range f.Scenarios {
		var body []string
		for _, st := range sc.Steps {
			classified := step.Classify(st.Text)
			if classified.Kind == step.Unrecognized {
				warnings = append(warnings, UnrecognizedStepWarning{
					Feature:  f.Name,
					Scenario: sc.Name,
					Line:     st.Line,
					Text:     classified.Raw,
				})
			}
			body = append(body, c.Emitter.Emit(classified)...)
		}
		writeMethod(&b, MethodName(i+1, sc.Name), closeBody(sc, body))
	}

	b.WriteString("\nif __name__ == '__main__':\n")
	b.WriteString(indent + "unittest.main()\n")
	return b.String(), warnings
}

// closeBody makes sure a method body holds at least one statement. A scenario
// with no steps becomes a pass stub; one whose steps are all comments is
// skipped at run time naming its first step.
func closeBody(sc parser.Scenario, body []string) []string {
	if len(sc.Steps) == 0 {
		return []string{"pass"}
	}
	for _, line := range body {
		if !strings.HasPrefix(line, "#") {
			return body
		}
	}
	reason := "no recognized steps: " + emit.PyComment(sc.Steps[0].Text)
	return append(body, "self.skipTest("+emit.PyString(reason)+")")
}

// writeMethod writes a method and its trailing blank separator line.
func writeMethod(b *strings.Builder, name string, body []string) {
	fmt.Fprintf(b, "%sdef %s(self):\n", indent, name)
	for _, line := range body {
		b.WriteString(indent + indent + line + "\n")
	}
	b.WriteString("\n")
}

func (c Composer) driverClass() string {
	if class, ok := Drivers[strings.ToLower(c.Driver)]; ok {
		return class
	}
	return Drivers["chrome"]
}
