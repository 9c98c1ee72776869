// Package emit renders classified steps as Selenium unittest code.
package emit

import (
	"fmt"
	"strings"

	"github.com/chriserin/gwt/internal/step"
)

const (
	DefaultWaitTimeout  = 10
	DefaultAlertTimeout = 5
	DefaultErrorMarker  = "invalid"
)

// ErrorIndicatorSelector finds an error banner by class or by ARIA role.
const ErrorIndicatorSelector = `.alert.alert-danger[role="alert"], .alert-danger, div[role="alert"]`

// Emitter turns steps into method-body lines. Lines are relative to the
// method body; nested blocks carry their own four-space indentation.
type Emitter struct {
	WaitTimeout  int    // seconds for self.wait, created in setUp
	AlertTimeout int    // seconds to look for the error indicator
	ErrorMarker  string // text the error indicator must contain
}

func New() Emitter {
	return Emitter{
		WaitTimeout:  DefaultWaitTimeout,
		AlertTimeout: DefaultAlertTimeout,
		ErrorMarker:  DefaultErrorMarker,
	}
}

// Emit returns the code for st. It never fails; steps it cannot express come
// back as a comment quoting the original text.
func (e Emitter) Emit(st step.Step) []string {
	switch st.Kind {
	case step.Navigate:
		return []string{
			"self.start_url = " + PyString(st.URL),
			"self.driver.get(self.start_url)",
		}
	case step.Fill:
		return []string{
			fmt.Sprintf("field = self.wait.until(EC.presence_of_element_located((By.ID, %s)))", PyString(st.ID)),
			"field.clear()",
			fmt.Sprintf("field.send_keys(%s)", PyString(st.Value)),
		}
	case step.Click:
		return []string{
			fmt.Sprintf("self.wait.until(EC.element_to_be_clickable((By.ID, %s))).click()", PyString(st.ID)),
		}
	case step.AssertURLChanged:
		return []string{
			"self.wait.until(lambda d: d.current_url != self.start_url)",
			"self.assertNotEqual(self.driver.current_url, self.start_url)",
		}
	case step.AssertErrorShown:
		return e.errorShown()
	default:
		return []string{"# Unrecognized step: " + PyComment(st.Raw)}
	}
}

func (e Emitter) errorShown() []string {
	marker := strings.ToLower(e.ErrorMarker)
	return []string{
		"self.wait.until(lambda d: d.current_url == self.start_url)",
		"self.assertEqual(self.driver.current_url, self.start_url)",
		"alert_found = False",
		"try:",
		fmt.Sprintf("    alert = WebDriverWait(self.driver, %d).until(", e.AlertTimeout),
		"        EC.presence_of_element_located((",
		"            By.CSS_SELECTOR, " + PyString(ErrorIndicatorSelector),
		"        ))",
		"    )",
		fmt.Sprintf("    if %s in alert.text.lower():", PyString(marker)),
		"        alert_found = True",
		"except (NoSuchElementException, TimeoutException):",
		"    pass",
		fmt.Sprintf("self.assertTrue(alert_found, %s)",
			PyString(fmt.Sprintf(`error indicator containing "%s" not found`, marker))),
	}
}
