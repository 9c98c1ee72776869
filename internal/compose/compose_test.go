package compose

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/gwt/internal/emit"
	"github.com/chriserin/gwt/internal/parser"
)

var updateGolden = os.Getenv("UPDATE_GOLDEN") == "1"

func parse(t *testing.T, content string) []parser.Feature {
	t.Helper()
	features, err := parser.Parse("scenarios.txt", []byte(content))
	require.NoError(t, err)
	return features
}

func TestCompose_Golden(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "login.txt"))
	require.NoError(t, err)
	features, err := parser.Parse("login.txt", content)
	require.NoError(t, err)

	files, warnings := NewComposer().Compose(features)
	require.Len(t, files, 1)
	assert.Equal(t, "test_userlogintodashboard.py", files[0].Name)
	assert.Equal(t, "UserLoginToDashboard", files[0].Class)

	require.Len(t, warnings, 1)
	assert.Equal(t, "Given the browser cache is empty", warnings[0].Text)
	assert.Equal(t, "Login attempt with invalid password", warnings[0].Scenario)
	assert.Equal(t, 11, warnings[0].Line)

	goldenPath := filepath.Join("testdata", "test_userlogintodashboard.golden.py")
	if updateGolden {
		require.NoError(t, os.WriteFile(goldenPath, []byte(files[0].Content), 0o644))
		return
	}
	golden, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "run with UPDATE_GOLDEN=1 to create it")
	assert.Equal(t, string(golden), files[0].Content)
}

func TestCompose_NavigateFillErrorScenario(t *testing.T) {
	features := parse(t, "Scenario: Login\n"+
		"Given the user is on 'https://x.test/login'\n"+
		"When user fills the input field with id 'u' with value 'bob'\n"+
		"Then error message is shown\n")

	files, warnings := NewComposer().Compose(features)
	require.Len(t, files, 1)
	assert.Empty(t, warnings)

	content := files[0].Content
	assert.Equal(t, 1, strings.Count(content, "    def test_"))

	nav := strings.Index(content, "self.start_url = 'https://x.test/login'")
	fill := strings.Index(content, "EC.presence_of_element_located((By.ID, 'u'))")
	sendKeys := strings.Index(content, "field.send_keys('bob')")
	assertErr := strings.Index(content, "self.assertEqual(self.driver.current_url, self.start_url)")
	require.NotEqual(t, -1, nav)
	assert.Less(t, nav, fill)
	assert.Less(t, fill, sendKeys)
	assert.Less(t, sendKeys, assertErr)
}

func TestCompose_OneFilePerFeature(t *testing.T) {
	features := parse(t, `Scenario: Implicit
Given x
Feature: Login
Scenario: A
Given y
Feature: Checkout
Scenario: B
Given z
`)
	files, _ := NewComposer().Compose(features)
	require.Len(t, files, 3)
	assert.Equal(t, "test_scenarios.py", files[0].Name)
	assert.Equal(t, "test_login.py", files[1].Name)
	assert.Equal(t, "test_checkout.py", files[2].Name)
}

func TestCompose_CollidingNamesGetSuffix(t *testing.T) {
	features := parse(t, `Feature: Log in
Scenario: A
Given x
Feature: Log-In
Scenario: B
Given y
`)
	files, _ := NewComposer().Compose(features)
	require.Len(t, files, 2)
	assert.Equal(t, "test_login.py", files[0].Name)
	assert.Equal(t, "test_login_2.py", files[1].Name)
	assert.Equal(t, "LogIn", files[1].Class)
}

func TestCompose_ZeroStepScenarioIsPassStub(t *testing.T) {
	features := parse(t, "Feature: F\nScenario: Nothing yet\nScenario: Next\nGiven the user is on 'https://x.test'\n")
	files, _ := NewComposer().Compose(features)
	require.Len(t, files, 1)
	assert.Contains(t, files[0].Content, "    def test_1_nothing_yet(self):\n        pass\n\n    def test_2_next(self):\n")
}

func TestCompose_AllUnrecognizedScenarioIsSkipped(t *testing.T) {
	features := parse(t, `Feature: Login
Scenario: Warm
Given the system is warmed up
And the cache is 'hot'
Scenario: Real
Given the user is on 'https://x.test/login'
`)
	files, warnings := NewComposer().Compose(features)
	require.Len(t, files, 1)
	require.Len(t, warnings, 2)

	assert.Contains(t, files[0].Content, `    def test_1_warm(self):
        # Unrecognized step: Given the system is warmed up
        # Unrecognized step: And the cache is 'hot'
        self.skipTest('no recognized steps: Given the system is warmed up')

    def test_2_real(self):
        self.start_url = 'https://x.test/login'
`)
}

func TestCompose_EveryMethodHasAStatement(t *testing.T) {
	features := parse(t, `Feature: Mixed
Scenario: Empty
Scenario: Comments only
Given the moon is full
Scenario: Partly known
Given the moon is full
Then the user is redirected to the dashboard
`)
	files, _ := NewComposer().Compose(features)
	require.Len(t, files, 1)

	lines := strings.Split(files[0].Content, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, "    def ") {
			continue
		}
		statement := false
		for _, body := range lines[i+1:] {
			if !strings.HasPrefix(body, "        ") {
				break
			}
			if !strings.HasPrefix(strings.TrimSpace(body), "#") {
				statement = true
				break
			}
		}
		assert.True(t, statement, "method without a statement: %s", line)
	}
}

func TestCompose_MethodsFollowSourceOrder(t *testing.T) {
	features := parse(t, "Scenario: Zeta\nGiven a\nScenario: Alpha\nGiven b\n")
	files, _ := NewComposer().Compose(features)
	content := files[0].Content
	assert.Less(t, strings.Index(content, "test_1_zeta"), strings.Index(content, "test_2_alpha"))
}

func TestCompose_UnrecognizedStepDoesNotAbort(t *testing.T) {
	features := parse(t, `Scenario: First
Given the system is warmed up
And the user clicks the button with id 'go'
Scenario: Second
Then the user goes to the dashboard
`)
	files, warnings := NewComposer().Compose(features)
	require.Len(t, files, 1)
	require.Len(t, warnings, 1)
	assert.Equal(t, 2, warnings[0].Line)
	assert.Equal(t, `line 2: unrecognized step "Given the system is warmed up" in scenario "First"`, warnings[0].String())

	content := files[0].Content
	assert.Contains(t, content, "        # Unrecognized step: Given the system is warmed up\n")
	assert.Contains(t, content, "(By.ID, 'go'))).click()")
	assert.Contains(t, content, "self.assertNotEqual(self.driver.current_url, self.start_url)")
}

func TestCompose_DriverAndTimeout(t *testing.T) {
	c := Composer{
		Emitter: emit.Emitter{WaitTimeout: 30, AlertTimeout: 2, ErrorMarker: "invalid"},
		Driver:  "Firefox",
	}
	files, _ := c.Compose(parse(t, "Scenario: A\nGiven x\n"))
	assert.Contains(t, files[0].Content, "self.driver = webdriver.Firefox()")
	assert.Contains(t, files[0].Content, "self.wait = WebDriverWait(self.driver, 30)")

	c.Driver = "netscape"
	files, _ = c.Compose(parse(t, "Scenario: A\nGiven x\n"))
	assert.Contains(t, files[0].Content, "webdriver.Chrome()")
}

func TestCompose_Deterministic(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "login.txt"))
	require.NoError(t, err)

	first, _ := NewComposer().Compose(parse(t, string(content)))
	second, _ := NewComposer().Compose(parse(t, string(content)))
	assert.Equal(t, first, second)
}
