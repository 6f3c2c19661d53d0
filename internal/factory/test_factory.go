package factory

import (
	"fmt"
	"strings"
	"time"

	"github.com/mcoot/wordguess/internal/dependencies/mocks"
)

// TestWords is the candidate list used by NewTestApp
var TestWords = []string{"CAT", "BANANA", "PYTHON", "KEYBOARD"}

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(Config{Words: TestWords}, mockClock, mockRandom)
	if err != nil {
		panic(fmt.Sprintf("test app: %v", err))
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueueWord makes the next Start pick word, which must be one of TestWords
func (t *TestApp) QueueWord(word string) {
	if !t.WordList.Contains(word) {
		panic(fmt.Sprintf("test app: %q is not a test word", word))
	}
	for i, w := range t.WordList.Words() {
		if w == strings.ToUpper(word) {
			t.MockRandom.QueueIntn(i)
			return
		}
	}
}
