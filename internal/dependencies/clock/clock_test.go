package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/wordguess/internal/dependencies/clock"
	"github.com/mcoot/wordguess/internal/dependencies/mocks"
)

func TestElapsed(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clk := mocks.NewMockClock(start)
	clk.Advance(90 * time.Second)

	assert.Equal(t, 90*time.Second, clock.Elapsed(clk, start))
}

func TestElapsedZeroStart(t *testing.T) {
	assert.Equal(t, time.Duration(0), clock.Elapsed(clock.New(), time.Time{}))
}
