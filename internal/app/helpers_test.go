package app

import (
	"bytes"
	"os"
	"sync"
	"testing"
	"time"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// fakeClock advances only when slept on, plus a fixed step per Now call to
// stand in for compute time.
type fakeClock struct {
	now   time.Time
	step  time.Duration
	slept []time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), step: step}
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

// setupAppTest creates an App with a fake clock, capturing report output and
// debug-level logs separately.
func setupAppTest(t *testing.T, cfg Config, clock Clock) (*App, *bytes.Buffer, *SafeBuffer) {
	t.Helper()

	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.Pause == 0 {
		cfg.Pause = MinPause
	}

	out := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}
	testApp := NewApp(out, logBuffer, &cfg, WithClock(clock))

	t.Cleanup(func() {
		if os.Getenv("CAMELBACK_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, out, logBuffer
}

func callerArgs(rest ...string) []string {
	return append([]string{"camelback", "0", "5.0", "2147483647", "-1"}, rest...)
}
