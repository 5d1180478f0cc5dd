package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/tpvasconcelos/maurice/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Info("cache hit", "key", "a/b/c")

	out := buf.String()
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("expected INFO level in output, got: %s", out)
	}
	if !strings.Contains(out, "cache hit") {
		t.Errorf("expected message in output, got: %s", out)
	}
	if !strings.Contains(out, "key=a/b/c") {
		t.Errorf("expected key attribute in output, got: %s", out)
	}
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Warn("ignoring malformed metadata descriptor", "dir", "/tmp/x")

	out := buf.String()
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("expected WARN level in output, got: %s", out)
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Error(errors.New("disk full"))

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("expected ERROR level in output, got: %s", out)
	}
	if !strings.Contains(out, "disk full") {
		t.Errorf("expected error text in output, got: %s", out)
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Info("msg", "n", i)
		}()
	}
	wg.Wait()

	if n := strings.Count(buf.String(), "level=INFO"); n != 10 {
		t.Errorf("expected 10 log lines, got %d", n)
	}
}
