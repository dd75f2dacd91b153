// Package testutils contains helpers for testing patloc itself.
package testutils

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// SimpleLogrusHook implements logrus.Hook and captures emitted entries so
// tests can assert on what was logged.
type SimpleLogrusHook struct {
	HookedLevels []logrus.Level
	mutex        sync.Mutex
	entries      []logrus.Entry
}

// Levels returns the levels the hook is registered for.
func (h *SimpleLogrusHook) Levels() []logrus.Level {
	return h.HookedLevels
}

// Fire stores the entry.
func (h *SimpleLogrusHook) Fire(e *logrus.Entry) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.entries = append(h.entries, *e)
	return nil
}

// Drain returns the captured entries and clears the buffer.
func (h *SimpleLogrusHook) Drain() []logrus.Entry {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	res := h.entries
	h.entries = nil
	return res
}

// Lines returns the messages of the captured entries and clears the buffer.
func (h *SimpleLogrusHook) Lines() []string {
	entries := h.Drain()
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = entry.Message
	}
	return lines
}

// NewLoggerWithHook returns a discarded-output logger with a hook capturing
// every level, ready for assertions.
func NewLoggerWithHook() (*logrus.Logger, *SimpleLogrusHook) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)
	hook := &SimpleLogrusHook{HookedLevels: logrus.AllLevels}
	logger.AddHook(hook)
	return logger, hook
}
