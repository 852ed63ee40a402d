package log

import (
	"fmt"
	"sync"
)

// nullLogger is a logger that does nothing.
type nullLogger struct{}

func (n nullLogger) Debugf(format string, args ...interface{}) {
}

func (n nullLogger) Infof(format string, args ...interface{}) {
}

func (n nullLogger) Warnf(format string, args ...interface{}) {
}

func (n nullLogger) Errorf(format string, args ...interface{}) {
}

// NewNullLogger returns a logger that does nothing.
func NewNullLogger() Logger {
	return &nullLogger{}
}

// Recorder is a Logger that keeps every warning and error it is given,
// so that tests can assert on conditions that are otherwise only logged.
type Recorder struct {
	nullLogger

	mu       sync.Mutex
	Warnings []string
	Errors   []string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Warnf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Recorder) Errorf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}
