package reporter

import (
	"bytes"
	"io"
	"sync"

	"github.com/nelyj/command-line-reporter/pkg/errors"
)

// outputSink is where rendered lines currently go: the console stream,
// or an in-memory buffer while output is suppressed. Exactly one is
// active at a time; only the swap itself is synchronized.
type outputSink struct {
	mu      sync.Mutex
	console io.Writer
	buffer  *bytes.Buffer
}

// current returns the active destination
func (s *outputSink) current() io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buffer != nil {
		return s.buffer
	}
	return s.console
}

// suppress swaps in a fresh capture buffer, discarding any previous one
func (s *outputSink) suppress() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer = &bytes.Buffer{}
}

// capture reads the whole capture buffer and restores the console sink.
// The restore is unconditional: it happens even if reading fails.
func (s *outputSink) capture() (string, error) {
	s.mu.Lock()
	buffer := s.buffer
	defer func() {
		s.buffer = nil
		s.mu.Unlock()
	}()

	if buffer == nil {
		return "", nil
	}
	return buffer.String(), nil
}

// restore unconditionally points the sink back at the console stream
func (s *outputSink) restore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer = nil
}

// capturing reports whether output is currently being captured
func (s *outputSink) capturing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer != nil
}

// SuppressOutput redirects all report output to a fresh in-memory
// buffer until CaptureOutput or RestoreOutput is called
func (r *Reporter) SuppressOutput() {
	r.sink.suppress()
}

// CaptureOutput returns everything written since SuppressOutput and
// restores the console sink, even on error. With no capture in
// progress it returns the empty string.
func (r *Reporter) CaptureOutput() (string, error) {
	return r.sink.capture()
}

// RestoreOutput unconditionally restores the console sink, discarding
// any capture buffer without reading it
func (r *Reporter) RestoreOutput() {
	r.sink.restore()
}

// Write sends raw bytes to the active sink. Formatters use it for
// partial-line output such as progress indicator runs; everything
// line-shaped goes through Aligned instead.
func (r *Reporter) Write(p []byte) (int, error) {
	n, err := r.sink.current().Write(p)
	if err != nil {
		return n, errors.Wrap(err, errors.ErrWrite, "writing report output")
	}
	return n, nil
}
