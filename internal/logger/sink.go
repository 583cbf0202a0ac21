// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// DefaultFilePrefix is the prefix of the log file created by Configure.
	DefaultFilePrefix = "openevolve"

	logDirPermissions  = 0o755
	logFilePermissions = 0o644
)

var (
	// ErrConfigure wraps every I/O failure raised while configuring a sink.
	ErrConfigure = errors.New("logging sink configuration failed")
)

// destination is a single output attached to a Sink.
type destination struct {
	writer io.Writer
	// closer is set only for outputs opened by the sink itself.
	closer io.Closer
	path   string
}

// Sink is the shared logging context: a severity threshold and an ordered list of destinations.
// A Sink is safe for concurrent use.
type Sink struct {
	mu           sync.Mutex
	level        Level
	destinations []*destination

	timeFn     func() time.Time
	filePrefix string
	metrics    *Metrics
}

// SinkOption customizes a Sink at construction time.
type SinkOption func(*Sink)

// WithTimeFn sets the clock used for record and file name timestamps.
func WithTimeFn(timeFn func() time.Time) SinkOption {
	return func(s *Sink) {
		if timeFn != nil {
			s.timeFn = timeFn
		}
	}
}

// WithFilePrefix sets the prefix of the log file created by Configure.
func WithFilePrefix(prefix string) SinkOption {
	return func(s *Sink) {
		if prefix != "" {
			s.filePrefix = prefix
		}
	}
}

// WithMetrics makes the sink count configured, written and dropped lines.
func WithMetrics(metrics *Metrics) SinkOption {
	return func(s *Sink) {
		s.metrics = metrics
	}
}

// NewSink returns an unconfigured sink with a DEBUG threshold and no destinations.
func NewSink(opts ...SinkOption) *Sink {
	sink := &Sink{
		level:      DEBUG,
		timeFn:     time.Now,
		filePrefix: DefaultFilePrefix,
	}

	for _, opt := range opts {
		opt(sink)
	}
	return sink
}

// Configure replaces the whole sink configuration. Every attached destination is removed,
// the threshold is set from level and, when directory is not empty, a new file named
// <prefix>_<YYYYMMDD_HHMMSS>.log is created inside it and attached.
func (s *Sink) Configure(directory, level string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	closeErr := s.resetDestinations()
	s.level = LevelFromString(level)
	s.metrics.configured()

	if directory == "" {
		return closeErr
	}

	if err := os.MkdirAll(directory, logDirPermissions); err != nil {
		return errors.Join(closeErr, fmt.Errorf("%w: creating directory %q: %w", ErrConfigure, directory, err))
	}

	fileName := fmt.Sprintf("%s_%s.log", s.filePrefix, s.timeFn().Format(FileTimeLayout))
	path := filepath.Join(directory, fileName)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions)
	if err != nil {
		return errors.Join(closeErr, fmt.Errorf("%w: opening file %q: %w", ErrConfigure, path, err))
	}

	s.destinations = append(s.destinations, &destination{writer: file, closer: file, path: path})
	return closeErr
}

// AddConsole attaches writer as a console destination. The sink never closes it.
func (s *Sink) AddConsole(writer io.Writer) {
	if writer == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.destinations = append(s.destinations, &destination{writer: writer})
}

// Emit writes the record to every destination unless its level is below the threshold.
// Write failures are ignored.
func (s *Sink) Emit(record Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.Level < s.level {
		s.metrics.dropped(record.Level)
		return
	}

	line := FormatRecord(record) + "\n"
	for _, dest := range s.destinations {
		_, _ = io.WriteString(dest.writer, line)
	}
	s.metrics.written(record.Level)
}

// Level returns the current threshold.
func (s *Sink) Level() Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// SetLevel changes the threshold without touching the destinations.
func (s *Sink) SetLevel(level Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
}

// Enabled reports whether a record at level would be written.
func (s *Sink) Enabled(level Level) bool {
	return level >= s.Level()
}

// FilePath returns the path of the attached log file, or an empty string.
func (s *Sink) FilePath() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, dest := range s.destinations {
		if dest.path != "" {
			return dest.path
		}
	}
	return ""
}

// Destinations returns the number of attached destinations.
func (s *Sink) Destinations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.destinations)
}

// Close detaches every destination and closes the files opened by the sink.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resetDestinations()
}

func (s *Sink) now() time.Time {
	return s.timeFn()
}

// resetDestinations must be called with the lock held.
func (s *Sink) resetDestinations() error {
	var errs []error
	for _, dest := range s.destinations {
		if dest.closer == nil {
			continue
		}
		if err := dest.closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	s.destinations = nil
	return errors.Join(errs...)
}
