package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Source provides an iterator over parsed log records.
// Implementations must be safe for sequential access (not concurrent).
type Source interface {
	// Next returns the next parsed record in file-append order.
	// Returns io.EOF when no more records are available.
	// Malformed lines are skipped.
	Next(ctx context.Context) (*Record, error)

	// Close releases any resources held by the source.
	Close() error
}

// FileSource implements Source for a single structured log file.
//
// Parsing is best-effort: a line that is not valid JSON, lacks a timestamp,
// or has an unparseable timestamp is skipped rather than failing the read.
// The file may be appended to by a concurrent writer, so a truncated
// in-flight final line is expected and tolerated.
type FileSource struct {
	path  string
	start time.Time // zero means unbounded
	end   time.Time // zero means unbounded

	opened  bool
	missing bool
	file    *os.File
	scanner *bufio.Scanner
}

// SourceOption configures a FileSource.
type SourceOption func(*FileSource)

// WithTimeRange limits the source to records with start <= timestamp <= end.
// A zero start or end leaves that side of the window open.
func WithTimeRange(start, end time.Time) SourceOption {
	return func(s *FileSource) {
		s.start = start
		s.end = end
	}
}

// NewFileSource creates a Source reading from the given structured log file.
// A missing file yields an empty source, not an error.
func NewFileSource(path string, opts ...SourceOption) *FileSource {
	s := &FileSource{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next returns the next in-range record.
// Returns io.EOF once the file is exhausted (or was never there).
func (s *FileSource) Next(ctx context.Context) (*Record, error) {
	if !s.opened {
		if err := s.open(); err != nil {
			return nil, err
		}
	}
	if s.missing {
		return nil, io.EOF
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading %s: %w", s.path, err)
			}
			return nil, io.EOF
		}

		rec, err := ParseLine(s.scanner.Bytes())
		if err != nil {
			// Malformed or truncated line, skip it.
			continue
		}

		if !s.start.IsZero() && rec.Timestamp.Before(s.start) {
			continue
		}
		if !s.end.IsZero() && rec.Timestamp.After(s.end) {
			continue
		}

		return rec, nil
	}
}

// Close releases resources.
func (s *FileSource) Close() error {
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		s.scanner = nil
		return err
	}
	return nil
}

func (s *FileSource) open() error {
	s.opened = true

	f, err := os.Open(s.path) // #nosec G304 -- log paths come from configuration
	if err != nil {
		if os.IsNotExist(err) {
			s.missing = true
			return nil
		}
		return fmt.Errorf("opening log file %s: %w", s.path, err)
	}

	s.file = f
	s.scanner = bufio.NewScanner(f)
	s.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	return nil
}

// ReadAll drains a source into a slice, preserving order.
func ReadAll(ctx context.Context, src Source) ([]*Record, error) {
	var records []*Record
	for {
		rec, err := src.Next(ctx)
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}
