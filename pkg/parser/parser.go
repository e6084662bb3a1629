package parser

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// FileSource implements RecordSource for a JSON Lines file.
type FileSource struct {
	path string

	file    *os.File
	scanner *bufio.Scanner
	lineNum int
	entry   int
}

// NewFileSource creates a RecordSource that reads the given file.
// The file is opened on the first call to Next.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Next returns the next record, skipping blank lines.
// Returns io.EOF when the file is exhausted.
func (s *FileSource) Next(ctx context.Context) (*Record, error) {
	if s.scanner == nil {
		if err := s.open(); err != nil {
			return nil, err
		}
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
		s.lineNum++

		line := bytes.TrimSpace(s.scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		rec, err := decodeRecord(line)
		if err != nil {
			return nil, &ParseError{Source: s.path, Line: s.lineNum, Err: err}
		}

		s.entry++
		rec.Entry = s.entry
		rec.LineNum = s.lineNum
		return rec, nil
	}
}

// Close releases resources.
func (s *FileSource) Close() error {
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}

func (s *FileSource) open() error {
	f, err := os.Open(s.path) // #nosec G304 -- user-provided path is expected
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", s.path, err)
	}

	s.file = f
	s.scanner = bufio.NewScanner(f)
	s.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	return nil
}

// ReadAll drains a source into memory.
// Returns ErrNoEntries if the source yields no records.
func ReadAll(ctx context.Context, src RecordSource) ([]Record, error) {
	var records []Record
	for {
		rec, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	if len(records) == 0 {
		return nil, ErrNoEntries
	}
	return records, nil
}

// Load reads every record of the JSON Lines file at path.
func Load(ctx context.Context, path string) ([]Record, error) {
	src := NewFileSource(path)
	defer src.Close()

	return ReadAll(ctx, src)
}
