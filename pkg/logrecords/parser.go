// Package logrecords parses files of fetched log records, the handoff format
// an upstream cloud log fetcher emits: one JSON object per line with the raw
// content, a millisecond epoch timestamp, and optional service and level tags.
package logrecords

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Record is one fetched log line, not yet persisted.
type Record struct {
	Content   string
	Timestamp time.Time
	Service   string
	Level     string
}

// rawEntry represents a raw JSONL line
type rawEntry struct {
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	Service   string `json:"service,omitempty"`
	Level     string `json:"level,omitempty"`
}

// ParseFile parses a JSONL file of fetched log records
func ParseFile(path string) (records []Record, err error) {
	file, ferr := os.Open(path)
	if ferr != nil {
		return nil, fmt.Errorf("failed to open file: %w", ferr)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	return Parse(file)
}

// Parse reads JSONL records from r. Blank lines are skipped; a malformed line
// fails the whole parse with its line number so bad input never half-loads.
func Parse(r io.Reader) ([]Record, error) {
	// Larger buffer for long log lines (10MB max)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 10*1024*1024)

	var records []Record
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var raw rawEntry
		if err := json.Unmarshal(line, &raw); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if raw.Content == "" {
			return nil, fmt.Errorf("line %d: missing content", lineNum)
		}

		records = append(records, Record{
			Content:   raw.Content,
			Timestamp: time.UnixMilli(raw.Timestamp),
			Service:   raw.Service,
			Level:     raw.Level,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	return records, nil
}
