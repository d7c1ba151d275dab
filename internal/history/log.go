package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ajay-constructions/estimator/internal/models"
)

// Log is an append-only JSONL record of every successful quote, shared by
// all sessions. It is never truncated; the display-facing history windows
// live in the sessions themselves.
type Log struct {
	path string
	mu   sync.Mutex
}

// NewLog creates a quote log backed by the file at path.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Path returns the location of the underlying log file.
func (l *Log) Path() string {
	return l.path
}

// Append writes quote as one JSON line at the end of the log.
func (l *Log) Append(quote models.Quote) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open quote log: %w", err)
	}
	defer file.Close()

	line, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to encode quote: %w", err)
	}

	if _, err := file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append quote: %w", err)
	}

	return nil
}

// Load reads every quote recorded in the log, oldest first. A missing log
// file yields an empty slice.
func (l *Log) Load() ([]models.Quote, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open quote log: %w", err)
	}
	defer file.Close()

	var quotes []models.Quote
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var quote models.Quote
		if err := json.Unmarshal(line, &quote); err != nil {
			return nil, fmt.Errorf("failed to parse quote log line %d: %w", lineNum, err)
		}
		quotes = append(quotes, quote)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read quote log: %w", err)
	}

	return quotes, nil
}
