// Package notes persists user notes as plain text, one note per line.
package notes

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Store is an append-only line store. Each line looks like
// [2006-01-02 15:04] note body. Prior entries are never rewritten;
// appends go through O_APPEND so a crashed write cannot clobber the
// rest of the file.
type Store struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Append writes one timestamped note line.
func (s *Store) Append(body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open notes: %w", err)
	}
	defer f.Close()

	ts := s.now().Format("2006-01-02 15:04")
	if _, err := fmt.Fprintf(f, "[%s] %s\n", ts, body); err != nil {
		return fmt.Errorf("append note: %w", err)
	}
	return nil
}

// LastN returns the final n note lines in chronological order,
// newest last. A missing or empty file yields no lines.
func (s *Store) LastN(n int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return nil, nil
	}

	lines := strings.Split(content, "\n")
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}
