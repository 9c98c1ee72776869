package compose

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Sink receives generated files. Write returns where the content ended up.
type Sink interface {
	Write(name, content string) (string, error)
}

// DirSink writes files under Dir, creating it on first use.
type DirSink struct {
	Dir string
}

func (s DirSink) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

func (s DirSink) Write(name, content string) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", s.Dir, err)
	}
	path := s.Path(name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// MemorySink keeps files in memory, keyed by name.
type MemorySink struct {
	mu    sync.Mutex
	Files map[string]string
}

func NewMemorySink() *MemorySink {
	return &MemorySink{Files: map[string]string{}}
}

func (s *MemorySink) Write(name, content string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Files[name] = content
	return name, nil
}

// Names returns the stored file names in sorted order.
func (s *MemorySink) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.Files))
	for name := range s.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
