// Package potatolog provides an in-memory sink for zerolog's JSON output, so
// that the log can be shown inside the TUI.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// DefaultCapacity is the number of entries GlobalMemoryLogReaderWriter
// retains.
const DefaultCapacity = 1024

// LogEntry is a single log entry.
type LogEntry = map[string]any

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = MemoryLogReaderWriter{
	capacity: DefaultCapacity,
}

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It retains at most its capacity of entries, dropping the oldest.
type MemoryLogReaderWriter struct {
	mtx      sync.Mutex
	log      []LogEntry
	capacity int
}

// NewMemoryLogReaderWriter returns a new MemoryLogReaderWriter retaining at
// most capacity entries.
func NewMemoryLogReaderWriter(capacity int) *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{capacity: capacity}
}

// Write appends a log entry to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	if w.capacity > 0 && len(w.log) > w.capacity {
		w.log = append(w.log[:0:0], w.log[len(w.log)-w.capacity:]...)
	}
	return len(p), nil
}

// Get returns a copy of the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return append([]LogEntry(nil), w.log...)
}

// Tail returns a copy of the last n entries (or fewer, if there are fewer).
func (w *MemoryLogReaderWriter) Tail(n int) []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	if n > len(w.log) {
		n = len(w.log)
	}
	return append([]LogEntry(nil), w.log[len(w.log)-n:]...)
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
	Tail(n int) []LogEntry
}
