/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

// Package logtest provides a recording implementation of log.FieldLogger for tests.
package logtest

import (
	"sync"
	"time"

	"github.com/ssgreg/logf"

	"github.com/acronis/go-crptapi/log"
)

// RecordedEntry is a single entry captured by Recorder.
type RecordedEntry struct {
	Level  log.Level
	Time   time.Time
	Text   string
	Fields []log.Field
}

// FindField returns the first field with the given key.
func (re RecordedEntry) FindField(key string) (log.Field, bool) {
	for _, f := range re.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return log.Field{}, false
}

// sink is a logf.EntryWriter that keeps entries in memory.
type sink struct {
	mu      sync.Mutex
	entries []RecordedEntry
}

func (s *sink) WriteEntry(e logf.Entry) { //nolint:gocritic // signature is defined by logf.EntryWriter
	fields := make([]log.Field, 0, len(e.DerivedFields)+len(e.Fields))
	fields = append(fields, e.DerivedFields...)
	fields = append(fields, e.Fields...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, RecordedEntry{
		Level:  log.LevelOf(e.Level),
		Time:   e.Time,
		Text:   e.Text,
		Fields: fields,
	})
}

func (s *sink) snapshot() []RecordedEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedEntry(nil), s.entries...)
}

// Recorder is a log.FieldLogger that keeps every entry, including debug ones.
// Child loggers created by With share the same storage.
type Recorder struct {
	log.FieldLogger
	sink *sink
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	s := &sink{}
	return &Recorder{FieldLogger: log.Wrap(logf.NewLogger(logf.LevelDebug, s)), sink: s}
}

// With returns a child logger recording into the same storage.
func (r *Recorder) With(fields ...log.Field) log.FieldLogger {
	return &Recorder{FieldLogger: r.FieldLogger.With(fields...), sink: r.sink}
}

// Entries returns a copy of the recorded entries in logging order.
func (r *Recorder) Entries() []RecordedEntry {
	return r.sink.snapshot()
}

// FindEntry returns the first entry with the given message.
func (r *Recorder) FindEntry(msg string) (RecordedEntry, bool) {
	for _, e := range r.sink.snapshot() {
		if e.Text == msg {
			return e, true
		}
	}
	return RecordedEntry{}, false
}

// Filter returns the entries accepted by keep.
func (r *Recorder) Filter(keep func(RecordedEntry) bool) []RecordedEntry {
	var res []RecordedEntry
	for _, e := range r.sink.snapshot() {
		if keep(e) {
			res = append(res, e)
		}
	}
	return res
}

// Reset drops all recorded entries.
func (r *Recorder) Reset() {
	r.sink.mu.Lock()
	r.sink.entries = nil
	r.sink.mu.Unlock()
}
