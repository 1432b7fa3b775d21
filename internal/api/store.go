package api

import (
	"sync"

	"awsranges/internal/ranges"
)

// DocumentStore holds the currently loaded ranges document. The serve
// command replaces the document atomically on refresh; request handlers only
// ever read it.
type DocumentStore struct {
	mu  sync.RWMutex
	doc *ranges.Document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Get returns the current document, or nil if none has been loaded yet.
func (s *DocumentStore) Get() *ranges.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Set replaces the current document.
func (s *DocumentStore) Set(doc *ranges.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
}
