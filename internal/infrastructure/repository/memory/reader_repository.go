package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/matchday/tournament-analytics/internal/domain/library"
)

type ReaderRepository struct {
	mu      sync.RWMutex
	readers map[string]library.Reader
}

func NewReaderRepository() *ReaderRepository {
	return &ReaderRepository{readers: make(map[string]library.Reader)}
}

func (r *ReaderRepository) Get(_ context.Context, readerID string) (library.Reader, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reader, ok := r.readers[readerID]
	return reader, ok, nil
}

func (r *ReaderRepository) Create(_ context.Context, reader library.Reader) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.readers[reader.ID]; exists {
		return fmt.Errorf("reader %s already registered", reader.ID)
	}
	r.readers[reader.ID] = reader
	return nil
}
