package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/matchday/tournament-analytics/internal/domain/library"
)

type BookRepository struct {
	mu    sync.RWMutex
	books map[string]library.Book
}

func NewBookRepository() *BookRepository {
	return &BookRepository{books: make(map[string]library.Book)}
}

func (r *BookRepository) Get(_ context.Context, isbn string) (library.Book, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[isbn]
	return book, ok, nil
}

func (r *BookRepository) Upsert(_ context.Context, book library.Book) error {
	r.mu.Lock()
	r.books[book.ISBN] = book
	r.mu.Unlock()
	return nil
}

func (r *BookRepository) List(_ context.Context) ([]library.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]library.Book, 0, len(r.books))
	for _, book := range r.books {
		out = append(out, book)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ISBN < out[j].ISBN
	})
	return out, nil
}
