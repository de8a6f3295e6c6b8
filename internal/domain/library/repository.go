package library

import "context"

// BookRepository stores the catalog.
type BookRepository interface {
	Get(ctx context.Context, isbn string) (Book, bool, error)
	Upsert(ctx context.Context, book Book) error
	List(ctx context.Context) ([]Book, error)
}

// ReaderRepository stores registered readers.
type ReaderRepository interface {
	Get(ctx context.Context, readerID string) (Reader, bool, error)
	Create(ctx context.Context, reader Reader) error
}

// LoanRepository stores active loans plus the full borrow history.
type LoanRepository interface {
	GetActive(ctx context.Context, readerID, isbn string) (Loan, bool, error)
	ListActive(ctx context.Context) ([]Loan, error)
	ListActiveByReader(ctx context.Context, readerID string) ([]Loan, error)
	// ListHistory returns every loan ever recorded, in borrow order.
	ListHistory(ctx context.Context) ([]Loan, error)
	Add(ctx context.Context, loan Loan) error
	// MarkReturned closes the active loan for (readerID, isbn).
	MarkReturned(ctx context.Context, readerID, isbn string) error
}
