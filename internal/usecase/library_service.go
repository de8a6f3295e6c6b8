package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/matchday/tournament-analytics/internal/domain/library"
	"github.com/matchday/tournament-analytics/internal/platform/logging"
)

// LibraryService implements the lending workflows over the catalog,
// reader and loan repositories.
type LibraryService struct {
	bookRepo   library.BookRepository
	readerRepo library.ReaderRepository
	loanRepo   library.LoanRepository
	logger     *logging.Logger
	now        func() time.Time
}

func NewLibraryService(
	bookRepo library.BookRepository,
	readerRepo library.ReaderRepository,
	loanRepo library.LoanRepository,
	logger *logging.Logger,
) *LibraryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LibraryService{
		bookRepo:   bookRepo,
		readerRepo: readerRepo,
		loanRepo:   loanRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// AddBook registers a new title or adds copies to an existing one.
func (s *LibraryService) AddBook(ctx context.Context, isbn, title, author string, year, copies int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LibraryService.AddBook")
	defer span.End()

	existing, found, err := s.bookRepo.Get(ctx, strings.TrimSpace(isbn))
	if err != nil {
		return fmt.Errorf("get book: %w", err)
	}
	if found {
		existing.TotalCopies += copies
		existing.AvailableCopies += copies
		if err := s.bookRepo.Upsert(ctx, existing); err != nil {
			return fmt.Errorf("update book copies: %w", err)
		}
		return nil
	}

	book, err := library.NewBook(isbn, title, author, year, copies)
	if err != nil {
		return err
	}
	if err := s.bookRepo.Upsert(ctx, book); err != nil {
		return fmt.Errorf("store book: %w", err)
	}
	return nil
}

func (s *LibraryService) RegisterReader(ctx context.Context, readerID, name, email string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LibraryService.RegisterReader")
	defer span.End()

	reader, err := library.NewReader(readerID, name, email)
	if err != nil {
		return err
	}
	if err := s.readerRepo.Create(ctx, reader); err != nil {
		return fmt.Errorf("register reader: %w", err)
	}
	return nil
}

// FindBooksByAuthor matches authors case-insensitively by substring.
func (s *LibraryService) FindBooksByAuthor(ctx context.Context, author string) ([]library.Book, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	needle := strings.ToLower(author)
	out := make([]library.Book, 0)
	for _, book := range books {
		if strings.Contains(strings.ToLower(book.Author), needle) {
			out = append(out, book)
		}
	}
	return out, nil
}

// FindBooksByTitle matches titles case-insensitively but exactly.
func (s *LibraryService) FindBooksByTitle(ctx context.Context, title string) ([]library.Book, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	out := make([]library.Book, 0)
	for _, book := range books {
		if strings.EqualFold(book.Title, title) {
			out = append(out, book)
		}
	}
	return out, nil
}

func (s *LibraryService) AvailableBooks(ctx context.Context) ([]library.Book, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	out := make([]library.Book, 0, len(books))
	for _, book := range books {
		if book.IsAvailable() {
			out = append(out, book)
		}
	}
	return out, nil
}

// BorrowBook lends one copy to the reader for the standard loan period.
func (s *LibraryService) BorrowBook(ctx context.Context, readerID, isbn string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LibraryService.BorrowBook")
	defer span.End()

	if _, found, err := s.readerRepo.Get(ctx, readerID); err != nil {
		return fmt.Errorf("get reader: %w", err)
	} else if !found {
		return fmt.Errorf("%w: %s", library.ErrReaderNotFound, readerID)
	}

	book, found, err := s.bookRepo.Get(ctx, isbn)
	if err != nil {
		return fmt.Errorf("get book: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: %s", library.ErrBookNotFound, isbn)
	}
	if !book.IsAvailable() {
		return fmt.Errorf("%w: %s", library.ErrBookNotAvailable, isbn)
	}

	active, err := s.loanRepo.ListActiveByReader(ctx, readerID)
	if err != nil {
		return fmt.Errorf("list active loans: %w", err)
	}
	if len(active) >= library.MaxBorrowedBooks {
		return fmt.Errorf("%w: max %d books", library.ErrBorrowLimit, library.MaxBorrowedBooks)
	}
	for _, loan := range active {
		if loan.ISBN == isbn {
			return fmt.Errorf("%w: %s", library.ErrAlreadyBorrowed, isbn)
		}
	}

	now := s.now()
	book.AvailableCopies--
	if err := s.bookRepo.Upsert(ctx, book); err != nil {
		return fmt.Errorf("update book availability: %w", err)
	}
	if err := s.loanRepo.Add(ctx, library.Loan{
		ReaderID:   readerID,
		ISBN:       isbn,
		BorrowedAt: now,
		DueAt:      now.Add(library.LoanPeriod),
	}); err != nil {
		return fmt.Errorf("record loan: %w", err)
	}

	s.logger.InfoContext(ctx, "book borrowed", "reader", readerID, "isbn", isbn)
	return nil
}

// ReturnBook closes the loan and returns the fine owed for overdue
// days, zero when returned on time.
func (s *LibraryService) ReturnBook(ctx context.Context, readerID, isbn string) (float64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LibraryService.ReturnBook")
	defer span.End()

	if _, found, err := s.readerRepo.Get(ctx, readerID); err != nil {
		return 0, fmt.Errorf("get reader: %w", err)
	} else if !found {
		return 0, fmt.Errorf("%w: %s", library.ErrReaderNotFound, readerID)
	}

	loan, found, err := s.loanRepo.GetActive(ctx, readerID, isbn)
	if err != nil {
		return 0, fmt.Errorf("get active loan: %w", err)
	}
	if !found {
		return 0, fmt.Errorf("%w: reader=%s isbn=%s", library.ErrLoanNotFound, readerID, isbn)
	}

	fine := loan.Fine(s.now())

	book, found, err := s.bookRepo.Get(ctx, isbn)
	if err != nil {
		return 0, fmt.Errorf("get book: %w", err)
	}
	if found && book.AvailableCopies < book.TotalCopies {
		book.AvailableCopies++
		if err := s.bookRepo.Upsert(ctx, book); err != nil {
			return 0, fmt.Errorf("update book availability: %w", err)
		}
	}

	if err := s.loanRepo.MarkReturned(ctx, readerID, isbn); err != nil {
		return 0, fmt.Errorf("close loan: %w", err)
	}

	s.logger.InfoContext(ctx, "book returned", "reader", readerID, "isbn", isbn, "fine", fine)
	return fine, nil
}

// OverdueLoan describes one loan past its due date.
type OverdueLoan struct {
	ReaderID    string
	ReaderName  string
	ISBN        string
	BookTitle   string
	DueAt       time.Time
	OverdueDays int
}

func (s *LibraryService) OverdueLoans(ctx context.Context) ([]OverdueLoan, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LibraryService.OverdueLoans")
	defer span.End()

	loans, err := s.loanRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active loans: %w", err)
	}

	now := s.now()
	out := make([]OverdueLoan, 0)
	for _, loan := range loans {
		if !now.After(loan.DueAt) {
			continue
		}

		row := OverdueLoan{
			ReaderID:    loan.ReaderID,
			ISBN:        loan.ISBN,
			DueAt:       loan.DueAt,
			OverdueDays: loan.OverdueDays(now),
		}
		if reader, found, err := s.readerRepo.Get(ctx, loan.ReaderID); err == nil && found {
			row.ReaderName = reader.Name
		}
		if book, found, err := s.bookRepo.Get(ctx, loan.ISBN); err == nil && found {
			row.BookTitle = book.Title
		}
		out = append(out, row)
	}
	return out, nil
}

// ReaderStats summarizes a reader's borrowing activity.
type ReaderStats struct {
	ReaderID          string
	Name              string
	Email             string
	CurrentlyBorrowed int
	TotalBorrowed     int
	FirstBorrowedAt   *time.Time
}

func (s *LibraryService) GetReaderStats(ctx context.Context, readerID string) (ReaderStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LibraryService.GetReaderStats")
	defer span.End()

	reader, found, err := s.readerRepo.Get(ctx, readerID)
	if err != nil {
		return ReaderStats{}, fmt.Errorf("get reader: %w", err)
	}
	if !found {
		return ReaderStats{}, fmt.Errorf("%w: %s", library.ErrReaderNotFound, readerID)
	}

	history, err := s.loanRepo.ListHistory(ctx)
	if err != nil {
		return ReaderStats{}, fmt.Errorf("list loan history: %w", err)
	}

	stats := ReaderStats{
		ReaderID: reader.ID,
		Name:     reader.Name,
		Email:    reader.Email,
	}
	for _, loan := range history {
		if loan.ReaderID != readerID {
			continue
		}
		stats.TotalBorrowed++
		if !loan.Returned {
			stats.CurrentlyBorrowed++
		}
		if stats.FirstBorrowedAt == nil || loan.BorrowedAt.Before(*stats.FirstBorrowedAt) {
			borrowedAt := loan.BorrowedAt
			stats.FirstBorrowedAt = &borrowedAt
		}
	}
	return stats, nil
}

// BookPopularity is one entry of the most-borrowed ranking.
type BookPopularity struct {
	ISBN    string
	Borrows int
}

// PopularBooks ranks titles by total borrow count, descending, ties
// broken by ISBN for determinism.
func (s *LibraryService) PopularBooks(ctx context.Context, limit int) ([]BookPopularity, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LibraryService.PopularBooks")
	defer span.End()

	history, err := s.loanRepo.ListHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("list loan history: %w", err)
	}

	counts := make(map[string]int)
	for _, loan := range history {
		counts[loan.ISBN]++
	}

	out := make([]BookPopularity, 0, len(counts))
	for isbn, borrows := range counts {
		out = append(out, BookPopularity{ISBN: isbn, Borrows: borrows})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Borrows != out[j].Borrows {
			return out[i].Borrows > out[j].Borrows
		}
		return out[i].ISBN < out[j].ISBN
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
