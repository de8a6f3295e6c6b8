package library

import (
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidBook      = crerr.New("invalid book")
	ErrInvalidReader    = crerr.New("invalid reader")
	ErrBookNotFound     = crerr.New("book not found")
	ErrReaderNotFound   = crerr.New("reader not found")
	ErrBookNotAvailable = crerr.New("book not available")
	ErrBorrowLimit      = crerr.New("borrow limit reached")
	ErrAlreadyBorrowed  = crerr.New("book already borrowed by reader")
	ErrLoanNotFound     = crerr.New("active loan not found")
)

const (
	// MaxBorrowedBooks is how many books one reader may hold at once.
	MaxBorrowedBooks = 5
	// LoanPeriod is how long a copy may be kept before it is overdue.
	LoanPeriod = 14 * 24 * time.Hour
	// FinePerDay is charged for every full day past the due date.
	FinePerDay = 10.0

	earliestPublicationYear = 1000
)

var validate = validator.New()

// Book is one title in the catalog with its copy counters.
type Book struct {
	ISBN            string `validate:"required"`
	Title           string `validate:"required"`
	Author          string `validate:"required"`
	Year            int
	TotalCopies     int
	AvailableCopies int
}

// NewBook validates and builds a catalog entry with all copies
// available.
func NewBook(isbn, title, author string, year, copies int) (Book, error) {
	book := Book{
		ISBN:            strings.TrimSpace(isbn),
		Title:           strings.TrimSpace(title),
		Author:          strings.TrimSpace(author),
		Year:            year,
		TotalCopies:     copies,
		AvailableCopies: copies,
	}

	if err := validate.Struct(book); err != nil {
		return Book{}, fmt.Errorf("%w: %v", ErrInvalidBook, err)
	}
	if year < earliestPublicationYear || year > time.Now().Year() {
		return Book{}, fmt.Errorf("%w: year %d out of range", ErrInvalidBook, year)
	}
	if copies < 0 {
		return Book{}, fmt.Errorf("%w: copies cannot be negative", ErrInvalidBook)
	}

	return book, nil
}

func (b Book) IsAvailable() bool {
	return b.AvailableCopies > 0
}

// Reader is a registered library member.
type Reader struct {
	ID    string `validate:"required"`
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

func NewReader(id, name, email string) (Reader, error) {
	reader := Reader{
		ID:    strings.TrimSpace(id),
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}
	if err := validate.Struct(reader); err != nil {
		return Reader{}, fmt.Errorf("%w: %v", ErrInvalidReader, err)
	}
	return reader, nil
}

// Loan ties a reader to a borrowed copy. Returned loans stay in the
// repository as history.
type Loan struct {
	ReaderID   string
	ISBN       string
	BorrowedAt time.Time
	DueAt      time.Time
	Returned   bool
}

// OverdueDays counts full days past the due date, zero when on time.
func (l Loan) OverdueDays(now time.Time) int {
	if !now.After(l.DueAt) {
		return 0
	}
	return int(now.Sub(l.DueAt).Hours() / 24)
}

// Fine is the charge owed at the given moment.
func (l Loan) Fine(now time.Time) float64 {
	return float64(l.OverdueDays(now)) * FinePerDay
}
