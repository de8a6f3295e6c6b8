package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/matchday/tournament-analytics/internal/domain/library"
)

// LoanRepository keeps loans in borrow order; returned loans stay in
// the slice as history.
type LoanRepository struct {
	mu    sync.RWMutex
	loans []library.Loan
}

func NewLoanRepository() *LoanRepository {
	return &LoanRepository{}
}

func (r *LoanRepository) GetActive(_ context.Context, readerID, isbn string) (library.Loan, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, loan := range r.loans {
		if !loan.Returned && loan.ReaderID == readerID && loan.ISBN == isbn {
			return loan, true, nil
		}
	}
	return library.Loan{}, false, nil
}

func (r *LoanRepository) ListActive(_ context.Context) ([]library.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]library.Loan, 0, len(r.loans))
	for _, loan := range r.loans {
		if !loan.Returned {
			out = append(out, loan)
		}
	}
	return out, nil
}

func (r *LoanRepository) ListActiveByReader(_ context.Context, readerID string) ([]library.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]library.Loan, 0)
	for _, loan := range r.loans {
		if !loan.Returned && loan.ReaderID == readerID {
			out = append(out, loan)
		}
	}
	return out, nil
}

func (r *LoanRepository) ListHistory(_ context.Context) ([]library.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]library.Loan, len(r.loans))
	copy(out, r.loans)
	return out, nil
}

func (r *LoanRepository) Add(_ context.Context, loan library.Loan) error {
	r.mu.Lock()
	r.loans = append(r.loans, loan)
	r.mu.Unlock()
	return nil
}

func (r *LoanRepository) MarkReturned(_ context.Context, readerID, isbn string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.loans {
		if !r.loans[i].Returned && r.loans[i].ReaderID == readerID && r.loans[i].ISBN == isbn {
			r.loans[i].Returned = true
			return nil
		}
	}
	return fmt.Errorf("no active loan for reader=%s isbn=%s", readerID, isbn)
}
