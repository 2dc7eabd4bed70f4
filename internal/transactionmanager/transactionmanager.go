package transactionmanager

import (
	"log/slog"

	"simpledb/internal/common"

	"github.com/google/uuid"
)

// Undoer reverses a single recorded mutation.
type Undoer interface {
	Undo(rec common.UndoRecord)
}

type scope struct {
	id      string
	records []common.UndoRecord
}

// TransactionManager keeps the stack of open transaction scopes.
// Only the innermost scope receives new undo records.
type TransactionManager struct {
	scopes []*scope
}

func NewTransactionManager() *TransactionManager {
	return &TransactionManager{
		scopes: make([]*scope, 0),
	}
}

// Begin opens a new innermost scope and returns its id.
func (tm *TransactionManager) Begin() string {
	s := &scope{
		id:      uuid.NewString(),
		records: make([]common.UndoRecord, 0),
	}
	tm.scopes = append(tm.scopes, s)
	slog.Debug("Transaction scope opened", "scopeId", s.id, "depth", len(tm.scopes))
	return s.id
}

// Record appends rec to the innermost scope. It reports false when no scope is open.
func (tm *TransactionManager) Record(rec common.UndoRecord) bool {
	if len(tm.scopes) == 0 {
		return false
	}
	innermost := tm.scopes[len(tm.scopes)-1]
	innermost.records = append(innermost.records, rec)
	return true
}

// Rollback pops the innermost scope and hands its records to u, newest first.
func (tm *TransactionManager) Rollback(u Undoer) (int, error) {
	if len(tm.scopes) == 0 {
		return 0, common.ErrNoActiveTransaction
	}

	last := len(tm.scopes) - 1
	innermost := tm.scopes[last]
	tm.scopes[last] = nil
	tm.scopes = tm.scopes[:last]

	for i := len(innermost.records) - 1; i >= 0; i-- {
		u.Undo(innermost.records[i])
	}

	slog.Debug("Transaction scope rolled back", "scopeId", innermost.id, "undone", len(innermost.records), "depth", len(tm.scopes))
	return len(innermost.records), nil
}

// Commit discards every open scope and returns how many there were.
func (tm *TransactionManager) Commit() int {
	committed := len(tm.scopes)
	tm.scopes = make([]*scope, 0)
	if committed > 0 {
		slog.Debug("Transaction scopes committed", "scopes", committed)
	}
	return committed
}

func (tm *TransactionManager) Depth() int {
	return len(tm.scopes)
}

func (tm *TransactionManager) InTransaction() bool {
	return len(tm.scopes) > 0
}

// Pending counts undo records across all open scopes.
func (tm *TransactionManager) Pending() int {
	pending := 0
	for _, s := range tm.scopes {
		pending += len(s.records)
	}
	return pending
}
