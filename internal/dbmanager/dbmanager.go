package dbmanager

import (
	"log/slog"

	"simpledb/internal/common"
	"simpledb/internal/store"
	"simpledb/internal/transactionmanager"
)

// DBManager owns one store and the transaction log recording changes to it.
// It is not safe for concurrent use.
type DBManager struct {
	Store              *store.Store
	TransactionManager *transactionmanager.TransactionManager
	strictCommit       bool
	ended              bool
}

type Option func(*DBManager)

// WithStrictCommit makes Commit report ErrNoActiveTransaction when no
// transaction is open instead of doing nothing.
func WithStrictCommit(strict bool) Option {
	return func(dm *DBManager) {
		dm.strictCommit = strict
	}
}

func NewDBManager(opts ...Option) *DBManager {
	dm := &DBManager{
		Store:              store.NewStore(),
		TransactionManager: transactionmanager.NewTransactionManager(),
	}
	for _, opt := range opts {
		opt(dm)
	}
	return dm
}

func (dm *DBManager) Set(key string, value int64) {
	dm.mutate(key, common.Int(value))
}

func (dm *DBManager) Unset(key string) {
	dm.mutate(key, common.Null())
}

func (dm *DBManager) mutate(key string, value common.Value) {
	old, changed := dm.Store.Apply(key, value)
	if !changed {
		return
	}
	dm.TransactionManager.Record(common.NewUndoRecord(key, old, value))
}

func (dm *DBManager) Get(key string) common.Value {
	return dm.Store.Get(key)
}

func (dm *DBManager) NumEqualTo(value int64) int {
	return dm.Store.NumEqualTo(value)
}

// Begin opens a nested transaction and returns its scope id.
func (dm *DBManager) Begin() string {
	return dm.TransactionManager.Begin()
}

// Rollback undoes the innermost open transaction.
func (dm *DBManager) Rollback() error {
	_, err := dm.TransactionManager.Rollback(dm.Store)
	return err
}

// Commit makes every pending change permanent. The store already holds them,
// so only the transaction log is discarded.
func (dm *DBManager) Commit() error {
	if dm.TransactionManager.Commit() == 0 && dm.strictCommit {
		return common.ErrNoActiveTransaction
	}
	return nil
}

// End finishes the session. Open transactions are abandoned, not rolled back.
func (dm *DBManager) End() {
	if depth := dm.TransactionManager.Depth(); depth > 0 {
		slog.Info("Ending with open transactions", "depth", depth, "pending", dm.TransactionManager.Pending(), "keys", dm.Store.Size())
	}
	dm.ended = true
}

func (dm *DBManager) Ended() bool {
	return dm.ended
}
