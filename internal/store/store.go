package store

import (
	"simpledb/internal/common"
	"simpledb/internal/datatable"
)

// Store binds keys to integers and keeps a ValueIndex in step with every change.
type Store struct {
	table datatable.DataTable
	index *ValueIndex
}

func NewStore() *Store {
	return &Store{
		table: datatable.NewMapDataTable(),
		index: NewValueIndex(),
	}
}

// Apply binds key to value, or removes key when value is absent. It returns
// the value held before and whether anything changed; rewriting the current
// value changes neither the table nor the index.
func (s *Store) Apply(key string, value common.Value) (common.Value, bool) {
	old := s.table.Get(key)
	if old == value {
		return old, false
	}

	if oldValue, ok := old.Int64(); ok {
		s.index.Decrement(oldValue)
	}

	if newValue, ok := value.Int64(); ok {
		s.table.Put(key, newValue)
		s.index.Increment(newValue)
	} else {
		s.table.Delete(key)
	}

	return old, true
}

// Undo reverses the mutation described by rec. The store must hold
// rec.NewValue for rec.Key when it is called.
func (s *Store) Undo(rec common.UndoRecord) {
	oldValue, hadOld := rec.OldValue.Int64()
	newValue, hasNew := rec.NewValue.Int64()

	switch {
	case !hadOld && hasNew:
		// created
		s.table.Delete(rec.Key)
		s.index.Decrement(newValue)
	case hadOld && !hasNew:
		// deleted
		s.table.Put(rec.Key, oldValue)
		s.index.Increment(oldValue)
	case hadOld && hasNew:
		// updated
		s.table.Put(rec.Key, oldValue)
		s.index.Increment(oldValue)
		s.index.Decrement(newValue)
	}
}

func (s *Store) Get(key string) common.Value {
	return s.table.Get(key)
}

func (s *Store) NumEqualTo(value int64) int {
	return s.index.Count(value)
}

func (s *Store) Size() int {
	return s.table.Size()
}

// Snapshot copies the current bindings.
func (s *Store) Snapshot() map[string]int64 {
	snapshot := make(map[string]int64, s.table.Size())
	for _, key := range s.table.Keys() {
		if value, ok := s.table.Get(key).Int64(); ok {
			snapshot[key] = value
		}
	}
	return snapshot
}

func (s *Store) Counts() map[int64]int {
	return s.index.Counts()
}
