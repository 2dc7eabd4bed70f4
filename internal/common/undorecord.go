package common

// UndoRecord describes one store mutation well enough to reverse it.
// OldValue and NewValue never compare equal.
type UndoRecord struct {
	Key      string
	OldValue Value
	NewValue Value
}

func NewUndoRecord(key string, oldValue Value, newValue Value) UndoRecord {
	return UndoRecord{
		Key:      key,
		OldValue: oldValue,
		NewValue: newValue,
	}
}
