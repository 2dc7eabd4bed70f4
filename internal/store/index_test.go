package store

import "testing"

func TestValueIndex(t *testing.T) {
	vi := NewValueIndex()
	if vi.Count(1) != 0 {
		t.Errorf("expected 0 for an unseen value")
	}

	vi.Increment(1)
	vi.Increment(1)
	vi.Increment(2)
	if vi.Count(1) != 2 || vi.Count(2) != 1 {
		t.Errorf("unexpected counts %v", vi.Counts())
	}

	vi.Decrement(1)
	vi.Decrement(2)
	if vi.Count(1) != 1 {
		t.Errorf("expected count 1, got %d", vi.Count(1))
	}
	if len(vi.Counts()) != 1 {
		t.Errorf("expected value 2 to be removed at zero, got %v", vi.Counts())
	}

	vi.Decrement(3)
	if _, ok := vi.Counts()[3]; ok {
		t.Errorf("decrementing an unseen value must not create an entry")
	}

	counts := vi.Counts()
	counts[1] = 100
	if vi.Count(1) != 1 {
		t.Errorf("Counts must return a copy")
	}
}
