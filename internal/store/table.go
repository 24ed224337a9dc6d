// AngelaMos | 2026
// table.go

package store

import (
	"fmt"
	"sync"

	"github.com/carterperez-dev/mentorax-api/internal/core"
)

// Table is an ordered in-memory collection keyed by id. Rows are copied on
// the way in and out; clone, when set, deep-copies slice and map fields.
type Table[T any] struct {
	mu    sync.RWMutex
	rows  []T
	index map[string]int
	idOf  func(*T) string
	clone func(T) T
}

func NewTable[T any](idOf func(*T) string, clone func(T) T) *Table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Table[T]{
		index: make(map[string]int),
		idOf:  idOf,
		clone: clone,
	}
}

func (t *Table[T]) Insert(row T) error {
	return t.InsertIf(row, nil)
}

// InsertIf inserts row unless the id is taken or conflicts reports true for
// an existing row. The check and the write happen under one lock.
func (t *Table[T]) InsertIf(row T, conflicts func(existing *T) bool) error {
	id := t.idOf(&row)

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.index[id]; exists {
		return fmt.Errorf("insert %s: %w", id, core.ErrDuplicateKey)
	}

	if conflicts != nil {
		for i := range t.rows {
			if conflicts(&t.rows[i]) {
				return fmt.Errorf("insert %s: %w", id, core.ErrDuplicateKey)
			}
		}
	}

	t.rows = append(t.rows, t.clone(row))
	t.index[id] = len(t.rows) - 1
	return nil
}

func (t *Table[T]) Get(id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i, ok := t.index[id]
	if !ok {
		var zero T
		return zero, core.ErrNotFound
	}
	return t.clone(t.rows[i]), nil
}

// Find returns the first row, in insertion order, matching match.
func (t *Table[T]) Find(match func(*T) bool) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i := range t.rows {
		if match(&t.rows[i]) {
			return t.clone(t.rows[i]), nil
		}
	}

	var zero T
	return zero, core.ErrNotFound
}

// Update applies fn to the stored row under the write lock. If fn returns
// an error the row is left unchanged.
func (t *Table[T]) Update(id string, fn func(*T) error) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	i, ok := t.index[id]
	if !ok {
		return zero, core.ErrNotFound
	}

	working := t.clone(t.rows[i])
	if err := fn(&working); err != nil {
		return zero, err
	}

	t.rows[i] = working
	return t.clone(working), nil
}

// UpdateIf is Update with a uniqueness check against every other row.
func (t *Table[T]) UpdateIf(
	id string,
	fn func(*T) error,
	conflicts func(updated, other *T) bool,
) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	i, ok := t.index[id]
	if !ok {
		return zero, core.ErrNotFound
	}

	working := t.clone(t.rows[i])
	if err := fn(&working); err != nil {
		return zero, err
	}

	for j := range t.rows {
		if j != i && conflicts(&working, &t.rows[j]) {
			return zero, fmt.Errorf("update %s: %w", id, core.ErrDuplicateKey)
		}
	}

	t.rows[i] = working
	return t.clone(working), nil
}

func (t *Table[T]) Delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, ok := t.index[id]
	if !ok {
		return core.ErrNotFound
	}

	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	delete(t.index, id)
	for j := i; j < len(t.rows); j++ {
		t.index[t.idOf(&t.rows[j])] = j
	}

	return nil
}

// Select returns matching rows newest first. A nil match selects all rows.
func (t *Table[T]) Select(match func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0)
	for i := len(t.rows) - 1; i >= 0; i-- {
		if match == nil || match(&t.rows[i]) {
			out = append(out, t.clone(t.rows[i]))
		}
	}
	return out
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// DeleteWhere removes every matching row and reports how many were removed.
func (t *Table[T]) DeleteWhere(match func(*T) bool) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.rows[:0]
	removed := 0
	for i := range t.rows {
		if match(&t.rows[i]) {
			delete(t.index, t.idOf(&t.rows[i]))
			removed++
			continue
		}
		kept = append(kept, t.rows[i])
	}

	var zero T
	for i := len(kept); i < len(t.rows); i++ {
		t.rows[i] = zero
	}
	t.rows = kept

	for i := range t.rows {
		t.index[t.idOf(&t.rows[i])] = i
	}
	return removed
}
