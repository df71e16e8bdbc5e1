// Package memory provides map-backed repositories that keep the ledger in process memory.
package memory

import (
	"strings"
	"sync"
)

// table is a key-indexed collection that remembers insertion order.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

// insert adds a row and reports false when the id is already taken.
func (t *table[T]) insert(id string, row T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[id]; exists {
		return false
	}
	t.rows[id] = row
	t.order = append(t.order, id)
	return true
}

// replace overwrites an existing row and reports false when the id is unknown.
func (t *table[T]) replace(id string, row T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[id]; !exists {
		return false
	}
	t.rows[id] = row
	return true
}

func (t *table[T]) remove(id string) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, exists := t.rows[id]
	if !exists {
		return row, false
	}
	delete(t.rows, id)
	for i, key := range t.order {
		if key == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return row, true
}

// all returns the rows in insertion order.
func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

// find returns the first row, in insertion order, that satisfies match.
func (t *table[T]) find(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// after returns up to limit rows following the row with id cursor.
// ok is false when cursor is not (or no longer) in the table.
func (t *table[T]) after(cursor string, limit int) (rows []T, more bool, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	start := 0
	if cursor != "" {
		start = -1
		for i, id := range t.order {
			if id == cursor {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, false, false
		}
	}
	end := min(start+limit, len(t.order))
	rows = make([]T, 0, end-start)
	for _, id := range t.order[start:end] {
		rows = append(rows, t.rows[id])
	}
	return rows, end < len(t.order), true
}

func sameKey(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
