// AngelaMos | 2026
// order.go

package store

import (
	"cmp"
	"slices"
	"time"
)

// SortNewest orders rows by creation time descending, then id descending,
// matching ORDER BY created_at DESC, id DESC.
func SortNewest[T any](rows []T, key func(*T) (time.Time, string)) {
	slices.SortStableFunc(rows, func(a, b T) int {
		at, aid := key(&a)
		bt, bid := key(&b)
		if c := bt.Compare(at); c != 0 {
			return c
		}
		return cmp.Compare(bid, aid)
	})
}

// Paginate returns the page window of rows. limit <= 0 returns everything
// from offset on.
func Paginate[T any](rows []T, offset, limit int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	if offset < 0 {
		offset = 0
	}
	end := len(rows)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return rows[offset:end]
}
