// AngelaMos | 2026
// filter.go

package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/carterperez-dev/mentorax-api/internal/core"
)

// The SQL builder and the in-memory matchers below define list filtering
// for both backends. Equality is exact and case-sensitive; search is a
// case-insensitive substring match over a fixed set of text columns.

type Where struct {
	conditions []string
	args       []any
}

func (w *Where) Eq(column, value string) *Where {
	if value == "" {
		return w
	}
	w.args = append(w.args, value)
	w.conditions = append(w.conditions, fmt.Sprintf("%s = $%d", column, len(w.args)))
	return w
}

// Is adds an equality condition even for zero values.
func (w *Where) Is(column string, value any) *Where {
	w.args = append(w.args, value)
	w.conditions = append(w.conditions, fmt.Sprintf("%s = $%d", column, len(w.args)))
	return w
}

func (w *Where) Search(term string, columns ...string) *Where {
	if term == "" || len(columns) == 0 {
		return w
	}

	w.args = append(w.args, "%"+EscapeLike(term)+"%")
	idx := len(w.args)

	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, fmt.Sprintf("%s ILIKE $%d", col, idx))
	}
	w.conditions = append(w.conditions, "("+strings.Join(parts, " OR ")+")")
	return w
}

func (w *Where) Clause() string {
	if len(w.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conditions, " AND ")
}

func (w *Where) Args() []any {
	return w.args
}

func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}

// MatchEq is the in-memory counterpart of Where.Eq.
func MatchEq(filter, value string) bool {
	return filter == "" || filter == value
}

// MatchSearch is the in-memory counterpart of Where.Search.
func MatchSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	for _, f := range fields {
		if ContainsFold(f, term) {
			return true
		}
	}
	return false
}

func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// RequireAffected maps a zero-row UPDATE or DELETE to core.ErrNotFound.
func RequireAffected(result sql.Result, op string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	return nil
}
