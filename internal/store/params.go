// AngelaMos | 2026
// params.go

package store

import (
	"net/url"
	"strings"
)

// ListParams are the list filters accepted by catalog endpoints. Entities
// ignore the filters they have no column for.
type ListParams struct {
	Category string
	Field    string
	Country  string
	Type     string
	Status   string
	Search   string
}

func ListParamsFromQuery(q url.Values) ListParams {
	return ListParams{
		Category: strings.TrimSpace(q.Get("category")),
		Field:    strings.TrimSpace(q.Get("field")),
		Country:  strings.TrimSpace(q.Get("country")),
		Type:     strings.TrimSpace(q.Get("type")),
		Status:   strings.TrimSpace(q.Get("status")),
		Search:   strings.TrimSpace(q.Get("search")),
	}
}
