// AngelaMos | 2026
// entity.go

package scholarship

import (
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/store"
)

const (
	StatusOpen     = "open"
	StatusClosed   = "closed"
	StatusUpcoming = "upcoming"
)

type Scholarship struct {
	ID             string           `db:"id"              json:"id"`
	Name           string           `db:"name"            json:"name"`
	Organization   string           `db:"organization"    json:"organization"`
	Description    string           `db:"description"     json:"description"`
	Category       string           `db:"category"        json:"category"`
	Field          string           `db:"field"           json:"field"`
	Country        string           `db:"country"         json:"country"`
	Amount         float64          `db:"amount"          json:"amount"`
	Currency       string           `db:"currency"        json:"currency"`
	Deadline       *time.Time       `db:"deadline"        json:"deadline,omitempty"`
	Eligibility    store.StringList `db:"eligibility"     json:"eligibility"`
	ApplicationURL string           `db:"application_url" json:"applicationUrl"`
	Status         string           `db:"status"          json:"status"`
	CreatedAt      time.Time        `db:"created_at"      json:"createdAt"`
	UpdatedAt      time.Time        `db:"updated_at"      json:"updatedAt"`
}

func clone(s Scholarship) Scholarship {
	s.Eligibility = s.Eligibility.Clone()
	if s.Deadline != nil {
		d := *s.Deadline
		s.Deadline = &d
	}
	return s
}

func matches(s *Scholarship, p store.ListParams) bool {
	return store.MatchEq(p.Category, s.Category) &&
		store.MatchEq(p.Field, s.Field) &&
		store.MatchEq(p.Country, s.Country) &&
		store.MatchEq(p.Status, s.Status) &&
		store.MatchSearch(p.Search, s.Name, s.Organization, s.Description)
}

func where(p store.ListParams) *store.Where {
	var w store.Where
	return w.Eq("category", p.Category).
		Eq("field", p.Field).
		Eq("country", p.Country).
		Eq("status", p.Status).
		Search(p.Search, "name", "organization", "description")
}
