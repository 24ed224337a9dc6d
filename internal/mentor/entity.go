// AngelaMos | 2026
// entity.go

package mentor

import (
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/store"
)

const (
	StatusAvailable   = "available"
	StatusBusy        = "busy"
	StatusUnavailable = "unavailable"
)

type Mentor struct {
	ID              string           `db:"id"               json:"id"`
	Name            string           `db:"name"             json:"name"`
	Title           string           `db:"title"            json:"title"`
	Company         string           `db:"company"          json:"company"`
	Category        string           `db:"category"         json:"category"`
	Field           string           `db:"field"            json:"field"`
	Country         string           `db:"country"          json:"country"`
	Bio             string           `db:"bio"              json:"bio"`
	Expertise       store.StringList `db:"expertise"        json:"expertise"`
	ExperienceYears int              `db:"experience_years" json:"experienceYears"`
	Rating          float64          `db:"rating"           json:"rating"`
	AvatarURL       string           `db:"avatar_url"       json:"avatarUrl"`
	Status          string           `db:"status"           json:"status"`
	CreatedAt       time.Time        `db:"created_at"       json:"createdAt"`
	UpdatedAt       time.Time        `db:"updated_at"       json:"updatedAt"`
}

func clone(m Mentor) Mentor {
	m.Expertise = m.Expertise.Clone()
	return m
}

func matches(m *Mentor, p store.ListParams) bool {
	return store.MatchEq(p.Category, m.Category) &&
		store.MatchEq(p.Field, m.Field) &&
		store.MatchEq(p.Country, m.Country) &&
		store.MatchEq(p.Status, m.Status) &&
		store.MatchSearch(p.Search, m.Name, m.Title, m.Company, m.Bio)
}

func where(p store.ListParams) *store.Where {
	var w store.Where
	return w.Eq("category", p.Category).
		Eq("field", p.Field).
		Eq("country", p.Country).
		Eq("status", p.Status).
		Search(p.Search, "name", "title", "company", "bio")
}
