// AngelaMos | 2026
// entity.go

package event

import (
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/store"
)

const (
	TypeWebinar    = "webinar"
	TypeWorkshop   = "workshop"
	TypeConference = "conference"
	TypeNetworking = "networking"
)

const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Event struct {
	ID              string     `db:"id"               json:"id"`
	Title           string     `db:"title"            json:"title"`
	Description     string     `db:"description"      json:"description"`
	Category        string     `db:"category"         json:"category"`
	Type            string     `db:"type"             json:"type"`
	Location        string     `db:"location"         json:"location"`
	Online          bool       `db:"online"           json:"online"`
	Organizer       string     `db:"organizer"        json:"organizer"`
	StartsAt        time.Time  `db:"starts_at"        json:"startsAt"`
	EndsAt          *time.Time `db:"ends_at"          json:"endsAt,omitempty"`
	RegistrationURL string     `db:"registration_url" json:"registrationUrl"`
	Capacity        int        `db:"capacity"         json:"capacity"`
	Status          string     `db:"status"           json:"status"`
	CreatedAt       time.Time  `db:"created_at"       json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at"       json:"updatedAt"`
}

func clone(e Event) Event {
	if e.EndsAt != nil {
		t := *e.EndsAt
		e.EndsAt = &t
	}
	return e
}

func matches(e *Event, p store.ListParams) bool {
	return store.MatchEq(p.Category, e.Category) &&
		store.MatchEq(p.Type, e.Type) &&
		store.MatchEq(p.Status, e.Status) &&
		store.MatchSearch(p.Search, e.Title, e.Description, e.Organizer, e.Location)
}

func where(p store.ListParams) *store.Where {
	var w store.Where
	return w.Eq("category", p.Category).
		Eq("type", p.Type).
		Eq("status", p.Status).
		Search(p.Search, "title", "description", "organizer", "location")
}
