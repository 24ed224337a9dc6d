// AngelaMos | 2026
// entity.go

package goal

import (
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/store"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Goal is a personal target tracked by a single user.
type Goal struct {
	ID          string     `db:"id"          json:"id"`
	UserID      string     `db:"user_id"     json:"userId"`
	Title       string     `db:"title"       json:"title"`
	Description string     `db:"description" json:"description"`
	Category    string     `db:"category"    json:"category"`
	Status      string     `db:"status"      json:"status"`
	Progress    int        `db:"progress"    json:"progress"`
	TargetDate  *time.Time `db:"target_date" json:"targetDate,omitempty"`
	CreatedAt   time.Time  `db:"created_at"  json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at"  json:"updatedAt"`
}

func clone(g Goal) Goal {
	if g.TargetDate != nil {
		t := *g.TargetDate
		g.TargetDate = &t
	}
	return g
}

// syncStatus keeps status and progress consistent: full progress completes
// the goal, and any progress moves a pending goal forward.
func syncStatus(g *Goal) {
	switch {
	case g.Progress >= 100:
		g.Progress = 100
		g.Status = StatusCompleted
	case g.Progress > 0 && g.Status == StatusPending:
		g.Status = StatusInProgress
	}
}

func matches(g *Goal, userID string, p store.ListParams) bool {
	return g.UserID == userID &&
		store.MatchEq(p.Category, g.Category) &&
		store.MatchEq(p.Status, g.Status) &&
		store.MatchSearch(p.Search, g.Title, g.Description)
}

func where(userID string, p store.ListParams) *store.Where {
	var w store.Where
	return w.Is("user_id", userID).
		Eq("category", p.Category).
		Eq("status", p.Status).
		Search(p.Search, "title", "description")
}
