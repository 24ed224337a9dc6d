// AngelaMos | 2026
// entity.go

package application

import (
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/store"
)

const (
	TypeScholarship = "scholarship"
	TypeMentor      = "mentor"
)

const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusWithdrawn = "withdrawn"
)

// Application links a user to a scholarship or a mentor. TargetID holds
// the id of whichever one Type names.
type Application struct {
	ID        string       `db:"id"`
	UserID    string       `db:"user_id"`
	Type      string       `db:"type"`
	TargetID  string       `db:"target_id"`
	Data      store.Object `db:"data"`
	Status    string       `db:"status"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

func clone(a Application) Application {
	a.Data = a.Data.Clone()
	return a
}

// sameTarget is the uniqueness rule: one application per user, type and
// target.
func sameTarget(a, b *Application) bool {
	return a.UserID == b.UserID && a.Type == b.Type && a.TargetID == b.TargetID
}

func matches(a *Application, userID string, p store.ListParams) bool {
	return (userID == "" || a.UserID == userID) &&
		store.MatchEq(p.Type, a.Type) &&
		store.MatchEq(p.Status, a.Status)
}

func where(userID string, p store.ListParams) *store.Where {
	var w store.Where
	return w.Eq("user_id", userID).
		Eq("type", p.Type).
		Eq("status", p.Status)
}
