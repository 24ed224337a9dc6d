// AngelaMos | 2026
// entity.go

package field

import (
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/store"
)

const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Field is a study or career area browsed from the catalog.
type Field struct {
	ID            string           `db:"id"             json:"id"`
	Name          string           `db:"name"           json:"name"`
	Description   string           `db:"description"    json:"description"`
	Category      string           `db:"category"       json:"category"`
	Icon          string           `db:"icon"           json:"icon"`
	CareerPaths   store.StringList `db:"career_paths"   json:"careerPaths"`
	AverageSalary string           `db:"average_salary" json:"averageSalary"`
	GrowthOutlook string           `db:"growth_outlook" json:"growthOutlook"`
	Status        string           `db:"status"         json:"status"`
	CreatedAt     time.Time        `db:"created_at"     json:"createdAt"`
	UpdatedAt     time.Time        `db:"updated_at"     json:"updatedAt"`
}

func clone(f Field) Field {
	f.CareerPaths = f.CareerPaths.Clone()
	return f
}

func matches(f *Field, p store.ListParams) bool {
	return store.MatchEq(p.Category, f.Category) &&
		store.MatchEq(p.Status, f.Status) &&
		store.MatchSearch(p.Search, f.Name, f.Description)
}

func where(p store.ListParams) *store.Where {
	var w store.Where
	return w.Eq("category", p.Category).
		Eq("status", p.Status).
		Search(p.Search, "name", "description")
}
