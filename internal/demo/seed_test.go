// AngelaMos | 2026
// seed_test.go

package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/config"
	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/event"
	"github.com/carterperez-dev/mentorax-api/internal/field"
	"github.com/carterperez-dev/mentorax-api/internal/mentor"
	"github.com/carterperez-dev/mentorax-api/internal/scholarship"
	"github.com/carterperez-dev/mentorax-api/internal/store"
	"github.com/carterperez-dev/mentorax-api/internal/user"
)

func newSeeder() Seeder {
	s := Seeder{
		ScholarshipStore: store.MemoryOnly(scholarship.NewMemoryRepository()),
		MentorStore:      store.MemoryOnly(mentor.NewMemoryRepository()),
		FieldStore:       store.MemoryOnly(field.NewMemoryRepository()),
		EventStore:       store.MemoryOnly(event.NewMemoryRepository()),
		UserStore:        store.MemoryOnly(user.NewMemoryRepository()),
	}
	s.Scholarships = scholarship.NewService(s.ScholarshipStore)
	s.Mentors = mentor.NewService(s.MentorStore)
	s.Fields = field.NewService(s.FieldStore)
	s.Events = event.NewService(s.EventStore)
	s.Users = user.NewService(s.UserStore)
	return s
}

func TestSeedCatalogAndAdmin(t *testing.T) {
	ctx := context.Background()
	s := newSeeder()

	sum, err := s.Run(ctx, config.DemoConfig{
		SeedData:      true,
		AdminEmail:    "Admin@MentoraX.app",
		AdminPassword: "demo-password-1",
	})
	require.NoError(t, err)
	assert.Equal(t, len(scholarships), sum.Scholarships)
	assert.True(t, sum.Admin)

	list, err := s.Scholarships.List(ctx, store.ListParams{Country: "Germany"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "EUR", list[0].Currency)

	admin, err := s.Users.GetByEmail(ctx, "admin@mentorax.app")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, admin.Role)

	ok, err := core.VerifyPassword("demo-password-1", admin.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSeedSkipsAdminWithoutCredentials(t *testing.T) {
	s := newSeeder()

	sum, err := s.Run(context.Background(), config.DemoConfig{SeedData: false})
	require.NoError(t, err)
	assert.Zero(t, sum.Scholarships)
	assert.False(t, sum.Admin)
}
