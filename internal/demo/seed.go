// AngelaMos | 2026
// seed.go

package demo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/carterperez-dev/mentorax-api/internal/auth"
	"github.com/carterperez-dev/mentorax-api/internal/config"
	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/event"
	"github.com/carterperez-dev/mentorax-api/internal/field"
	"github.com/carterperez-dev/mentorax-api/internal/mentor"
	"github.com/carterperez-dev/mentorax-api/internal/scholarship"
	"github.com/carterperez-dev/mentorax-api/internal/store"
	"github.com/carterperez-dev/mentorax-api/internal/user"
)

// Seeder fills the in-memory stores so the API has something to show
// without a database. Persistent stores are never touched.
type Seeder struct {
	Scholarships *scholarship.Service
	Mentors      *mentor.Service
	Fields       *field.Service
	Events       *event.Service
	Users        *user.Service

	ScholarshipStore *store.Dual[scholarship.Repository]
	MentorStore      *store.Dual[mentor.Repository]
	FieldStore       *store.Dual[field.Repository]
	EventStore       *store.Dual[event.Repository]
	UserStore        *store.Dual[user.Repository]
}

type Summary struct {
	Scholarships int
	Mentors      int
	Fields       int
	Events       int
	Admin        bool
}

func (s Seeder) Run(ctx context.Context, cfg config.DemoConfig) (Summary, error) {
	var sum Summary

	if cfg.SeedData {
		for _, req := range scholarships {
			if _, err := s.Scholarships.CreateIn(ctx, s.ScholarshipStore.Memory(), req); err != nil {
				return sum, fmt.Errorf("seed scholarship %q: %w", req.Name, err)
			}
			sum.Scholarships++
		}

		for _, req := range mentors {
			if _, err := s.Mentors.CreateIn(ctx, s.MentorStore.Memory(), req); err != nil {
				return sum, fmt.Errorf("seed mentor %q: %w", req.Name, err)
			}
			sum.Mentors++
		}

		for _, req := range fields {
			if _, err := s.Fields.CreateIn(ctx, s.FieldStore.Memory(), req); err != nil {
				return sum, fmt.Errorf("seed field %q: %w", req.Name, err)
			}
			sum.Fields++
		}

		for _, req := range events {
			if _, err := s.Events.CreateIn(ctx, s.EventStore.Memory(), req); err != nil {
				return sum, fmt.Errorf("seed event %q: %w", req.Title, err)
			}
			sum.Events++
		}
	}

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := s.seedAdmin(ctx, cfg); err != nil {
			return sum, err
		}
		sum.Admin = true
	}

	slog.InfoContext(ctx, "demo data seeded",
		"scholarships", sum.Scholarships,
		"mentors", sum.Mentors,
		"fields", sum.Fields,
		"events", sum.Events,
		"admin", sum.Admin,
	)

	return sum, nil
}

func (s Seeder) seedAdmin(ctx context.Context, cfg config.DemoConfig) error {
	hash, err := core.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	_, err = s.Users.CreateIn(ctx, s.UserStore.Memory(), auth.NewUser{
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		FirstName:    "Demo",
		LastName:     "Admin",
		Role:         auth.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
