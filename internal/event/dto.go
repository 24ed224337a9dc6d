// AngelaMos | 2026
// dto.go

package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/core"
)

type CreateEventRequest struct {
	Title           string     `json:"title"           validate:"required,notblank,max=200"`
	Description     string     `json:"description"     validate:"max=5000"`
	Category        string     `json:"category"        validate:"max=100"`
	Type            string     `json:"type"            validate:"omitempty,oneof=webinar workshop conference networking"`
	Location        string     `json:"location"        validate:"max=200"`
	Online          bool       `json:"online"`
	Organizer       string     `json:"organizer"       validate:"max=200"`
	StartsAt        *time.Time `json:"startsAt"        validate:"required"`
	EndsAt          *time.Time `json:"endsAt"`
	RegistrationURL string     `json:"registrationUrl" validate:"omitempty,url"`
	Capacity        int        `json:"capacity"        validate:"gte=0"`
	Status          string     `json:"status"          validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

type UpdateEventRequest struct {
	Title           *string    `json:"title"           validate:"omitnil,notblank,max=200"`
	Description     *string    `json:"description"     validate:"omitempty,max=5000"`
	Category        *string    `json:"category"        validate:"omitempty,max=100"`
	Type            *string    `json:"type"            validate:"omitempty,oneof=webinar workshop conference networking"`
	Location        *string    `json:"location"        validate:"omitempty,max=200"`
	Online          *bool      `json:"online"`
	Organizer       *string    `json:"organizer"       validate:"omitempty,max=200"`
	StartsAt        *time.Time `json:"startsAt"`
	EndsAt          *time.Time `json:"endsAt"`
	RegistrationURL *string    `json:"registrationUrl" validate:"omitempty,url"`
	Capacity        *int       `json:"capacity"        validate:"omitempty,gte=0"`
	Status          *string    `json:"status"          validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

func (req CreateEventRequest) toEntity() Event {
	e := Event{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		Category:        req.Category,
		Type:            req.Type,
		Location:        req.Location,
		Online:          req.Online,
		Organizer:       req.Organizer,
		EndsAt:          req.EndsAt,
		RegistrationURL: req.RegistrationURL,
		Capacity:        req.Capacity,
		Status:          req.Status,
	}
	if req.StartsAt != nil {
		e.StartsAt = req.StartsAt.UTC()
	}
	if e.Type == "" {
		e.Type = TypeWebinar
	}
	if e.Status == "" {
		e.Status = StatusUpcoming
	}
	return e
}

func (req UpdateEventRequest) apply(e *Event) {
	if req.Title != nil {
		e.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Type != nil {
		e.Type = *req.Type
	}
	if req.Location != nil {
		e.Location = *req.Location
	}
	if req.Online != nil {
		e.Online = *req.Online
	}
	if req.Organizer != nil {
		e.Organizer = *req.Organizer
	}
	if req.StartsAt != nil {
		e.StartsAt = req.StartsAt.UTC()
	}
	if req.EndsAt != nil {
		e.EndsAt = req.EndsAt
	}
	if req.RegistrationURL != nil {
		e.RegistrationURL = *req.RegistrationURL
	}
	if req.Capacity != nil {
		e.Capacity = *req.Capacity
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
}

// checkWindow rejects an event that ends before it starts.
func checkWindow(e *Event) error {
	if e.EndsAt != nil && e.EndsAt.Before(e.StartsAt) {
		return fmt.Errorf("endsAt must not be before startsAt: %w", core.ErrInvalidInput)
	}
	return nil
}
