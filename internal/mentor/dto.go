// AngelaMos | 2026
// dto.go

package mentor

import (
	"strings"
)

type CreateMentorRequest struct {
	Name            string   `json:"name"            validate:"required,notblank,max=200"`
	Title           string   `json:"title"           validate:"max=200"`
	Company         string   `json:"company"         validate:"max=200"`
	Category        string   `json:"category"        validate:"max=100"`
	Field           string   `json:"field"           validate:"max=100"`
	Country         string   `json:"country"         validate:"max=100"`
	Bio             string   `json:"bio"             validate:"max=5000"`
	Expertise       []string `json:"expertise"       validate:"max=50,dive,max=100"`
	ExperienceYears int      `json:"experienceYears" validate:"gte=0,lte=80"`
	Rating          float64  `json:"rating"          validate:"gte=0,lte=5"`
	AvatarURL       string   `json:"avatarUrl"       validate:"omitempty,url"`
	Status          string   `json:"status"          validate:"omitempty,oneof=available busy unavailable"`
}

type UpdateMentorRequest struct {
	Name            *string  `json:"name"            validate:"omitnil,notblank,max=200"`
	Title           *string  `json:"title"           validate:"omitempty,max=200"`
	Company         *string  `json:"company"         validate:"omitempty,max=200"`
	Category        *string  `json:"category"        validate:"omitempty,max=100"`
	Field           *string  `json:"field"           validate:"omitempty,max=100"`
	Country         *string  `json:"country"         validate:"omitempty,max=100"`
	Bio             *string  `json:"bio"             validate:"omitempty,max=5000"`
	Expertise       []string `json:"expertise"       validate:"omitempty,max=50,dive,max=100"`
	ExperienceYears *int     `json:"experienceYears" validate:"omitempty,gte=0,lte=80"`
	Rating          *float64 `json:"rating"          validate:"omitempty,gte=0,lte=5"`
	AvatarURL       *string  `json:"avatarUrl"       validate:"omitempty,url"`
	Status          *string  `json:"status"          validate:"omitempty,oneof=available busy unavailable"`
}

func (req CreateMentorRequest) toEntity() Mentor {
	m := Mentor{
		Name:            strings.TrimSpace(req.Name),
		Title:           req.Title,
		Company:         req.Company,
		Category:        req.Category,
		Field:           req.Field,
		Country:         req.Country,
		Bio:             req.Bio,
		Expertise:       req.Expertise,
		ExperienceYears: req.ExperienceYears,
		Rating:          req.Rating,
		AvatarURL:       req.AvatarURL,
		Status:          req.Status,
	}
	if m.Status == "" {
		m.Status = StatusAvailable
	}
	if m.Expertise == nil {
		m.Expertise = []string{}
	}
	return m
}

func (req UpdateMentorRequest) apply(m *Mentor) {
	if req.Name != nil {
		m.Name = strings.TrimSpace(*req.Name)
	}
	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.Company != nil {
		m.Company = *req.Company
	}
	if req.Category != nil {
		m.Category = *req.Category
	}
	if req.Field != nil {
		m.Field = *req.Field
	}
	if req.Country != nil {
		m.Country = *req.Country
	}
	if req.Bio != nil {
		m.Bio = *req.Bio
	}
	if req.Expertise != nil {
		m.Expertise = req.Expertise
	}
	if req.ExperienceYears != nil {
		m.ExperienceYears = *req.ExperienceYears
	}
	if req.Rating != nil {
		m.Rating = *req.Rating
	}
	if req.AvatarURL != nil {
		m.AvatarURL = *req.AvatarURL
	}
	if req.Status != nil {
		m.Status = *req.Status
	}
}
