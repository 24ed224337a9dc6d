// AngelaMos | 2026
// dto.go

package scholarship

import (
	"strings"
	"time"
)

type CreateScholarshipRequest struct {
	Name           string     `json:"name"           validate:"required,notblank,max=200"`
	Organization   string     `json:"organization"   validate:"required,notblank,max=200"`
	Description    string     `json:"description"    validate:"max=5000"`
	Category       string     `json:"category"       validate:"max=100"`
	Field          string     `json:"field"          validate:"max=100"`
	Country        string     `json:"country"        validate:"max=100"`
	Amount         float64    `json:"amount"         validate:"gte=0"`
	Currency       string     `json:"currency"       validate:"omitempty,len=3"`
	Deadline       *time.Time `json:"deadline"`
	Eligibility    []string   `json:"eligibility"    validate:"max=50,dive,max=500"`
	ApplicationURL string     `json:"applicationUrl" validate:"omitempty,url"`
	Status         string     `json:"status"         validate:"omitempty,oneof=open closed upcoming"`
}

type UpdateScholarshipRequest struct {
	Name           *string    `json:"name"           validate:"omitnil,notblank,max=200"`
	Organization   *string    `json:"organization"   validate:"omitnil,notblank,max=200"`
	Description    *string    `json:"description"    validate:"omitempty,max=5000"`
	Category       *string    `json:"category"       validate:"omitempty,max=100"`
	Field          *string    `json:"field"          validate:"omitempty,max=100"`
	Country        *string    `json:"country"        validate:"omitempty,max=100"`
	Amount         *float64   `json:"amount"         validate:"omitempty,gte=0"`
	Currency       *string    `json:"currency"       validate:"omitempty,len=3"`
	Deadline       *time.Time `json:"deadline"`
	Eligibility    []string   `json:"eligibility"    validate:"omitempty,max=50,dive,max=500"`
	ApplicationURL *string    `json:"applicationUrl" validate:"omitempty,url"`
	Status         *string    `json:"status"         validate:"omitempty,oneof=open closed upcoming"`
}

func (req CreateScholarshipRequest) toEntity() Scholarship {
	s := Scholarship{
		Name:           strings.TrimSpace(req.Name),
		Organization:   strings.TrimSpace(req.Organization),
		Description:    req.Description,
		Category:       req.Category,
		Field:          req.Field,
		Country:        req.Country,
		Amount:         req.Amount,
		Currency:       strings.ToUpper(req.Currency),
		Deadline:       req.Deadline,
		Eligibility:    req.Eligibility,
		ApplicationURL: req.ApplicationURL,
		Status:         req.Status,
	}
	if s.Currency == "" {
		s.Currency = "USD"
	}
	if s.Status == "" {
		s.Status = StatusOpen
	}
	if s.Eligibility == nil {
		s.Eligibility = []string{}
	}
	return s
}

func (req UpdateScholarshipRequest) apply(s *Scholarship) {
	if req.Name != nil {
		s.Name = strings.TrimSpace(*req.Name)
	}
	if req.Organization != nil {
		s.Organization = strings.TrimSpace(*req.Organization)
	}
	if req.Description != nil {
		s.Description = *req.Description
	}
	if req.Category != nil {
		s.Category = *req.Category
	}
	if req.Field != nil {
		s.Field = *req.Field
	}
	if req.Country != nil {
		s.Country = *req.Country
	}
	if req.Amount != nil {
		s.Amount = *req.Amount
	}
	if req.Currency != nil {
		s.Currency = strings.ToUpper(*req.Currency)
	}
	if req.Deadline != nil {
		s.Deadline = req.Deadline
	}
	if req.Eligibility != nil {
		s.Eligibility = req.Eligibility
	}
	if req.ApplicationURL != nil {
		s.ApplicationURL = *req.ApplicationURL
	}
	if req.Status != nil {
		s.Status = *req.Status
	}
}
