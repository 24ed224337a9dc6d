// AngelaMos | 2026
// dto.go

package application

import (
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type CreateApplicationRequest struct {
	Type          string       `json:"type"          validate:"required,oneof=scholarship mentor"`
	ScholarshipID string       `json:"scholarshipId" validate:"max=64"`
	MentorID      string       `json:"mentorId"      validate:"max=64"`
	Data          store.Object `json:"data"`
}

// target returns the id matching the request type.
func (req CreateApplicationRequest) target() string {
	if req.Type == TypeMentor {
		return req.MentorID
	}
	return req.ScholarshipID
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected withdrawn"`
}

type ApplicationResponse struct {
	ID            string       `json:"id"`
	UserID        string       `json:"userId"`
	Type          string       `json:"type"`
	ScholarshipID string       `json:"scholarshipId,omitempty"`
	MentorID      string       `json:"mentorId,omitempty"`
	Data          store.Object `json:"data"`
	Status        string       `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

func ToResponse(a *Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Type:      a.Type,
		Data:      a.Data,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if resp.Data == nil {
		resp.Data = store.Object{}
	}

	switch a.Type {
	case TypeScholarship:
		resp.ScholarshipID = a.TargetID
	case TypeMentor:
		resp.MentorID = a.TargetID
	}
	return resp
}

func ToResponseList(apps []Application) []ApplicationResponse {
	out := make([]ApplicationResponse, len(apps))
	for i := range apps {
		out[i] = ToResponse(&apps[i])
	}
	return out
}
