// AngelaMos | 2026
// dto.go

package goal

import (
	"strings"
	"time"
)

type CreateGoalRequest struct {
	Title       string     `json:"title"       validate:"required,notblank,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	Category    string     `json:"category"    validate:"max=100"`
	Status      string     `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	Progress    int        `json:"progress"    validate:"gte=0,lte=100"`
	TargetDate  *time.Time `json:"targetDate"`
}

type UpdateGoalRequest struct {
	Title       *string    `json:"title"       validate:"omitnil,notblank,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	Category    *string    `json:"category"    validate:"omitempty,max=100"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	Progress    *int       `json:"progress"    validate:"omitempty,gte=0,lte=100"`
	TargetDate  *time.Time `json:"targetDate"`
}

func (req CreateGoalRequest) toEntity(userID string) Goal {
	g := Goal{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Category:    req.Category,
		Status:      req.Status,
		Progress:    req.Progress,
		TargetDate:  req.TargetDate,
	}
	if g.Status == "" {
		g.Status = StatusPending
	}
	syncStatus(&g)
	return g
}

func (req UpdateGoalRequest) apply(g *Goal) {
	if req.Title != nil {
		g.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		g.Description = *req.Description
	}
	if req.Category != nil {
		g.Category = *req.Category
	}
	if req.Status != nil {
		g.Status = *req.Status
	}
	if req.Progress != nil {
		g.Progress = *req.Progress
	}
	if req.TargetDate != nil {
		g.TargetDate = req.TargetDate
	}
	syncStatus(g)
}
