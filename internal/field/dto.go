// AngelaMos | 2026
// dto.go

package field

import (
	"strings"
)

type CreateFieldRequest struct {
	Name          string   `json:"name"          validate:"required,notblank,max=200"`
	Description   string   `json:"description"   validate:"max=5000"`
	Category      string   `json:"category"      validate:"max=100"`
	Icon          string   `json:"icon"          validate:"max=100"`
	CareerPaths   []string `json:"careerPaths"   validate:"max=50,dive,max=200"`
	AverageSalary string   `json:"averageSalary" validate:"max=100"`
	GrowthOutlook string   `json:"growthOutlook" validate:"max=100"`
	Status        string   `json:"status"        validate:"omitempty,oneof=active archived"`
}

type UpdateFieldRequest struct {
	Name          *string  `json:"name"          validate:"omitnil,notblank,max=200"`
	Description   *string  `json:"description"   validate:"omitempty,max=5000"`
	Category      *string  `json:"category"      validate:"omitempty,max=100"`
	Icon          *string  `json:"icon"          validate:"omitempty,max=100"`
	CareerPaths   []string `json:"careerPaths"   validate:"omitempty,max=50,dive,max=200"`
	AverageSalary *string  `json:"averageSalary" validate:"omitempty,max=100"`
	GrowthOutlook *string  `json:"growthOutlook" validate:"omitempty,max=100"`
	Status        *string  `json:"status"        validate:"omitempty,oneof=active archived"`
}

func (req CreateFieldRequest) toEntity() Field {
	f := Field{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Category:      req.Category,
		Icon:          req.Icon,
		CareerPaths:   req.CareerPaths,
		AverageSalary: req.AverageSalary,
		GrowthOutlook: req.GrowthOutlook,
		Status:        req.Status,
	}
	if f.Status == "" {
		f.Status = StatusActive
	}
	if f.CareerPaths == nil {
		f.CareerPaths = []string{}
	}
	return f
}

func (req UpdateFieldRequest) apply(f *Field) {
	if req.Name != nil {
		f.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		f.Description = *req.Description
	}
	if req.Category != nil {
		f.Category = *req.Category
	}
	if req.Icon != nil {
		f.Icon = *req.Icon
	}
	if req.CareerPaths != nil {
		f.CareerPaths = req.CareerPaths
	}
	if req.AverageSalary != nil {
		f.AverageSalary = *req.AverageSalary
	}
	if req.GrowthOutlook != nil {
		f.GrowthOutlook = *req.GrowthOutlook
	}
	if req.Status != nil {
		f.Status = *req.Status
	}
}
